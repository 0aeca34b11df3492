// Package traverse defines orders, directions, options, and error
// definitions for incremental graph traversal.
package traverse

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal construction and stepping.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to a constructor.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrInvalidHandle is returned for a start or Visit handle that is
	// stale or belongs to a different graph, and by MarkVisited for an
	// id outside the traversal's universe.
	ErrInvalidHandle = errors.New("traverse: invalid handle")

	// ErrEndOfTraversal is returned by Current, Next, and Advance once
	// the traversal is exhausted.
	ErrEndOfTraversal = errors.New("traverse: end of traversal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Order selects the scheduling discipline of a traversal.
type Order int

const (
	// DepthFirst delivers the most recently discovered element first.
	DepthFirst Order = iota

	// BreadthFirst delivers elements in discovery generations.
	BreadthFirst
)

// String returns the canonical name of the order.
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "DepthFirst"
	case BreadthFirst:
		return "BreadthFirst"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Direction selects which incidence lists a traversal follows.
type Direction int

const (
	// Forward follows edges from source to target.
	Forward Direction = iota

	// Reverse follows edges from target to source.
	Reverse
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the parameters of a traversal. Combined with the two
// constructors this yields the eight traversal variants:
// {DepthFirst, BreadthFirst} x {Forward, Reverse} x {vertex, edge}.
type Options struct {
	// Order is the scheduling discipline. Default DepthFirst.
	Order Order

	// Direction selects forward or reverse incidence. Default Forward.
	Direction Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default scheduling:
// depth-first over forward edges.
func DefaultOptions() Options {
	return Options{Order: DepthFirst, Direction: Forward, err: nil}
}

// WithOrder selects depth-first or breadth-first scheduling.
func WithOrder(o Order) Option {
	return func(op *Options) {
		switch o {
		case DepthFirst, BreadthFirst:
			op.Order = o
		default:
			op.err = fmt.Errorf("%w: unknown order (%d)", ErrOptionViolation, int(o))
		}
	}
}

// WithDirection selects forward or reverse edge following.
func WithDirection(d Direction) Option {
	return func(op *Options) {
		switch d {
		case Forward, Reverse:
			op.Direction = d
		default:
			op.err = fmt.Errorf("%w: unknown direction (%d)", ErrOptionViolation, int(d))
		}
	}
}
