// Package csi: predicate types, options machinery, and error
// definitions for the common-subgraph solver.
package csi

import (
	"errors"
	"fmt"

	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/log"
)

// Sentinel errors for solver construction.
var (
	// ErrGraphNil is returned by Solve when either graph is nil.
	ErrGraphNil = errors.New("csi: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("csi: invalid option supplied")
)

// VertexEquiv decides whether two vertices may correspond. It is
// consulted once per vertex pair while seeding the search and must be
// pure: same inputs, same answer, no side effects.
type VertexEquiv[V, E any] func(g1 *core.Graph[V, E], v1 core.Vertex[V, E], g2 *core.Graph[V, E], v2 core.Vertex[V, E]) bool

// EdgeEquiv decides whether the edge set from from1 to to1 in g1 is
// equivalent to the edge set from from2 to to2 in g2. Either slice may
// be empty; two empty sets are a comparable state, and a predicate that
// wants adjacency preserved must reject unequal emptiness itself. It is
// consulted repeatedly during candidate refinement and must be pure.
type EdgeEquiv[V, E any] func(
	g1 *core.Graph[V, E], from1, to1 core.Vertex[V, E], edges1 []core.Edge[V, E],
	g2 *core.Graph[V, E], from2, to2 core.Vertex[V, E], edges2 []core.Edge[V, E],
) bool

// SolutionProcessor receives one discovered correspondence:
// matched1[k] of g1 corresponds to matched2[k] of g2. The slices are
// snapshots owned by the callee.
type SolutionProcessor[V, E any] func(g1 *core.Graph[V, E], matched1 []int, g2 *core.Graph[V, E], matched2 []int)

// Option configures the solver via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation by
// Solve.
type Option[V, E any] func(*Options[V, E])

// Options holds the solver parameters.
type Options[V, E any] struct {
	// VertexEquiv gates candidate pairs. Default: always true.
	VertexEquiv VertexEquiv[V, E]

	// EdgeEquiv gates candidate pairs by their edge sets. Default:
	// always true.
	EdgeEquiv EdgeEquiv[V, E]

	// OnSolution receives each discovered correspondence. Default: nil
	// (solutions are only counted).
	OnSolution SolutionProcessor[V, E]

	// MinSolutionSize prunes branches that cannot reach this many
	// matched pairs and suppresses smaller correspondences. Default 1.
	MinSolutionSize int

	// Logger, when non-nil, receives debug-level search tracing.
	Logger log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with permissive predicates, no
// solution processor, minimum size 1, and no tracing.
func DefaultOptions[V, E any]() Options[V, E] {
	return Options[V, E]{
		VertexEquiv: func(*core.Graph[V, E], core.Vertex[V, E], *core.Graph[V, E], core.Vertex[V, E]) bool {
			return true
		},
		EdgeEquiv: func(*core.Graph[V, E], core.Vertex[V, E], core.Vertex[V, E], []core.Edge[V, E],
			*core.Graph[V, E], core.Vertex[V, E], core.Vertex[V, E], []core.Edge[V, E]) bool {
			return true
		},
		MinSolutionSize: 1,
	}
}

// WithVertexEquiv installs the vertex equivalence predicate.
func WithVertexEquiv[V, E any](fn VertexEquiv[V, E]) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil vertex predicate", ErrOptionViolation)

			return
		}
		o.VertexEquiv = fn
	}
}

// WithEdgeEquiv installs the edge-set equivalence predicate.
func WithEdgeEquiv[V, E any](fn EdgeEquiv[V, E]) Option[V, E] {
	return func(o *Options[V, E]) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil edge predicate", ErrOptionViolation)

			return
		}
		o.EdgeEquiv = fn
	}
}

// WithOnSolution installs the solution processor callback.
func WithOnSolution[V, E any](fn SolutionProcessor[V, E]) Option[V, E] {
	return func(o *Options[V, E]) { o.OnSolution = fn }
}

// WithMinSolutionSize sets the minimum number of matched pairs a
// correspondence must reach to be delivered; branches that cannot
// reach it are pruned. Values below 1 are rejected.
func WithMinSolutionSize[V, E any](n int) Option[V, E] {
	return func(o *Options[V, E]) {
		if n < 1 {
			o.err = fmt.Errorf("%w: minimum solution size %d < 1", ErrOptionViolation, n)

			return
		}
		o.MinSolutionSize = n
	}
}

// WithLogger enables debug tracing of the search (candidate maps and
// state snapshots). Diagnostic only; a nil logger means no tracing.
func WithLogger[V, E any](l log.Logger) Option[V, E] {
	return func(o *Options[V, E]) { o.Logger = l }
}
