// Package traverse implements the incremental traversal engine over a
// core.Graph: a pull-style iterator that delivers vertices or edges one
// at a time under a configurable order and direction.
//
// A Traversal owns a worklist of element ids whose front entry is the
// current element, plus a visited bitmap consulted lazily: entries that
// were visited after being enqueued are dropped when they surface to the
// front. Advancing marks the current element visited and schedules its
// neighbors, to the front for depth-first order (preserving adjacency
// order) or to the back for breadth-first.
//
// The element kind, direction, and id-to-handle mapping are injected by
// the constructors as closures, so one engine serves all eight variants.
//
// Complexity:
//
//   - Time:   O(V + E) for a vertex traversal, O(E + sum deg) for an
//     edge traversal, amortized over the whole run.
//   - Memory: O(queued ids + primary count / 64) for worklist and bitmap.
package traverse

import (
	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/idset"
)

// Traversal is an incremental traversal over primary handle type H
// (core.Vertex or core.Edge). Construct with NewVertexTraversal or
// NewEdgeTraversal; the zero value is not usable.
//
// The underlying graph must not be mutated while the traversal is live;
// mutation invalidates the worklist ids together with all handles.
type Traversal[H any] struct {
	order Order
	dir   Direction

	queue   []int      // primary ids; the front entry is the current element
	visited *idset.Set // ids already delivered (or force-marked)
	skip    bool       // one-shot child-avoidance flag

	// Strategy closures bound to the graph by the constructor.
	expand   func(id int) []int     // neighbor primary ids in adjacency order
	lookup   func(id int) H         // live id -> handle
	handleID func(h H) (int, error) // handle -> id, validating ownership
}

// NewVertexTraversal constructs a vertex-primary traversal of g rooted
// at start. With Forward direction neighbors are the targets of a
// vertex's outgoing edges, with Reverse the sources of its incoming
// edges, in adjacency-list order either way.
// Returns ErrGraphNil, ErrInvalidHandle for a stale or foreign start,
// or ErrOptionViolation.
func NewVertexTraversal[V, E any](g *core.Graph[V, E], start core.Vertex[V, E], opts ...Option) (*Traversal[core.Vertex[V, E]], error) {
	// 1) Validate graph and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the root handle against this graph.
	if start.Graph() != g || !start.Valid() {
		return nil, ErrInvalidHandle
	}

	// 3) Bind the vertex strategy.
	dir := o.Direction
	t := &Traversal[core.Vertex[V, E]]{
		order:   o.Order,
		dir:     dir,
		queue:   []int{start.ID()},
		visited: idset.New(g.VertexCount()),
		expand: func(id int) []int {
			v, err := g.FindVertex(id)
			if err != nil {
				return nil
			}
			if dir == Forward {
				edges := v.OutEdges()
				out := make([]int, len(edges))
				for i, e := range edges {
					out[i] = e.To().ID()
				}

				return out
			}
			edges := v.InEdges()
			out := make([]int, len(edges))
			for i, e := range edges {
				out[i] = e.From().ID()
			}

			return out
		},
		lookup: func(id int) core.Vertex[V, E] {
			v, _ := g.FindVertex(id) // worklist ids are live while the graph is unmodified
			return v
		},
		handleID: func(h core.Vertex[V, E]) (int, error) {
			if h.Graph() != g || !h.Valid() {
				return 0, ErrInvalidHandle
			}

			return h.ID(), nil
		},
	}

	return t, nil
}

// NewEdgeTraversal constructs an edge-primary traversal of g rooted at
// start. With Forward direction the neighbors of an edge are the
// outgoing edges of its target vertex, with Reverse the incoming edges
// of its source vertex, in adjacency-list order either way.
// Returns ErrGraphNil, ErrInvalidHandle for a stale or foreign start,
// or ErrOptionViolation.
func NewEdgeTraversal[V, E any](g *core.Graph[V, E], start core.Edge[V, E], opts ...Option) (*Traversal[core.Edge[V, E]], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start.Graph() != g || !start.Valid() {
		return nil, ErrInvalidHandle
	}

	dir := o.Direction
	t := &Traversal[core.Edge[V, E]]{
		order:   o.Order,
		dir:     dir,
		queue:   []int{start.ID()},
		visited: idset.New(g.EdgeCount()),
		expand: func(id int) []int {
			e, err := g.FindEdge(id)
			if err != nil {
				return nil
			}
			var edges []core.Edge[V, E]
			if dir == Forward {
				edges = e.To().OutEdges()
			} else {
				edges = e.From().InEdges()
			}
			out := make([]int, len(edges))
			for i, next := range edges {
				out[i] = next.ID()
			}

			return out
		},
		lookup: func(id int) core.Edge[V, E] {
			e, _ := g.FindEdge(id) // worklist ids are live while the graph is unmodified
			return e
		},
		handleID: func(h core.Edge[V, E]) (int, error) {
			if h.Graph() != g || !h.Valid() {
				return 0, ErrInvalidHandle
			}

			return h.ID(), nil
		},
	}

	return t, nil
}

// Order returns the scheduling discipline fixed at construction.
func (t *Traversal[H]) Order() Order { return t.order }

// Direction returns the edge-following direction fixed at construction.
func (t *Traversal[H]) Direction() Direction { return t.dir }

// normalize drops visited entries off the worklist front so that the
// front entry, if any, is deliverable.
func (t *Traversal[H]) normalize() {
	for len(t.queue) > 0 && t.visited.Contains(t.queue[0]) {
		t.queue = t.queue[1:]
	}
}

// AtEnd reports whether the traversal is exhausted.
func (t *Traversal[H]) AtEnd() bool {
	t.normalize()

	return len(t.queue) == 0
}

// HasNext reports whether another element is deliverable.
func (t *Traversal[H]) HasNext() bool { return !t.AtEnd() }

// Current returns the current element without advancing.
// Returns ErrEndOfTraversal when the traversal is exhausted.
func (t *Traversal[H]) Current() (H, error) {
	t.normalize()
	if len(t.queue) == 0 {
		var zero H
		return zero, ErrEndOfTraversal
	}

	return t.lookup(t.queue[0]), nil
}

// Advance marks the current element visited, schedules its neighbors,
// and moves to the next deliverable element. With depth-first order the
// neighbors are prepended as a block, preserving adjacency order; with
// breadth-first they are appended. If SkipChildren was called since the
// last Advance, the neighbors of the current element are not scheduled
// and the flag is cleared.
// Returns ErrEndOfTraversal when the traversal is already exhausted.
func (t *Traversal[H]) Advance() error {
	// 1) Find the current element.
	t.normalize()
	if len(t.queue) == 0 {
		return ErrEndOfTraversal
	}
	cur := t.queue[0]
	t.queue = t.queue[1:]

	// 2) Visiting happens at increment time.
	t.visited.Add(cur)

	// 3) Child avoidance is one-shot.
	if t.skip {
		t.skip = false

		return nil
	}

	// 4) Schedule the neighbors. Already-visited ids may be enqueued;
	//    they are dropped lazily by normalize, which keeps MarkVisited
	//    resurrection working.
	next := t.expand(cur)
	if len(next) == 0 {
		return nil
	}
	if t.order == DepthFirst {
		t.queue = append(next, t.queue...)
	} else {
		t.queue = append(t.queue, next...)
	}

	return nil
}

// Next returns the current element and advances past it.
// Returns ErrEndOfTraversal when the traversal is exhausted.
func (t *Traversal[H]) Next() (H, error) {
	h, err := t.Current()
	if err != nil {
		return h, err
	}

	return h, t.Advance()
}

// Visit reschedules the traversal at h by pushing it to the worklist
// front; the previous current element stays queued behind it. Delivery
// remains governed by the visited bitmap, so revisiting an element that
// was already delivered additionally requires MarkVisited(id, false).
// Returns ErrInvalidHandle for a stale or foreign handle.
func (t *Traversal[H]) Visit(h H) error {
	id, err := t.handleID(h)
	if err != nil {
		return err
	}
	t.queue = append([]int{id}, t.queue...)

	return nil
}

// MarkVisited overrides the visited bit for a primary id: true hides
// the element from delivery, false makes it deliverable again wherever
// it is still queued.
// Returns ErrInvalidHandle when id is outside [0, primary count).
func (t *Traversal[H]) MarkVisited(id int, visited bool) error {
	if id < 0 || id >= t.visited.Universe() {
		return ErrInvalidHandle
	}
	if visited {
		t.visited.Add(id)
	} else {
		t.visited.Remove(id)
	}

	return nil
}

// SkipChildren suppresses scheduling of the current element's neighbors
// on the next Advance. The flag is one-shot: the next Advance consumes
// and clears it.
func (t *Traversal[H]) SkipChildren() { t.skip = true }
