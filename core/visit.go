// Package core: event-driven depth-first visit.
//
// DepthFirstVisit is the container-level walk used when a caller wants
// every edge event rather than an element sequence; the traverse package
// provides the incremental iterator surface on top of the same graph.

package core

import "github.com/quiverlib/quiver/idset"

// DepthFirstVisit walks the graph depth-first from start, invoking fn
// once per traversed edge in adjacency-list order. Each invocation
// reports, for both endpoints, whether the vertex had been mentioned by
// an earlier invocation of this walk: a flag is false exactly on the
// first invocation mentioning that vertex. Edges out of an
// already-visited target are not descended into, so every edge reachable
// from start is reported exactly once.
//
// For a self-loop the source endpoint is mentioned first, so the target
// side of the same invocation reports already-visited.
//
// The visitor must not mutate the graph; mutation invalidates the
// walk's state along with all handles.
//
// Returns ErrInvalidHandle if start is stale or foreign, ErrNilVisitor
// if fn is nil.
// Complexity: O(V + E) reachable from start; memory O(V).
func (g *Graph[V, E]) DepthFirstVisit(start Vertex[V, E], fn EdgeVisitor[V, E]) error {
	if !g.ownsVertex(start) {
		return ErrInvalidHandle
	}
	if fn == nil {
		return ErrNilVisitor
	}

	seen := idset.New(len(g.vertices))
	g.visitFrom(start.id, seen, fn)

	return nil
}

// visitFrom reports every outgoing edge of vertex id, recursing into
// targets that were unmentioned at the time their edge was reported.
func (g *Graph[V, E]) visitFrom(id int, seen *idset.Set, fn EdgeVisitor[V, E]) {
	for _, eid := range g.vertices[id].out {
		// 1) Snapshot the source flag, then mark the source mentioned.
		sFlag := seen.Contains(id)
		seen.Add(id)

		// 2) Snapshot the target flag before reporting, so a self-loop
		//    sees source mentioned and target already-visited.
		t := g.edges[eid].to
		tFlag := seen.Contains(t)

		fn(Vertex[V, E]{g: g, id: id}, sFlag, Vertex[V, E]{g: g, id: t}, tFlag, Edge[V, E]{g: g, id: eid})

		// 3) Mark the target mentioned and descend on first contact only.
		seen.Add(t)
		if !tFlag {
			g.visitFrom(t, seen, fn)
		}
	}
}
