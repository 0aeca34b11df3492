// Package core: Graph method implementations.
//
// This file provides the arena CRUD operations on Graph: insertion,
// erase with swap-with-last compaction, lookup, and counting. Adjacency
// is stored per vertex as two id slices (out, in) kept in insertion
// order; erase preserves the relative order of the surviving entries so
// that traversal order stays deterministic.

package core

// AddVertex appends a new vertex holding value and returns its handle.
// The new id equals the vertex count before the call.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(value V) Vertex[V, E] {
	id := len(g.vertices)
	g.vertices = append(g.vertices, vertexRec[V]{value: value})

	return Vertex[V, E]{g: g, id: id}
}

// AddEdge appends a new directed edge from -> to holding value and
// returns its handle. The new id equals the edge count before the call.
// Self-loops and parallel edges are permitted.
// Returns ErrInvalidHandle if either endpoint handle is stale or foreign.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(from, to Vertex[V, E], value E) (Edge[V, E], error) {
	// 1) Validate both endpoint handles against the receiver.
	if !g.ownsVertex(from) || !g.ownsVertex(to) {
		return Edge[V, E]{}, ErrInvalidHandle
	}

	// 2) Append the arena record.
	id := len(g.edges)
	g.edges = append(g.edges, edgeRec[E]{from: from.id, to: to.id, value: value})

	// 3) Register the id with both endpoint adjacency lists.
	g.vertices[from.id].out = append(g.vertices[from.id].out, id)
	g.vertices[to.id].in = append(g.vertices[to.id].in, id)

	return Edge[V, E]{g: g, id: id}, nil
}

// RemoveVertex erases the vertex and every incident edge.
// The last vertex is renumbered into the freed slot, so ids stay dense;
// all outstanding handles are invalidated.
// Returns ErrInvalidHandle if the handle is stale or foreign.
// Complexity: O(deg(v) * d) where d bounds the endpoint list lengths touched.
func (g *Graph[V, E]) RemoveVertex(v Vertex[V, E]) error {
	if !g.ownsVertex(v) {
		return ErrInvalidHandle
	}

	// 1) Erase incident edges first. Each erase shrinks the list, so
	//    always take the current head.
	for len(g.vertices[v.id].out) > 0 {
		g.removeEdgeAt(g.vertices[v.id].out[0])
	}
	for len(g.vertices[v.id].in) > 0 {
		g.removeEdgeAt(g.vertices[v.id].in[0])
	}

	// 2) Compact the vertex arena: move the last vertex into the freed
	//    slot and rewrite its id inside its incident edge records.
	last := len(g.vertices) - 1
	if v.id != last {
		moved := g.vertices[last]
		g.vertices[v.id] = moved
		for _, eid := range moved.out {
			g.edges[eid].from = v.id
		}
		for _, eid := range moved.in {
			g.edges[eid].to = v.id
		}
	}
	g.vertices = g.vertices[:last]

	return nil
}

// RemoveEdge erases the edge, unlinking it from both endpoint adjacency
// lists. The last edge is renumbered into the freed slot, so ids stay
// dense; all outstanding handles are invalidated.
// Returns ErrInvalidHandle if the handle is stale or foreign.
// Complexity: O(d) where d bounds the endpoint list lengths touched.
func (g *Graph[V, E]) RemoveEdge(e Edge[V, E]) error {
	if !g.ownsEdge(e) {
		return ErrInvalidHandle
	}
	g.removeEdgeAt(e.id)

	return nil
}

// FindVertex returns the handle for the vertex with the given id, or
// ErrInvalidHandle when id is outside [0, VertexCount()).
// Complexity: O(1).
func (g *Graph[V, E]) FindVertex(id int) (Vertex[V, E], error) {
	if id < 0 || id >= len(g.vertices) {
		return Vertex[V, E]{}, ErrInvalidHandle
	}

	return Vertex[V, E]{g: g, id: id}, nil
}

// FindEdge returns the handle for the edge with the given id, or
// ErrInvalidHandle when id is outside [0, EdgeCount()).
// Complexity: O(1).
func (g *Graph[V, E]) FindEdge(id int) (Edge[V, E], error) {
	if id < 0 || id >= len(g.edges) {
		return Edge[V, E]{}, ErrInvalidHandle
	}

	return Edge[V, E]{g: g, id: id}, nil
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph[V, E]) EdgeCount() int { return len(g.edges) }

// IsEmpty reports whether the graph has no vertices. O(1).
func (g *Graph[V, E]) IsEmpty() bool { return len(g.vertices) == 0 }

// Vertices returns handles for all vertices in ascending id order.
// Complexity: O(V).
func (g *Graph[V, E]) Vertices() []Vertex[V, E] {
	out := make([]Vertex[V, E], len(g.vertices))
	for i := range g.vertices {
		out[i] = Vertex[V, E]{g: g, id: i}
	}

	return out
}

// Edges returns handles for all edges in ascending id order.
// Complexity: O(E).
func (g *Graph[V, E]) Edges() []Edge[V, E] {
	out := make([]Edge[V, E], len(g.edges))
	for i := range g.edges {
		out[i] = Edge[V, E]{g: g, id: i}
	}

	return out
}

// Clear resets the graph to empty, invalidating all handles. O(1).
func (g *Graph[V, E]) Clear() {
	g.vertices = nil
	g.edges = nil
}

// Internal helper methods:
////////////////////

// ownsVertex reports whether v is a live handle of this graph.
func (g *Graph[V, E]) ownsVertex(v Vertex[V, E]) bool {
	return v.g == g && v.id >= 0 && v.id < len(g.vertices)
}

// ownsEdge reports whether e is a live handle of this graph.
func (g *Graph[V, E]) ownsEdge(e Edge[V, E]) bool {
	return e.g == g && e.id >= 0 && e.id < len(g.edges)
}

// removeEdgeAt unlinks edge id from both endpoint adjacency lists and
// compacts the edge arena by swap-with-last.
func (g *Graph[V, E]) removeEdgeAt(id int) {
	rec := g.edges[id]

	// 1) Unlink from both adjacency lists, preserving the order of the
	//    surviving entries.
	g.vertices[rec.from].out = cutID(g.vertices[rec.from].out, id)
	g.vertices[rec.to].in = cutID(g.vertices[rec.to].in, id)

	// 2) Move the last edge into the freed slot and rewrite its id in
	//    the two adjacency lists that carry it. Position within those
	//    lists is unchanged; only the number changes.
	last := len(g.edges) - 1
	if id != last {
		moved := g.edges[last]
		g.edges[id] = moved
		renumberID(g.vertices[moved.from].out, last, id)
		renumberID(g.vertices[moved.to].in, last, id)
	}
	g.edges = g.edges[:last]
}

// cutID removes the first occurrence of id from list, keeping the order
// of the remaining entries.
func cutID(list []int, id int) []int {
	for i, x := range list {
		if x == id {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}

// renumberID rewrites the first occurrence of old in list to new.
func renumberID(list []int, old, new int) {
	for i, x := range list {
		if x == old {
			list[i] = new

			return
		}
	}
}
