// Package core: handle accessor methods.
//
// Vertex and Edge accessors dereference the arena record the handle
// points at. All of them except Valid, Graph, ID, and String require a
// live handle: after a mutation of the graph a stale handle may reach a
// different element or panic on an out-of-range id. Callers that hold
// handles across mutations must re-fetch them via FindVertex/FindEdge.

package core

import "fmt"

// ID returns the vertex id. Meaningful only while the handle is live.
func (v Vertex[V, E]) ID() int { return v.id }

// Graph returns the graph this handle belongs to (nil for the zero handle).
func (v Vertex[V, E]) Graph() *Graph[V, E] { return v.g }

// Valid reports whether the handle currently designates a live vertex.
// It guards against the zero handle and out-of-range ids; it cannot
// detect a handle whose slot was renumbered to a different vertex.
func (v Vertex[V, E]) Valid() bool { return v.g != nil && v.g.ownsVertex(v) }

// Value returns the vertex value.
func (v Vertex[V, E]) Value() V { return v.g.vertices[v.id].value }

// SetValue replaces the vertex value. Not a structural mutation:
// handles stay valid.
func (v Vertex[V, E]) SetValue(value V) { v.g.vertices[v.id].value = value }

// OutDegree returns the number of outgoing edges. Self-loops count once.
func (v Vertex[V, E]) OutDegree() int { return len(v.g.vertices[v.id].out) }

// InDegree returns the number of incoming edges. Self-loops count once.
func (v Vertex[V, E]) InDegree() int { return len(v.g.vertices[v.id].in) }

// OutEdges returns handles for the outgoing edges in insertion order.
// Complexity: O(out-degree).
func (v Vertex[V, E]) OutEdges() []Edge[V, E] {
	ids := v.g.vertices[v.id].out
	out := make([]Edge[V, E], len(ids))
	for i, eid := range ids {
		out[i] = Edge[V, E]{g: v.g, id: eid}
	}

	return out
}

// InEdges returns handles for the incoming edges in insertion order.
// Complexity: O(in-degree).
func (v Vertex[V, E]) InEdges() []Edge[V, E] {
	ids := v.g.vertices[v.id].in
	out := make([]Edge[V, E], len(ids))
	for i, eid := range ids {
		out[i] = Edge[V, E]{g: v.g, id: eid}
	}

	return out
}

// String renders the handle for debugging; safe on stale handles.
func (v Vertex[V, E]) String() string {
	if !v.Valid() {
		return "Vertex(invalid)"
	}

	return fmt.Sprintf("Vertex(%d)", v.id)
}

// ID returns the edge id. Meaningful only while the handle is live.
func (e Edge[V, E]) ID() int { return e.id }

// Graph returns the graph this handle belongs to (nil for the zero handle).
func (e Edge[V, E]) Graph() *Graph[V, E] { return e.g }

// Valid reports whether the handle currently designates a live edge.
// Same caveat as Vertex.Valid on renumbered slots.
func (e Edge[V, E]) Valid() bool { return e.g != nil && e.g.ownsEdge(e) }

// Value returns the edge value.
func (e Edge[V, E]) Value() E { return e.g.edges[e.id].value }

// SetValue replaces the edge value. Not a structural mutation:
// handles stay valid.
func (e Edge[V, E]) SetValue(value E) { e.g.edges[e.id].value = value }

// From returns the source vertex handle.
func (e Edge[V, E]) From() Vertex[V, E] {
	return Vertex[V, E]{g: e.g, id: e.g.edges[e.id].from}
}

// To returns the target vertex handle.
func (e Edge[V, E]) To() Vertex[V, E] {
	return Vertex[V, E]{g: e.g, id: e.g.edges[e.id].to}
}

// String renders the handle for debugging; safe on stale handles.
func (e Edge[V, E]) String() string {
	if !e.Valid() {
		return "Edge(invalid)"
	}
	rec := e.g.edges[e.id]

	return fmt.Sprintf("Edge(%d: %d->%d)", e.id, rec.from, rec.to)
}
