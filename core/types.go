// Package core defines the central Graph, Vertex, and Edge types for a
// directed multigraph with dense sequential ids.
//
// Vertices and edges live in arena slices indexed by id; ids are always
// the contiguous range [0, count). Vertex and Edge are transient handles
// (graph pointer plus id) into those arenas. Any mutation of the graph
// may renumber elements and therefore invalidates every outstanding
// handle; see doc.go for the exact contract.
//
// This file declares Graph, Vertex, Edge, EdgeVisitor, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidHandle - handle is stale, foreign, or out of range.
//	ErrGraphNil      - nil *Graph passed where a graph is required.
//	ErrNilVisitor    - nil visitor passed to DepthFirstVisit.
//	ErrNilConverter  - nil converter function passed to Convert.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidHandle indicates a handle that does not designate a live
	// element of the receiver graph: wrong graph, negative id, or id >= count.
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrGraphNil is returned when a nil *Graph is passed to CopyFrom or Convert.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNilVisitor is returned by DepthFirstVisit when the visitor is nil.
	ErrNilVisitor = errors.New("core: nil visitor")

	// ErrNilConverter is returned by Convert when a converter function is nil.
	ErrNilConverter = errors.New("core: nil converter")
)

// vertexRec is the arena record backing one vertex: its value plus the
// ids of incident edges, outgoing and incoming, in insertion order.
type vertexRec[V any] struct {
	value V
	out   []int // outgoing edge ids
	in    []int // incoming edge ids
}

// edgeRec is the arena record backing one edge.
type edgeRec[E any] struct {
	from  int // source vertex id
	to    int // target vertex id
	value E
}

// Graph is a directed multigraph with user value type V on vertices and
// E on edges. Self-loops and parallel edges are always permitted.
//
// Storage is two arena slices; the id of an element is its index, so ids
// form the dense range [0, count). Erase compacts an arena by moving the
// last element into the freed slot: ids stay dense but are not stable
// across mutations.
//
// Graph is not safe for concurrent use.
type Graph[V, E any] struct {
	vertices []vertexRec[V]
	edges    []edgeRec[E]
}

// Vertex is a transient handle to one vertex of a Graph.
//
// A handle is a small value (graph pointer plus id) that may be freely
// copied and compared with ==. It remains meaningful only until the next
// mutation of its graph; after that it may designate a different vertex
// or none at all. The zero Vertex is invalid.
type Vertex[V, E any] struct {
	g  *Graph[V, E]
	id int
}

// Edge is a transient handle to one edge of a Graph.
// Same contract as Vertex: comparable, zero value invalid, meaningful
// only until the next mutation of the graph.
type Edge[V, E any] struct {
	g  *Graph[V, E]
	id int
}

// EdgeVisitor observes one traversed edge during Graph.DepthFirstVisit.
// fromVisited and toVisited report whether the endpoint had already been
// mentioned by an earlier invocation of the same walk; a flag is false
// exactly on the first invocation mentioning that vertex.
type EdgeVisitor[V, E any] func(from Vertex[V, E], fromVisited bool, to Vertex[V, E], toVisited bool, e Edge[V, E])

// NewGraph creates an empty directed multigraph.
// Complexity: O(1).
func NewGraph[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{}
}
