// Package core provides an in-memory directed multigraph with dense
// sequential ids and a minimal, composable API surface.
//
// The Graph G = (V,E) is generic over its vertex value type V and edge
// value type E:
//
//   - Directed edges only; self-loops and parallel edges always allowed.
//   - Dense ids: vertices and edges are numbered [0, count) at all times.
//     Inserting assigns id == count; erasing moves the last element into
//     the freed slot (swap-with-last), so erase is O(1) amortized and ids
//     never have holes.
//   - Arena storage: two slices, one per element kind. No per-element
//     allocation beyond adjacency id lists.
//   - Handles: Vertex and Edge are transient views (graph pointer + id),
//     comparable with ==, cheap to copy, returned by all constructors and
//     lookups.
//
// Handle invalidation:
//
// Any structural mutation (AddVertex, AddEdge, RemoveVertex, RemoveEdge,
// CopyFrom, Clear) may renumber elements; every handle obtained before
// the mutation must be considered invalid afterwards. Using a stale
// handle is not detected in general: Valid() catches out-of-range ids
// and foreign graphs, but a handle whose slot was reused simply reads
// the element now occupying that id. Value updates via SetValue are not
// structural and keep handles intact.
//
// Core methods:
//
//	// Construction
//	NewGraph[V, E]() *Graph[V, E]                       // O(1)
//	AddVertex(value V) Vertex[V, E]                     // O(1) amortized
//	AddEdge(from, to Vertex, value E) (Edge, error)     // O(1) amortized
//
//	// Erase (swap-with-last renumbering)
//	RemoveVertex(v Vertex) error                        // O(deg(v) * d)
//	RemoveEdge(e Edge) error                            // O(d)
//
//	// Lookup & enumeration
//	FindVertex(id int) (Vertex, error)                  // O(1)
//	FindEdge(id int) (Edge, error)                      // O(1)
//	Vertices() []Vertex                                 // O(V), id order
//	Edges() []Edge                                      // O(E), id order
//	VertexCount(), EdgeCount(), IsEmpty()               // O(1)
//
//	// Whole-graph operations
//	Clone() *Graph                                      // O(V+E)
//	CopyFrom(src *Graph) error                          // O(V+E)
//	Convert(src, vconv, econv) (*Graph[V2,E2], error)   // O(V+E)
//	DepthFirstVisit(start Vertex, fn EdgeVisitor) error // O(V+E)
//	DOT() string                                        // O(V+E)
//
// Handle methods:
//
//	Vertex: ID, Value, SetValue, OutEdges, InEdges, OutDegree, InDegree,
//	        Graph, Valid, String
//	Edge:   ID, Value, SetValue, From, To, Graph, Valid, String
//
// Errors:
//
//	ErrInvalidHandle - stale, foreign, or out-of-range handle
//	ErrGraphNil      - nil graph argument
//	ErrNilVisitor    - nil DepthFirstVisit visitor
//	ErrNilConverter  - nil Convert converter
//
// Graph is single-threaded by design: no locks, no background
// goroutines. Callers that share a graph across goroutines must
// serialize access externally.
package core
