// Package quiver is an in-memory directed-multigraph toolkit: a dense-id
// container with transient handles, an eight-variant traversal engine,
// the classic whole-graph algorithms, and a backtracking
// common-subgraph-isomorphism solver.
//
// What you get:
//
//   - Core primitives: generic Graph[V, E] with O(1) amortized insert
//     and erase, dense sequential ids, self-loops and parallel edges
//   - Traversals: depth-/breadth-first, forward/reverse, over vertices
//     or edges, as steerable pull-style iterators
//   - Algorithms: cycle detection and breaking, weak connectivity and
//     components, induced subgraphs, topological sort, reachability
//   - Subgraph matching: exhaustive common-subgraph search under
//     caller-supplied vertex and edge equivalence predicates
//
// Everything is organized as flat, single-concern packages:
//
//	core/       — Graph, Vertex, Edge; clone, convert, visit, DOT export
//	idset/      — packed bitmap sets over dense id universes
//	traverse/   — the incremental traversal engine
//	algorithms/ — whole-graph operations built on core and traverse
//	csi/        — the common subgraph isomorphism solver
//	log/        — leveled logging facade for optional solver tracing
//
// Design notes that matter to callers: vertex and edge handles are
// transient views, invalidated by any structural mutation of their
// graph; ids always form the contiguous range [0, count); no package
// spawns goroutines or locks — a Graph and anything iterating it belong
// to one goroutine at a time.
//
// Quick ASCII example:
//
//	A ──> B ──> D
//	 \         ^
//	  \> C ───/
//
// four vertices, four edges, one diamond; see the examples directory
// for runnable programs.
//
//	go get github.com/quiverlib/quiver
package quiver
