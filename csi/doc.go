// Package csi solves common subgraph isomorphism: finding
// correspondences between vertex subsets of two directed multigraphs
// that preserve caller-defined equivalence of vertices and of the edge
// sets joining corresponding pairs.
//
// What:
//
//   - Solve(g1, g2, opts...) runs an exhaustive backtracking search and
//     returns the number of correspondences delivered.
//   - A correspondence is delivered when it is maximal (no further pair
//     can be added under the predicates) and has at least
//     WithMinSolutionSize pairs; delivery goes to the WithOnSolution
//     callback as parallel slices of vertex ids.
//   - WithVertexEquiv and WithEdgeEquiv carry the caller's notion of
//     equivalence; both default to "always equivalent". The edge
//     predicate sees the complete edge set between an ordered vertex
//     pair in each graph, so multiplicities, values, and directions are
//     all under the caller's control.
//   - WithLogger enables debug tracing of the candidate maps and search
//     steps; it is diagnostic only.
//
// Semantics worth knowing:
//
//   - The search explores both matching a vertex and permanently
//     leaving it unmatched, so solutions of different sizes and shapes
//     are all enumerated (subject to the minimum size).
//   - Predicates must be pure; pruning assumes a pair rejected once is
//     rejected always.
//   - Raising WithMinSolutionSize is the lever for bounding runtime on
//     large inputs: it both prunes the search and silences small hits.
//   - Inconsistent predicates are not an error; they just produce fewer
//     or no solutions.
//
// Complexity: exponential worst case (the problem is NP-hard). The
// most-constrained-vertex branching rule and the per-level candidate
// filtering keep practical inputs tractable when the predicates are
// selective.
//
// Errors:
//
//   - ErrGraphNil        nil graph passed to Solve
//   - ErrOptionViolation nil predicate or minimum size below 1
package csi
