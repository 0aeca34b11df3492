// Package algorithms provides whole-graph operations on core.Graph:
// cycle detection and breaking, connectivity, component labelling,
// induced subgraphs, topological sorting, and reachability.
//
// What:
//
//   - ContainsCycle / BreakCycles: detect a directed cycle, or remove
//     back edges until none remain.
//   - IsConnected / ConnectedComponents: weak connectivity (edges
//     followed in both directions) as a predicate or a full labelling.
//   - Subgraph: the induced subgraph over a caller-chosen vertex set.
//   - TopologicalSort: a linear order of a cycle-free graph.
//   - Reachable: the vertex set a traversal can deliver from a root.
//
// All functions take the graph as their first argument and return plain
// Go values; none of them retains state between calls. Except for
// BreakCycles (which removes edges) they leave the graph unmodified.
//
// Complexity: every operation is O(V + E) time and O(V) memory, with
// BreakCycles adding the cost of the edge removals it performs.
//
// Errors:
//
//   - ErrGraphNil        nil graph where a result must be produced
//   - ErrDuplicateVertex repeated id in a Subgraph selection
//   - ErrCycleDetected   TopologicalSort on a cyclic graph
package algorithms
