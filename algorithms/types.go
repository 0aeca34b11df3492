// Package algorithms: error definitions shared by the whole-graph
// operations in this package.
package algorithms

import "errors"

// Sentinel errors for whole-graph operations.
var (
	// ErrGraphNil is returned by operations that cannot produce a
	// meaningful result for a nil graph (Subgraph, TopologicalSort,
	// Reachable). Predicates and counters treat nil as the empty graph
	// instead.
	ErrGraphNil = errors.New("algorithms: graph is nil")

	// ErrDuplicateVertex is returned by Subgraph when the id selection
	// names the same vertex twice.
	ErrDuplicateVertex = errors.New("algorithms: duplicate vertex id")

	// ErrCycleDetected is returned by TopologicalSort when the graph
	// admits no linear order.
	ErrCycleDetected = errors.New("algorithms: cycle detected")
)
