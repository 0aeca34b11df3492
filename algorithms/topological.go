// Package algorithms: topological sorting.
//
// TopologicalSort computes a linear ordering of vertex ids such that
// for every edge u -> v, u appears before v. The ordering is the
// reversed depth-first post-order, driving the walk from every vertex
// in ascending id order, which makes the result deterministic.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state sets)

package algorithms

import (
	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/idset"
)

// topoSorter encapsulates the state of one topological sort walk.
type topoSorter[V, E any] struct {
	graph *core.Graph[V, E]
	gray  *idset.Set // on the current recursion path
	black *idset.Set // fully explored
	order []int      // post-order sequence
}

// TopologicalSort returns the vertex ids of g in topological order.
// Returns ErrGraphNil for a nil graph and ErrCycleDetected when g
// admits no linear order. An empty graph yields an empty order.
func TopologicalSort[V, E any](g *core.Graph[V, E]) ([]int, error) {
	// 1) Validate and set up the sorter state.
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	s := &topoSorter[V, E]{
		graph: g,
		gray:  idset.New(n),
		black: idset.New(n),
		order: make([]int, 0, n),
	}

	// 2) Drive the walk from every vertex.
	for v := 0; v < n; v++ {
		if err := s.visit(v); err != nil {
			return nil, err
		}
	}

	// 3) Reverse the post-order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit recurses depth-first from id, recording post-order and
// reporting a cycle when it re-enters a vertex on the current path.
func (t *topoSorter[V, E]) visit(id int) error {
	if t.gray.Contains(id) {
		return ErrCycleDetected
	}
	if t.black.Contains(id) {
		return nil
	}
	t.gray.Add(id)
	v, _ := t.graph.FindVertex(id)
	for _, e := range v.OutEdges() {
		if err := t.visit(e.To().ID()); err != nil {
			return err
		}
	}
	t.gray.Remove(id)
	t.black.Add(id)
	t.order = append(t.order, id)

	return nil
}
