// Package algorithms: induced subgraph extraction.

package algorithms

import (
	"fmt"

	"github.com/quiverlib/quiver/core"
)

// Subgraph builds a new graph containing exactly the vertices of g
// named by ids, in input order (position in ids becomes the new vertex
// id), together with every edge of g whose endpoints are both selected.
// Edges are copied in ascending original edge id order, so the result's
// edge ids are dense and deterministic.
// Returns ErrGraphNil for a nil graph, core.ErrInvalidHandle for an
// out-of-range id, and ErrDuplicateVertex for a repeated id.
// Complexity: O(V + E) of g.
func Subgraph[V, E any](g *core.Graph[V, E], ids []int) (*core.Graph[V, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) Copy the selected vertices, building the old-id -> new-id map.
	remap := make([]int, g.VertexCount())
	for i := range remap {
		remap[i] = -1
	}
	out := core.NewGraph[V, E]()
	for _, id := range ids {
		v, err := g.FindVertex(id)
		if err != nil {
			return nil, err
		}
		if remap[id] >= 0 {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
		}
		remap[id] = out.AddVertex(v.Value()).ID()
	}

	// 2) Copy every edge with both endpoints selected.
	for _, e := range g.Edges() {
		from, to := remap[e.From().ID()], remap[e.To().ID()]
		if from < 0 || to < 0 {
			continue
		}
		nf, _ := out.FindVertex(from)
		nt, _ := out.FindVertex(to)
		if _, err := out.AddEdge(nf, nt, e.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}
