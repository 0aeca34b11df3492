package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverlib/quiver/algorithms"
	"github.com/quiverlib/quiver/core"
)

// assertTopological checks that order is a permutation of [0, n) in
// which every edge of g points forward.
func assertTopological(t *testing.T, g *core.Graph[int, string], order []int) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	pos := make([]int, g.VertexCount())
	for p, id := range order {
		pos[id] = p
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From().ID()], pos[e.To().ID()],
			"edge %d->%d points backwards", e.From().ID(), e.To().ID())
	}
}

func TestTopologicalSort_Chain(t *testing.T) {
	g, _ := buildChain(t, 4)

	order, err := algorithms.TopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := core.NewGraph[int, string]()
	a, b := g.AddVertex(0), g.AddVertex(1)
	c, d := g.AddVertex(2), g.AddVertex(3)
	for _, pair := range [][2]core.Vertex[int, string]{{a, b}, {a, c}, {b, d}, {c, d}} {
		_, err := g.AddEdge(pair[0], pair[1], "")
		require.NoError(t, err)
	}

	order, err := algorithms.TopologicalSort(g)
	require.NoError(t, err)

	assertTopological(t, g, order)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g, vs := buildChain(t, 3)
	_, err := g.AddEdge(vs[2], vs[0], "back")
	require.NoError(t, err)

	_, err = algorithms.TopologicalSort(g)

	assert.ErrorIs(t, err, algorithms.ErrCycleDetected)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := algorithms.TopologicalSort(core.NewGraph[int, string]())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := algorithms.TopologicalSort[int, string](nil)
	assert.ErrorIs(t, err, algorithms.ErrGraphNil)
}
