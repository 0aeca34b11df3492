package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverlib/quiver/core"
)

// labels reads the vertex values in id order.
func labels(g *core.Graph[string, string]) []string {
	out := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		out = append(out, v.Value())
	}

	return out
}

// edgePairs reads (from,to) vertex ids in edge id order.
func edgePairs(g *core.Graph[string, string]) [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From().ID(), e.To().ID()})
	}

	return out
}

func TestAddVertex_SequentialIDs(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	c := g.AddVertex("C")

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
	assert.Equal(t, 2, c.ID())
	assert.Equal(t, 3, g.VertexCount())
	assert.False(t, g.IsEmpty())
	assert.Equal(t, []string{"A", "B", "C"}, labels(g))
}

func TestAddEdge_WiresAdjacency(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")

	e, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)
	assert.Equal(t, 0, e.ID())
	assert.Equal(t, "ab", e.Value())
	assert.Equal(t, a, e.From())
	assert.Equal(t, b, e.To())

	assert.Equal(t, 1, a.OutDegree())
	assert.Equal(t, 0, a.InDegree())
	assert.Equal(t, 0, b.OutDegree())
	assert.Equal(t, 1, b.InDegree())
	require.Len(t, a.OutEdges(), 1)
	assert.Equal(t, e, a.OutEdges()[0])
	assert.Equal(t, e, b.InEdges()[0])
}

func TestAddEdge_ForeignHandle(t *testing.T) {
	g := core.NewGraph[string, string]()
	other := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	x := other.AddVertex("X")

	_, err := g.AddEdge(a, x, "ax")
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	_, err = g.AddEdge(x, a, "xa")
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_SelfLoopAndParallel(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")

	loop, err := g.AddEdge(a, a, "aa")
	require.NoError(t, err)
	// A self-loop sits in both lists of the same vertex.
	assert.Equal(t, []core.Edge[string, string]{loop}, a.OutEdges())
	assert.Equal(t, []core.Edge[string, string]{loop}, a.InEdges())

	_, err = g.AddEdge(a, b, "ab1")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "ab2")
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, b.InDegree())
}

func TestRemoveEdge_SwapWithLast(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	c := g.AddVertex("C")
	d := g.AddVertex("D")

	_, err := g.AddEdge(a, b, "ab") // e0
	require.NoError(t, err)
	bc, err := g.AddEdge(b, c, "bc") // e1
	require.NoError(t, err)
	_, err = g.AddEdge(c, d, "cd") // e2
	require.NoError(t, err)
	_, err = g.AddEdge(d, a, "da") // e3
	require.NoError(t, err)
	_, err = g.AddEdge(b, d, "bd") // e4
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(bc))
	assert.Equal(t, 4, g.EdgeCount())

	// The former last edge (B->D) now occupies id 1.
	moved, err := g.FindEdge(1)
	require.NoError(t, err)
	assert.Equal(t, "bd", moved.Value())
	assert.Equal(t, 1, moved.From().ID())
	assert.Equal(t, 3, moved.To().ID())

	// B's out-list carries the renumbered id; D's in-list keeps its order.
	bOut := b.OutEdges()
	require.Len(t, bOut, 1)
	assert.Equal(t, 1, bOut[0].ID())
	dIn := d.InEdges()
	require.Len(t, dIn, 2)
	assert.Equal(t, 2, dIn[0].ID(), "surviving entries keep their relative order")
	assert.Equal(t, 1, dIn[1].ID())

	// C no longer has incoming edges.
	assert.Equal(t, 0, c.InDegree())
}

func TestRemoveEdge_LastEdge(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	_, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)
	e, err := g.AddEdge(b, a, "ba")
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, [][2]int{{0, 1}}, edgePairs(g))
}

func TestRemoveEdge_StaleHandle(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	e, err := g.AddEdge(a, a, "aa")
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e))
	assert.ErrorIs(t, g.RemoveEdge(e), core.ErrInvalidHandle)

	var zero core.Edge[string, string]
	assert.ErrorIs(t, g.RemoveEdge(zero), core.ErrInvalidHandle)
}

func TestRemoveVertex_Isolated(t *testing.T) {
	g := core.NewGraph[string, string]()
	g.AddVertex("A")
	b := g.AddVertex("B")
	g.AddVertex("C")

	require.NoError(t, g.RemoveVertex(b))
	// C is renumbered into B's slot.
	assert.Equal(t, []string{"A", "C"}, labels(g))
}

func TestRemoveVertex_RewiresMovedEndpoints(t *testing.T) {
	g := core.NewGraph[string, string]()
	g.AddVertex("A")      // 0
	b := g.AddVertex("B") // 1
	g.AddVertex("C")      // 2
	d := g.AddVertex("D") // 3
	a0, err := g.FindVertex(0)
	require.NoError(t, err)
	c2, err := g.FindVertex(2)
	require.NoError(t, err)

	_, err = g.AddEdge(a0, b, "ab") // e0
	require.NoError(t, err)
	_, err = g.AddEdge(c2, d, "cd") // e1
	require.NoError(t, err)
	_, err = g.AddEdge(d, c2, "dc") // e2
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(b))

	// A->B disappeared with B; D was renumbered 3 -> 1 and both of its
	// edges now reference the new id.
	assert.Equal(t, []string{"A", "D", "C"}, labels(g))
	assert.Equal(t, 2, g.EdgeCount())
	assert.ElementsMatch(t, [][2]int{{1, 2}, {2, 1}}, edgePairs(g))

	moved, err := g.FindVertex(1)
	require.NoError(t, err)
	assert.Equal(t, "D", moved.Value())
	assert.Equal(t, 1, moved.OutDegree())
	assert.Equal(t, 1, moved.InDegree())
}

func TestRemoveVertex_WithSelfLoop(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	_, err := g.AddEdge(a, a, "aa")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, "ab")
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(a))
	assert.Equal(t, []string{"B"}, labels(g))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEraseReinsert_RoundTrip(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	c := g.AddVertex("C")
	_, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, "bc")
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(b))
	nb := g.AddVertex("B")
	na, err := g.FindVertex(0)
	require.NoError(t, err)
	// After removal C occupies id 1.
	nc, err := g.FindVertex(1)
	require.NoError(t, err)
	assert.Equal(t, "C", nc.Value())

	_, err = g.AddEdge(na, nb, "ab")
	require.NoError(t, err)
	_, err = g.AddEdge(nb, nc, "bc")
	require.NoError(t, err)

	// Structurally equivalent again: same counts, same degrees.
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, nb.OutDegree())
	assert.Equal(t, 1, nb.InDegree())
}

// Dense ids and adjacency symmetry after an arbitrary mutation sequence.
func TestInvariants_AfterMutations(t *testing.T) {
	g := core.NewGraph[string, string]()
	vs := make([]core.Vertex[string, string], 0, 8)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		vs = append(vs, g.AddVertex(name))
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j += 2 {
			_, err := g.AddEdge(vs[i], vs[j], "x")
			require.NoError(t, err)
		}
	}

	// Interleave erases.
	e5, err := g.FindEdge(5)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e5))
	v3, err := g.FindVertex(3)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex(v3))
	e0, err := g.FindEdge(0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e0))

	// Every id in [0,count) resolves; counting degrees over vertices
	// accounts for every edge exactly once per direction.
	outSum, inSum := 0, 0
	for _, v := range g.Vertices() {
		for _, e := range v.OutEdges() {
			assert.Equal(t, v.ID(), e.From().ID())
		}
		for _, e := range v.InEdges() {
			assert.Equal(t, v.ID(), e.To().ID())
		}
		outSum += v.OutDegree()
		inSum += v.InDegree()
	}
	assert.Equal(t, g.EdgeCount(), outSum)
	assert.Equal(t, g.EdgeCount(), inSum)

	for _, e := range g.Edges() {
		assert.True(t, e.Valid())
	}
}

func TestFind_OutOfRange(t *testing.T) {
	g := core.NewGraph[string, string]()
	g.AddVertex("A")

	_, err := g.FindVertex(-1)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	_, err = g.FindVertex(1)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	_, err = g.FindEdge(0)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)

	v, err := g.FindVertex(0)
	require.NoError(t, err)
	assert.Equal(t, "A", v.Value())
}

func TestHandle_Validity(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	assert.True(t, a.Valid())
	assert.Same(t, g, a.Graph())

	var zero core.Vertex[string, string]
	assert.False(t, zero.Valid())
	assert.Nil(t, zero.Graph())
	assert.Equal(t, "Vertex(invalid)", zero.String())

	require.NoError(t, g.RemoveVertex(a))
	assert.False(t, a.Valid(), "handle past the arena end is invalid")
}

func TestSetValue(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	e, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)

	a.SetValue("A2")
	e.SetValue("ab2")
	assert.Equal(t, "A2", a.Value())
	assert.Equal(t, "ab2", e.Value())
	// Value updates are not structural: handles stay live.
	assert.True(t, a.Valid())
	assert.True(t, e.Valid())
}

func TestClear(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	_, err := g.AddEdge(a, a, "aa")
	require.NoError(t, err)

	g.Clear()
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, a.Valid())
}

func TestString_Rendering(t *testing.T) {
	g := core.NewGraph[string, string]()
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	e, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)

	assert.Equal(t, "Vertex(0)", a.String())
	assert.Equal(t, "Edge(0: 0->1)", e.String())
}
