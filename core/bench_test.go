// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/quiverlib/quiver/core"
)

// starGraph builds a center vertex with n leaves and one edge per leaf.
func starGraph(n int) (*core.Graph[int, int], core.Vertex[int, int]) {
	g := core.NewGraph[int, int]()
	center := g.AddVertex(0)
	for i := 1; i <= n; i++ {
		leaf := g.AddVertex(i)
		_, _ = g.AddEdge(center, leaf, i)
	}

	return g, center
}

// BenchmarkAddVertex measures arena append throughput.
func BenchmarkAddVertex(b *testing.B) {
	g := core.NewGraph[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(i)
	}
}

// BenchmarkAddEdge measures edge insertion into a two-vertex multigraph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[int, int]()
	u := g.AddVertex(0)
	v := g.AddVertex(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(u, v, i)
	}
}

// BenchmarkRemoveEdge_SwapWithLast measures erase plus renumbering by
// repeatedly removing the first edge of a star and re-adding it.
func BenchmarkRemoveEdge_SwapWithLast(b *testing.B) {
	g, center := starGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := g.FindEdge(0)
		_ = g.RemoveEdge(e)
		leaf, _ := g.FindVertex(1)
		_, _ = g.AddEdge(center, leaf, i)
	}
}

// BenchmarkOutEdges measures handle materialization for a 1000-ary vertex.
func BenchmarkOutEdges(b *testing.B) {
	_, center := starGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = center.OutEdges()
	}
}

// BenchmarkClone measures the O(V+E) deep copy on a 1000-leaf star.
func BenchmarkClone(b *testing.B) {
	g, _ := starGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkDepthFirstVisit measures the event walk over a 1000-leaf star.
func BenchmarkDepthFirstVisit(b *testing.B) {
	g, center := starGraph(1000)
	visitor := func(core.Vertex[int, int], bool, core.Vertex[int, int], bool, core.Edge[int, int]) {}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.DepthFirstVisit(center, visitor)
	}
}
