// Package algorithms: cycle detection and cycle breaking.
//
// Both operations drive the same depth-first walk over forward edges
// from every unvisited root, carrying an on-path marker alongside the
// visited set. An edge whose target is on the current path is a back
// edge: proof of a cycle for ContainsCycle, a removal candidate for
// BreakCycles. A target that is merely visited (but not on-path) leads
// into an already-explored region and is not followed again.

package algorithms

import (
	"sort"

	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/idset"
)

// ContainsCycle reports whether g contains a directed cycle. Self-loops
// and parallel edges count. A nil or empty graph is cycle-free.
// Complexity: O(V + E).
func ContainsCycle[V, E any](g *core.Graph[V, E]) bool {
	if g == nil {
		return false
	}
	n := g.VertexCount()
	visited := idset.New(n)
	onPath := idset.New(n)
	for root := 0; root < n; root++ {
		if visited.Contains(root) {
			continue
		}
		if cycleFrom(g, root, visited, onPath) {
			return true
		}
	}

	return false
}

// cycleFrom walks forward edges from id and reports the first back edge.
func cycleFrom[V, E any](g *core.Graph[V, E], id int, visited, onPath *idset.Set) bool {
	visited.Add(id)
	onPath.Add(id)
	v, _ := g.FindVertex(id)
	for _, e := range v.OutEdges() {
		t := e.To().ID()
		if onPath.Contains(t) {
			return true
		}
		if visited.Contains(t) {
			continue
		}
		if cycleFrom(g, t, visited, onPath) {
			return true
		}
	}
	onPath.Remove(id)

	return false
}

// BreakCycles removes every back edge found by a depth-first walk of g
// and returns the number of edges removed; afterwards ContainsCycle(g)
// is false. Which edge of a cycle is removed follows the walk's
// adjacency order and is deterministic but otherwise unspecified.
// Complexity: O(V + E) for the walk plus the removals.
func BreakCycles[V, E any](g *core.Graph[V, E]) int {
	if g == nil {
		return 0
	}

	// 1) Identical walk to ContainsCycle, collecting instead of
	//    short-circuiting.
	n := g.VertexCount()
	visited := idset.New(n)
	onPath := idset.New(n)
	var back []int
	for root := 0; root < n; root++ {
		if !visited.Contains(root) {
			collectBackEdges(g, root, visited, onPath, &back)
		}
	}

	// 2) Remove after the walk completes, in descending id order:
	//    swap-with-last renumbers only the current highest id, which is
	//    then never a still-pending removal.
	sort.Sort(sort.Reverse(sort.IntSlice(back)))
	for _, eid := range back {
		if e, err := g.FindEdge(eid); err == nil {
			_ = g.RemoveEdge(e)
		}
	}

	return len(back)
}

// collectBackEdges appends to back the id of every edge whose target is
// on the current path.
func collectBackEdges[V, E any](g *core.Graph[V, E], id int, visited, onPath *idset.Set, back *[]int) {
	visited.Add(id)
	onPath.Add(id)
	v, _ := g.FindVertex(id)
	for _, e := range v.OutEdges() {
		t := e.To().ID()
		if onPath.Contains(t) {
			*back = append(*back, e.ID())

			continue
		}
		if visited.Contains(t) {
			continue
		}
		collectBackEdges(g, t, visited, onPath, back)
	}
	onPath.Remove(id)
}
