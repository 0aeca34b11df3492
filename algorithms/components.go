// Package algorithms: weak connectivity and component labelling.
//
// Both operations are worklist flood fills following edges in both
// directions, so two vertices land in the same component exactly when
// some undirected path joins them.

package algorithms

import "github.com/quiverlib/quiver/core"

// IsConnected reports whether g is weakly connected: every vertex is
// reachable from vertex 0 when edges may be followed either way. An
// empty or nil graph is connected.
// Complexity: O(V + E).
func IsConnected[V, E any](g *core.Graph[V, E]) bool {
	if g == nil || g.IsEmpty() {
		return true
	}
	reached := 0
	fill(g, 0, func(int) { reached++ })

	return reached == g.VertexCount()
}

// ConnectedComponents labels every vertex with a component id and
// returns (componentOf indexed by vertex id, component count).
// Component ids are sequential in the order components are first
// discovered, scanning roots in ascending vertex id order.
// Complexity: O(V + E).
func ConnectedComponents[V, E any](g *core.Graph[V, E]) ([]int, int) {
	if g == nil {
		return nil, 0
	}
	n := g.VertexCount()
	componentOf := make([]int, n)
	for i := range componentOf {
		componentOf[i] = -1
	}

	count := 0
	for root := 0; root < n; root++ {
		if componentOf[root] >= 0 {
			continue
		}
		label := count
		fillUnlabelled(g, root, componentOf, label)
		count++
	}

	return componentOf, count
}

// fill runs one flood fill from root following edges both ways,
// invoking visit once per reached vertex.
func fill[V, E any](g *core.Graph[V, E], root int, visit func(id int)) {
	seen := make([]bool, g.VertexCount())
	seen[root] = true
	queue := []int{root}
	for qi := 0; qi < len(queue); qi++ {
		visit(queue[qi])
		v, _ := g.FindVertex(queue[qi])
		for _, e := range v.OutEdges() {
			if t := e.To().ID(); !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
		for _, e := range v.InEdges() {
			if s := e.From().ID(); !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
}

// fillUnlabelled floods label from root across vertices still labelled -1.
func fillUnlabelled[V, E any](g *core.Graph[V, E], root int, componentOf []int, label int) {
	componentOf[root] = label
	queue := []int{root}
	for qi := 0; qi < len(queue); qi++ {
		v, _ := g.FindVertex(queue[qi])
		for _, e := range v.OutEdges() {
			if t := e.To().ID(); componentOf[t] < 0 {
				componentOf[t] = label
				queue = append(queue, t)
			}
		}
		for _, e := range v.InEdges() {
			if s := e.From().ID(); componentOf[s] < 0 {
				componentOf[s] = label
				queue = append(queue, s)
			}
		}
	}
}
