// Package core: Graphviz export for debugging.

package core

import (
	"fmt"
	"strings"
)

// DOT renders the graph in Graphviz dot syntax, one node per vertex and
// one arrow per edge, labelled with the fmt "%v" rendering of the
// element values. Intended for debugging and documentation; the output
// is deterministic (ascending id order).
// Complexity: O(V + E).
func (g *Graph[V, E]) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for i, vr := range g.vertices {
		fmt.Fprintf(&sb, "  v%d [label=%q];\n", i, fmt.Sprintf("%v", vr.value))
	}
	for _, er := range g.edges {
		fmt.Fprintf(&sb, "  v%d -> v%d [label=%q];\n", er.from, er.to, fmt.Sprintf("%v", er.value))
	}
	sb.WriteString("}\n")

	return sb.String()
}
