// Package traverse_test provides runnable examples for the traversal engine.
package traverse_test

import (
	"fmt"

	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/traverse"
)

// ExampleNewVertexTraversal walks a small dependency graph depth-first
// and prints each vertex as it is delivered.
func ExampleNewVertexTraversal() {
	g := core.NewGraph[string, struct{}]()
	build := g.AddVertex("build")
	test := g.AddVertex("test")
	lint := g.AddVertex("lint")
	release := g.AddVertex("release")
	g.AddEdge(build, test, struct{}{})
	g.AddEdge(build, lint, struct{}{})
	g.AddEdge(test, release, struct{}{})

	tr, err := traverse.NewVertexTraversal(g, build)
	if err != nil {
		fmt.Println("construct:", err)
		return
	}
	for tr.HasNext() {
		v, _ := tr.Next()
		fmt.Println(v.Value())
	}
	// Output:
	// build
	// test
	// release
	// lint
}

// ExampleTraversal_SkipChildren prunes one subtree during the walk.
func ExampleTraversal_SkipChildren() {
	g := core.NewGraph[string, struct{}]()
	root := g.AddVertex("root")
	sub := g.AddVertex("sub")
	leaf := g.AddVertex("leaf")
	side := g.AddVertex("side")
	g.AddEdge(root, sub, struct{}{})
	g.AddEdge(sub, leaf, struct{}{})
	g.AddEdge(root, side, struct{}{})

	tr, _ := traverse.NewVertexTraversal(g, root)
	for tr.HasNext() {
		v, _ := tr.Current()
		if v.Value() == "sub" {
			tr.SkipChildren() // do not descend into sub's children
		}
		fmt.Println(v.Value())
		tr.Advance()
	}
	// Output:
	// root
	// sub
	// side
}
