// Package algorithms: reachability via the traversal engine.

package algorithms

import (
	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/idset"
	"github.com/quiverlib/quiver/traverse"
)

// Reachable returns the set of vertex ids a traversal rooted at start
// can deliver, following edges in the given direction. With Forward it
// answers "what does start reach", with Reverse "what reaches start";
// start itself is always a member.
// Returns ErrGraphNil for a nil graph and forwards traversal
// construction errors (stale start handle, unknown direction).
// Complexity: O(V + E).
func Reachable[V, E any](g *core.Graph[V, E], start core.Vertex[V, E], dir traverse.Direction) (*idset.Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	tr, err := traverse.NewVertexTraversal(g, start, traverse.WithDirection(dir))
	if err != nil {
		return nil, err
	}

	out := idset.New(g.VertexCount())
	for tr.HasNext() {
		v, err := tr.Next()
		if err != nil {
			return nil, err
		}
		out.Add(v.ID())
	}

	return out, nil
}
