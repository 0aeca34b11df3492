// Package core: graph copying and value-type conversion.
//
// Clone and CopyFrom duplicate a graph within the same value types;
// Convert rebuilds a graph under new value types through caller-supplied
// converter functions. All three preserve ids and connectivity exactly.

package core

// Clone returns a deep copy of the graph: same ids, same connectivity,
// values copied by assignment. Reference-typed values consequently share
// their referents between the two graphs.
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := &Graph[V, E]{
		vertices: make([]vertexRec[V], len(g.vertices)),
		edges:    append([]edgeRec[E](nil), g.edges...),
	}
	for i, vr := range g.vertices {
		clone.vertices[i] = vertexRec[V]{
			value: vr.value,
			out:   append([]int(nil), vr.out...),
			in:    append([]int(nil), vr.in...),
		}
	}

	return clone
}

// CopyFrom replaces the receiver's contents with a deep copy of src,
// invalidating all handles into the receiver. Copying a graph onto
// itself is a no-op.
// Returns ErrGraphNil when src is nil.
// Complexity: O(V + E) of src.
func (g *Graph[V, E]) CopyFrom(src *Graph[V, E]) error {
	if src == nil {
		return ErrGraphNil
	}
	if src == g {
		return nil
	}
	cp := src.Clone()
	g.vertices = cp.vertices
	g.edges = cp.edges

	return nil
}

// Convert rebuilds src as a graph with value types V2, E2: identical
// ids and connectivity, each value passed through its converter once.
// Returns ErrGraphNil when src is nil and ErrNilConverter when either
// converter is nil.
// Complexity: O(V + E).
func Convert[V1, E1, V2, E2 any](src *Graph[V1, E1], vconv func(V1) V2, econv func(E1) E2) (*Graph[V2, E2], error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	if vconv == nil || econv == nil {
		return nil, ErrNilConverter
	}

	dst := &Graph[V2, E2]{
		vertices: make([]vertexRec[V2], len(src.vertices)),
		edges:    make([]edgeRec[E2], len(src.edges)),
	}
	for i, vr := range src.vertices {
		dst.vertices[i] = vertexRec[V2]{
			value: vconv(vr.value),
			out:   append([]int(nil), vr.out...),
			in:    append([]int(nil), vr.in...),
		}
	}
	for i, er := range src.edges {
		dst.edges[i] = edgeRec[E2]{from: er.from, to: er.to, value: econv(er.value)}
	}

	return dst, nil
}
