// Package csi — backtracking common-subgraph search.
//
// Solve enumerates correspondences between vertex subsets of two graphs
// that respect the caller's vertex and edge equivalence predicates. The
// search is a depth-first backtracker over a per-level candidate map
// (the vertex availability map, "VAM"): each level either matches the
// most constrained graph-1 vertex against one of its surviving
// candidates, or permanently excludes it, until no vertex can extend
// the correspondence.
//
// Rationale (succinct):
//  1. The VAM at each level is a strict subset of its parent, rebuilt
//     by filtering the parent's rows against the pair just matched; a
//     level never mutates its parent's map, so backtracking is free.
//  2. Branch viability is tested before descending: the matched count
//     plus the number of vertices that still have candidates bounds
//     the achievable size, and branches that cannot reach
//     MinSolutionSize are cut.
//  3. Branching picks the vertex with the fewest candidates (most
//     constrained first), which keeps the branching factor low where
//     the predicates discriminate; ties break to the lowest id, making
//     the solution order deterministic.
//
// Complexity: exponential in the worst case (the problem is NP-hard);
// per level O(n1 * n2 * cost of the edge predicate) for refinement.
// Memory is O(depth * live VAM rows) plus the two availability sets.

package csi

import (
	"strconv"
	"strings"

	"github.com/quiverlib/quiver/core"
	"github.com/quiverlib/quiver/idset"
)

// vam maps a graph-1 vertex id (the index) to the graph-2 vertex ids it
// could still be matched to. Rows of excluded or matched vertices are
// ignored; only rows of still-available vertices are consulted.
type vam [][]int

// solver holds the search state for one Solve call.
type solver[V, E any] struct {
	g1, g2 *core.Graph[V, E]
	opts   Options[V, E]

	avail1 *idset.Set // graph-1 vertices neither matched nor excluded
	avail2 *idset.Set // graph-2 vertices not yet matched
	x, y   []int      // partial correspondence, x[k] <-> y[k]

	found int // correspondences delivered so far
}

// Solve searches g1 and g2 for common subgraph correspondences and
// returns how many were found. Each maximal correspondence of at least
// MinSolutionSize pairs is delivered to the OnSolution callback (when
// set) as parallel id slices. Both graphs are read-only for the
// duration of the call and must not be mutated by the callbacks.
// Returns ErrGraphNil or ErrOptionViolation; the search itself cannot
// fail, and predicates that are never satisfied simply yield zero
// solutions.
func Solve[V, E any](g1, g2 *core.Graph[V, E], opts ...Option[V, E]) (int, error) {
	// 1) Validate inputs and options.
	if g1 == nil || g2 == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions[V, E]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 2) Reset the working state: everything available, nothing matched.
	s := &solver[V, E]{
		g1:     g1,
		g2:     g2,
		opts:   o,
		avail1: idset.New(g1.VertexCount()),
		avail2: idset.New(g2.VertexCount()),
	}
	s.avail1.Fill()
	s.avail2.Fill()

	// 3) Seed the candidate map and recurse.
	s.recurse(s.initVAM())

	return s.found, nil
}

// initVAM seeds the candidate map: (i, j) is a candidate pair when the
// two vertices carry the same number of self-loops, the vertex
// predicate accepts them, and the edge predicate accepts their
// self-loop sets.
func (s *solver[V, E]) initVAM() vam {
	m := make(vam, s.g1.VertexCount())
	s.avail1.ForEach(func(i int) bool {
		vi, _ := s.g1.FindVertex(i)
		loops1 := edgesBetween(s.g1, i, i)
		s.avail2.ForEach(func(j int) bool {
			wj, _ := s.g2.FindVertex(j)
			loops2 := edgesBetween(s.g2, j, j)
			if len(loops1) != len(loops2) {
				return true
			}
			if !s.opts.VertexEquiv(s.g1, vi, s.g2, wj) {
				return true
			}
			if !s.opts.EdgeEquiv(s.g1, vi, vi, loops1, s.g2, wj, wj, loops2) {
				return true
			}
			m[i] = append(m[i], j)

			return true
		})

		return true
	})
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("csi: initial vam\n%s", formatVAM(m, s.avail1))
	}

	return m
}

// recurse explores every extension of the current correspondence
// admitted by m, delivering it once it is maximal and large enough.
func (s *solver[V, E]) recurse(m vam) {
	// 1) Cut branches that cannot reach the minimum size.
	if !s.solutionPossible(m) {
		return
	}

	// 2) No vertex can extend the correspondence: it is maximal, and by
	//    step 1 it has at least MinSolutionSize pairs.
	i := s.pickVertex(m)
	if i < 0 {
		s.emit()

		return
	}

	// 3) Match i against each surviving candidate in turn, recursing
	//    with the refined map, then retract the pair.
	s.avail1.Remove(i)
	for _, j := range m[i] {
		s.avail2.Remove(j)
		s.x = append(s.x, i)
		s.y = append(s.y, j)
		if s.opts.Logger != nil {
			s.opts.Logger.Debug("csi: depth %d: match %d <-> %d", len(s.x), i, j)
		}
		s.recurse(s.refine(m, i, j))
		s.x = s.x[:len(s.x)-1]
		s.y = s.y[:len(s.y)-1]
		s.avail2.Add(j)
	}

	// 4) Also explore leaving i unmatched for good: it stays out of
	//    avail1 while the parent's map carries the siblings unchanged.
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("csi: depth %d: exclude %d", len(s.x), i)
	}
	s.recurse(m)
	s.avail1.Add(i)
}

// solutionPossible reports whether the current branch can still reach
// MinSolutionSize: matched pairs plus available vertices with a
// non-empty row bound the achievable size. Short-circuits at the
// threshold.
func (s *solver[V, E]) solutionPossible(m vam) bool {
	total := len(s.x)
	if total >= s.opts.MinSolutionSize {
		return true
	}
	possible := false
	s.avail1.ForEach(func(i int) bool {
		if len(m[i]) == 0 {
			return true
		}
		total++
		if total >= s.opts.MinSolutionSize {
			possible = true

			return false
		}

		return true
	})

	return possible
}

// pickVertex selects the available graph-1 vertex with the fewest
// candidates (most constrained first); ties break to the lowest id.
// Returns -1 when no available vertex has candidates left.
func (s *solver[V, E]) pickVertex(m vam) int {
	best, bestLen := -1, 0
	s.avail1.ForEach(func(i int) bool {
		if n := len(m[i]); n > 0 && (best < 0 || n < bestLen) {
			best, bestLen = i, n
		}

		return true
	})

	return best
}

// refine derives the child map after matching (i, j): rows survive only
// for still-available graph-1 vertices, and a candidate q survives in
// row p only if q is still available, differs from j, and the edge sets
// joining (i, p) and (j, q) are equivalent in both directions.
func (s *solver[V, E]) refine(m vam, i, j int) vam {
	vi, _ := s.g1.FindVertex(i)
	wj, _ := s.g2.FindVertex(j)
	child := make(vam, len(m))
	s.avail1.ForEach(func(p int) bool {
		row := m[p]
		if len(row) == 0 {
			return true
		}
		vp, _ := s.g1.FindVertex(p)
		fwd1 := edgesBetween(s.g1, i, p)
		rev1 := edgesBetween(s.g1, p, i)
		var keep []int
		for _, q := range row {
			if q == j || !s.avail2.Contains(q) {
				continue
			}
			wq, _ := s.g2.FindVertex(q)
			if !s.opts.EdgeEquiv(s.g1, vi, vp, fwd1, s.g2, wj, wq, edgesBetween(s.g2, j, q)) {
				continue
			}
			if !s.opts.EdgeEquiv(s.g1, vp, vi, rev1, s.g2, wq, wj, edgesBetween(s.g2, q, j)) {
				continue
			}
			keep = append(keep, q)
		}
		child[p] = keep

		return true
	})
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("csi: refined vam after %d <-> %d\n%s", i, j, formatVAM(child, s.avail1))
	}

	return child
}

// emit counts the current correspondence and hands snapshots of it to
// the solution processor.
func (s *solver[V, E]) emit() {
	s.found++
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("csi: solution %d: x=%v y=%v", s.found, s.x, s.y)
	}
	if s.opts.OnSolution == nil {
		return
	}
	matched1 := append([]int(nil), s.x...)
	matched2 := append([]int(nil), s.y...)
	s.opts.OnSolution(s.g1, matched1, s.g2, matched2)
}

// edgesBetween collects the edges running from vertex a to vertex b, in
// a's out-list order.
func edgesBetween[V, E any](g *core.Graph[V, E], a, b int) []core.Edge[V, E] {
	v, _ := g.FindVertex(a)
	var out []core.Edge[V, E]
	for _, e := range v.OutEdges() {
		if e.To().ID() == b {
			out = append(out, e)
		}
	}

	return out
}

// formatVAM renders the rows of available vertices for debug tracing.
func formatVAM(m vam, avail *idset.Set) string {
	var sb strings.Builder
	avail.ForEach(func(i int) bool {
		sb.WriteString("  ")
		sb.WriteString(rowString(i, m[i]))
		sb.WriteByte('\n')

		return true
	})

	return sb.String()
}

// rowString renders one VAM row as "i: [j...]".
func rowString(i int, row []int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(i))
	sb.WriteString(": [")
	for k, j := range row {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(j))
	}
	sb.WriteByte(']')

	return sb.String()
}
