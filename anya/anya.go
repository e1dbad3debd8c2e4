package anya

import (
	"fmt"
	"math"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/rational"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

// Search finds a shortest any-angle path from start to goal.
//
// Validation order:
//  1. m must be non-nil (ErrNilMap).
//  2. start and goal must be lattice points of m (ErrOutOfBounds).
//
// On success Result.Goal is a terminal node on the goal point; its G is the
// path length and its Parent chain holds the turning points back to the
// start. start == goal yields a terminal node with G = 0 and no parent. An
// unreachable goal yields Found=false and a nil error.
func Search(m *gridmap.Map, start, goal gridmap.Point, opts ...Option) (search.Result[*IntervalNode], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return search.Result[*IntervalNode]{}, ErrNilMap
	}
	for _, p := range []gridmap.Point{start, goal} {
		if !m.InBounds(p.I, p.J) {
			return search.Result[*IntervalNode]{}, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, p, m.Height(), m.Width())
		}
	}

	if start == goal {
		return search.Result[*IntervalNode]{
			Found: true,
			Goal:  terminal(goal, 0, nil),
			State: search.Found,
		}, nil
	}

	gen := newGenerator(m, goal, cfg.Check)
	starts := gen.startNodes(start)

	sopts := append(append([]search.Option(nil), cfg.Search...), search.WithFrontierMode(search.Duplicates))
	res, err := search.Run[*IntervalNode, Key](starts, gen, sopts...)
	if err != nil || !res.Found {
		return res, err
	}

	last := res.Goal
	res.Goal = terminal(goal, last.G+dist(last.I, last.J, goal.I, goal.J), last)

	return res, nil
}

func terminal(p gridmap.Point, g float64, parent *IntervalNode) *IntervalNode {
	return &IntervalNode{
		I:        p.I,
		J:        p.J,
		Row:      p.I,
		A:        rational.Int(p.J),
		B:        rational.Int(p.J),
		G:        g,
		F:        g,
		Terminal: true,
		Parent:   parent,
	}
}

// generator expands interval nodes and keeps the best g seen per root.
type generator struct {
	m     *gridmap.Map
	goal  gridmap.Point
	check bool
	roots map[gridmap.Point]float64
	seq   int
	buf   []*IntervalNode // successors of the node being expanded
}

func newGenerator(m *gridmap.Map, goal gridmap.Point, check bool) *generator {
	return &generator{
		m:     m,
		goal:  goal,
		check: check,
		roots: make(map[gridmap.Point]float64),
	}
}

func (g *generator) Key(n *IntervalNode) Key {
	return Key{I: n.I, J: n.J, Row: n.Row, A: n.A, B: n.B}
}
func (g *generator) G(n *IntervalNode) float64   { return n.G }
func (g *generator) IsGoal(n *IntervalNode) bool { return n.Contains(g.goal) }
func (g *generator) Score(n *IntervalNode) search.Score {
	return search.Score{F: n.F, H: n.H, Seq: n.Seq}
}

// Prune drops a popped node whose root was reached more cheaply since the
// node was generated.
func (g *generator) Prune(n *IntervalNode) bool {
	best, ok := g.roots[n.Root()]
	return ok && n.G > best
}

// startNodes seeds the roots record and returns the start intervals.
func (g *generator) startNodes(start gridmap.Point) []*IntervalNode {
	g.roots[start] = 0
	g.buf = g.buf[:0]
	g.startSuccessors(start.I, start.J)

	out := make([]*IntervalNode, 0, len(g.buf))
	for _, s := range g.buf {
		g.finish(s)
		out = append(out, s)
	}

	return out
}

// Expand links and scores the successors of n. A successor is dropped when
// its key is already closed or its root is known with a smaller g.
func (g *generator) Expand(n *IntervalNode, closed *search.Closed[Key]) []*IntervalNode {
	g.buf = g.buf[:0]
	if n.Flat() {
		g.expandFlat(n)
	} else {
		g.expandCone(n)
	}

	out := make([]*IntervalNode, 0, len(g.buf))
	for _, s := range g.buf {
		if closed.Stale(g.Key(s), s.G) {
			continue
		}
		root := s.Root()
		if best, ok := g.roots[root]; ok && s.G > best {
			continue
		}
		g.roots[root] = s.G

		// A successor sharing the root continues the same segment.
		if s.I == n.I && s.J == n.J {
			s.Parent = n.Parent
		} else {
			s.Parent = n
		}
		g.finish(s)
		out = append(out, s)
	}

	return out
}

func (g *generator) finish(s *IntervalNode) {
	s.H = g.estimate(s)
	s.F = s.G + s.H
	g.seq++
	s.Seq = g.seq
}

// emit records a successor with root (ri, rj) on row with interval [a, b].
func (g *generator) emit(ri, rj, row int, a, b rational.Frac, cost float64) {
	n := &IntervalNode{I: ri, J: rj, Row: row, A: a, B: b, G: cost}
	if g.check {
		g.verify(n)
	}
	g.buf = append(g.buf, n)
}

// verify panics with ErrInvariant when n is malformed: an inverted interval,
// or a root or endpoint with no free cell around it.
func (g *generator) verify(n *IntervalNode) {
	switch {
	case n.B.Less(n.A):
		panic(fmt.Errorf("%w: inverted interval [%v, %v] on row %d", ErrInvariant, n.A, n.B, n.Row))
	case !g.m.Free(n.I, n.J):
		panic(fmt.Errorf("%w: root (%d,%d) is enclosed", ErrInvariant, n.I, n.J))
	case !g.m.Free(n.Row, n.A.Ceil()):
		panic(fmt.Errorf("%w: endpoint %v on row %d is enclosed", ErrInvariant, n.A, n.Row))
	case !g.m.Free(n.Row, n.B.Floor()):
		panic(fmt.Errorf("%w: endpoint %v on row %d is enclosed", ErrInvariant, n.B, n.Row))
	}
}

// estimate is the Euclidean length of the shortest route from the root of n
// through its interval to the goal. A goal behind the interval row is
// mirrored across it.
func (g *generator) estimate(n *IntervalNode) float64 {
	gi, gj := g.goal.I, g.goal.J
	if !(n.I <= n.Row && n.Row <= gi) && !(n.I >= n.Row && n.Row >= gi) {
		gi = 2*n.Row - gi
	}

	if gi == n.I {
		j, a, b, t := float64(n.J), n.A.Float64(), n.B.Float64(), float64(gj)
		return math.Min(math.Abs(j-a)+math.Abs(a-t), math.Abs(j-b)+math.Abs(b-t))
	}

	// Column where the straight line from the root to the goal crosses Row.
	cross := rational.Int(n.J).Add(rational.New(int64((gj-n.J)*(n.Row-n.I)), int64(gi-n.I)))
	if n.A.Cmp(cross) <= 0 && cross.Cmp(n.B) <= 0 {
		return dist(n.I, n.J, gi, gj)
	}

	row := float64(n.Row)
	via := func(e rational.Frac) float64 {
		x := e.Float64()
		return math.Hypot(float64(n.I)-row, float64(n.J)-x) + math.Hypot(float64(gi)-row, float64(gj)-x)
	}

	return math.Min(via(n.A), via(n.B))
}

func dist(i1, j1, i2, j2 int) float64 {
	return math.Hypot(float64(i1-i2), float64(j1-j2))
}
