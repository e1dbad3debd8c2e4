package astar

import (
	"fmt"
	"math"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

// AStar finds a shortest 2^k-directional path from start to goal.
//
// Validation order:
//  1. m must be non-nil (ErrNilMap).
//  2. k must be in 2..gridmap.MaxK (gridmap.ErrInvalidConnectivity).
//  3. start and goal must be lattice points of m (ErrOutOfBounds).
//
// A nil h selects heuristic.Euclidean. An unreachable goal yields
// Found=false and a nil error.
func AStar(m *gridmap.Map, start, goal gridmap.Point, h heuristic.Func, opts ...Option) (search.Result[*PointNode], error) {
	return run(m, start, goal, h, false, opts)
}

// ThetaStar finds an any-angle path from start to goal by relaxing each
// successor onto its grandparent whenever the two see each other.
// Validation and defaults match AStar.
func ThetaStar(m *gridmap.Map, start, goal gridmap.Point, h heuristic.Func, opts ...Option) (search.Result[*PointNode], error) {
	return run(m, start, goal, h, true, opts)
}

func run(m *gridmap.Map, start, goal gridmap.Point, h heuristic.Func, theta bool, opts []Option) (search.Result[*PointNode], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return search.Result[*PointNode]{}, ErrNilMap
	}
	dirs, err := gridmap.KNeighborDirections(cfg.K)
	if err != nil {
		return search.Result[*PointNode]{}, err
	}
	for _, p := range []gridmap.Point{start, goal} {
		if !m.InBounds(p.I, p.J) {
			return search.Result[*PointNode]{}, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, p, m.Height(), m.Width())
		}
	}

	gen := &generator{
		m:     m,
		goal:  goal,
		h:     orDefault(h),
		dirs:  dirs,
		theta: theta,
	}
	root := &PointNode{I: start.I, J: start.J}
	root.H = gen.h(float64(start.I), float64(start.J), float64(goal.I), float64(goal.J))
	root.F = root.H

	return search.Run[*PointNode, Key]([]*PointNode{root}, gen, cfg.Search...)
}

// generator produces k-neighbour successors, optionally with Theta* relaxation.
type generator struct {
	m     *gridmap.Map
	goal  gridmap.Point
	h     heuristic.Func
	dirs  []gridmap.Direction
	theta bool
	seq   int
}

func (g *generator) Key(n *PointNode) Key     { return Key{I: n.I, J: n.J, Side: n.Side} }
func (g *generator) G(n *PointNode) float64   { return n.G }
func (g *generator) IsGoal(n *PointNode) bool { return n.I == g.goal.I && n.J == g.goal.J }
func (g *generator) Score(n *PointNode) search.Score {
	return search.Score{F: n.F, H: n.H, Seq: n.Seq}
}

// Expand emits one child per traversable direction whose identity is not
// closed yet. Under Theta* a child visible from the grandparent is attached
// to it.
func (g *generator) Expand(n *PointNode, closed *search.Closed[Key]) []*PointNode {
	p := n.Point()
	next := g.m.Neighbors(p, n.Side, g.dirs)
	out := make([]*PointNode, 0, len(next))

	var parent *PointNode
	var side int
	var cost float64
	for _, q := range next {
		parent, cost = n, n.G+dist(n.I, n.J, q.I, q.J)
		if g.theta && n.Parent != nil && g.m.LineOfSight(n.Parent.I, n.Parent.J, q.I, q.J) {
			parent = n.Parent
			cost = parent.G + dist(parent.I, parent.J, q.I, q.J)
		}

		side = g.m.SideOf(q, parent.Point())
		if closed.Contains(Key{I: q.I, J: q.J, Side: side}) {
			continue
		}

		g.seq++
		child := &PointNode{
			I:      q.I,
			J:      q.J,
			G:      cost,
			H:      g.h(float64(q.I), float64(q.J), float64(g.goal.I), float64(g.goal.J)),
			Seq:    g.seq,
			Side:   side,
			Parent: parent,
		}
		child.F = child.G + child.H
		out = append(out, child)
	}

	return out
}

func dist(i1, j1, i2, j2 int) float64 {
	return math.Hypot(float64(i1-i2), float64(j1-j2))
}
