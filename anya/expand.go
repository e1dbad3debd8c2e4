package anya

import "github.com/DenisKorotchenko/any-angle-paths-heuristic-search/rational"

// Rows are walked in direction dir: -1 upwards, +1 downwards. For a point row
// r, between(r, dir) is the cell row crossed when moving to r+dir and
// behind(r, dir) the cell row on the other side of r.

func between(r, dir int) int {
	if dir > 0 {
		return r
	}
	return r - 1
}

func behind(r, dir int) int { return between(r, -dir) }

func (g *generator) obst(i, j int) bool { return g.m.IsObstacle(i, j) }

// split reports whether the cells of row c on both sides of column j differ.
func (g *generator) split(c, j int) bool { return g.obst(c, j-1) != g.obst(c, j) }

// corner reports whether point (i, j) is where either adjacent cell row
// changes between free and blocked.
func (g *generator) corner(i, j int) bool { return g.split(i, j) || g.split(i-1, j) }

// flatRight walks along point row i from column j to the next corner or the
// map border.
func (g *generator) flatRight(i, j int) int {
	for g.m.InBounds(i, j+1) {
		j++
		if g.corner(i, j) {
			break
		}
	}
	return j
}

func (g *generator) flatLeft(i, j int) int {
	for g.m.InBounds(i, j-1) {
		j--
		if g.corner(i, j) {
			break
		}
	}
	return j
}

// startSuccessors emits the flat and cone intervals visible from (i, j).
func (g *generator) startSuccessors(i, j int) {
	if !g.obst(i-1, j) || !g.obst(i, j) {
		if tj := g.flatRight(i, j); tj > j {
			g.emit(i, j, i, rational.Int(j), rational.Int(tj), 0)
		}
	}
	if !g.obst(i-1, j-1) || !g.obst(i, j-1) {
		if tj := g.flatLeft(i, j); tj < j {
			g.emit(i, j, i, rational.Int(tj), rational.Int(j), 0)
		}
	}

	for _, dir := range [2]int{-1, 1} {
		c, next := between(i, dir), between(i+dir, dir)
		if g.obst(c, j-1) && g.obst(c, j) {
			continue
		}

		aj, bj := j, j
		for !g.obst(c, aj-1) {
			aj--
		}
		for !g.obst(c, bj) {
			bj++
		}

		prev := aj
		for tj := aj + 1; tj < bj; tj++ {
			if g.split(next, tj) {
				g.emit(i, j, i+dir, rational.Int(prev), rational.Int(tj), 0)
				prev = tj
			}
		}
		if bj > prev {
			g.emit(i, j, i+dir, rational.Int(prev), rational.Int(bj), 0)
		}
	}
}

// expandFlat continues a flat interval past its far endpoint and opens the
// cones that become visible around the corner found there.
func (g *generator) expandFlat(n *IntervalNode) {
	pi, pj := n.Row, n.B.Floor()
	if n.A.SubInt(n.J).Abs().Cmp(n.B.SubInt(n.J).Abs()) > 0 {
		pj = n.A.Floor()
	}
	if g.m.Pinched(pi, pj) {
		return
	}

	right := pj > n.J
	cost := n.G + dist(n.I, n.J, pi, pj)

	// 1) Same root, further along the row.
	if right {
		if !g.obst(pi-1, pj) || !g.obst(pi, pj) {
			g.emit(n.I, n.J, pi, rational.Int(pj), rational.Int(g.flatRight(pi, pj)), n.G)
		}
	} else if !g.obst(pi-1, pj-1) || !g.obst(pi, pj-1) {
		g.emit(n.I, n.J, pi, rational.Int(g.flatLeft(pi, pj)), rational.Int(pj), n.G)
	}

	// 2) Cones rooted at (pi, pj) on both neighbouring rows.
	for _, dir := range [2]int{-1, 1} {
		c, next, ti := between(pi, dir), between(pi+dir, dir), pi+dir
		if right {
			if !g.obst(c, pj-1) || g.obst(c, pj) {
				continue
			}
			prev, tj := pj, pj
			for g.m.InBounds(ti, tj+1) {
				tj++
				if g.obst(c, tj) {
					g.emit(pi, pj, ti, rational.Int(prev), rational.Int(tj), cost)
					break
				}
				if g.split(next, tj) {
					g.emit(pi, pj, ti, rational.Int(prev), rational.Int(tj), cost)
					prev = tj
				}
			}
			continue
		}

		if !g.obst(c, pj) || g.obst(c, pj-1) {
			continue
		}
		prev, tj := pj, pj
		for g.m.InBounds(ti, tj-1) {
			tj--
			if g.obst(c, tj-1) {
				g.emit(pi, pj, ti, rational.Int(tj), rational.Int(prev), cost)
				break
			}
			if g.split(next, tj) {
				g.emit(pi, pj, ti, rational.Int(tj), rational.Int(prev), cost)
				prev = tj
			}
		}
	}
}

// expandCone projects a cone interval one row further away from its root and
// turns it around obstacle corners at integral endpoints.
func (g *generator) expandCone(n *IntervalNode) {
	dir := 1
	if n.Row < n.I {
		dir = -1
	}
	ai, ti := n.Row, n.Row+dir
	c, next, back := between(ai, dir), between(ti, dir), behind(ai, dir)

	// Projection of the endpoints onto row ti.
	scale := rational.New(int64(n.I-ti), int64(n.I-ai))
	root := rational.Int(n.J)
	taj := root.Add(n.A.Sub(root).Mul(scale))
	tbj := root.Add(n.B.Sub(root).Mul(scale))

	switch {
	case !g.obst(c, n.A.Floor()):
		canLeft, canRight := g.project(n, ti, c, next, taj, tbj)

		if n.A.IsInt() && g.obst(back, n.A.Floor()-1) {
			g.turnLeft(n, n.A.Floor(), ti, c, next, taj, canLeft)
		}
		if n.B.IsInt() && g.obst(back, n.B.Floor()) {
			g.turnRight(n, n.B.Floor(), ti, c, next, tbj, canRight)
		}

	case (n.A.IsInt() && g.obst(c, n.A.Floor())) || (n.B.IsInt() && g.obst(c, n.B.Floor()-1)):
		// The interval sits on top of a blocked cell row; only the turns
		// around its integral endpoints remain.
		if aj := n.A.Floor(); n.A.IsInt() && !g.obst(back, aj-1) {
			cost := n.G + dist(n.I, n.J, ai, aj)
			prev, tj := aj, aj+1
			for g.m.InBounds(ti, tj-1) {
				tj--
				if g.obst(c, tj-1) {
					break
				}
				if g.split(next, tj) {
					if tj < prev {
						g.emit(ai, aj, ti, rational.Int(tj), rational.Int(prev), cost)
					}
					prev = tj
				}
			}
			if tj < prev {
				g.emit(ai, aj, ti, rational.Int(tj), rational.Int(prev), cost)
			}
		}
		if bj := n.B.Floor(); n.B.IsInt() && !g.obst(back, bj) {
			cost := n.G + dist(n.I, n.J, ai, bj)
			prev, tj := bj, bj-1
			for g.m.InBounds(ti, tj+1) {
				tj++
				if g.obst(c, tj) {
					break
				}
				if g.split(next, tj) {
					if tj > prev {
						g.emit(ai, bj, ti, rational.Int(prev), rational.Int(tj), cost)
					}
					prev = tj
				}
			}
			if tj > prev {
				g.emit(ai, bj, ti, rational.Int(prev), rational.Int(tj), cost)
			}
		}
	}
}

// project emits the projection [taj, tbj] of n onto row ti, clipped by the
// crossed cell row c and split where row next changes. canLeft and canRight
// report whether the projection reached past the respective endpoint unclipped.
func (g *generator) project(n *IntervalNode, ti, c, next int, taj, tbj rational.Frac) (canLeft, canRight bool) {
	if !g.m.InBounds(ti, 0) {
		return false, false
	}
	if taj.Cmp(n.B) > 0 {
		for tj := n.B.Floor(); taj.CmpInt(tj) > 0; tj++ {
			if g.obst(c, tj) {
				return false, false
			}
		}
	}
	if tbj.Cmp(n.A) < 0 {
		for tj := n.A.Ceil(); tbj.CmpInt(tj) < 0; tj-- {
			if g.obst(c, tj-1) {
				return false, false
			}
		}
	}

	canLeft, canRight = true, true
	prev := taj
	tj := taj.Floor()
	for ; n.A.CmpInt(tj) > 0; tj++ {
		if g.obst(c, tj) {
			canLeft = false
			prev = rational.Int(tj + 1)
		}
	}

	tj = prev.Floor()
	if prev.IsInt() {
		tj--
	}
	for {
		tj++
		if tbj.CmpInt(tj) <= 0 {
			if tbj.Cmp(prev) > 0 {
				g.emit(n.I, n.J, ti, prev, tbj, n.G)
			}
			return canLeft, canRight
		}
		if g.obst(c, tj) {
			if prev.CmpInt(tj) < 0 {
				g.emit(n.I, n.J, ti, prev, rational.Int(tj), n.G)
			}
			return canLeft, false
		}
		if g.split(next, tj) {
			if prev.CmpInt(tj) < 0 {
				g.emit(n.I, n.J, ti, prev, rational.Int(tj), n.G)
			}
			prev = rational.Int(tj)
		}
	}
}

// turnLeft roots new intervals at the corner (ai, aj) on the left end of n:
// a flat interval along row ai and, if the projection was not clipped on the
// left, the part of row ti hidden from the old root.
func (g *generator) turnLeft(n *IntervalNode, aj, ti, c, next int, taj rational.Frac, canLeft bool) {
	ai := n.Row
	cost := n.G + dist(n.I, n.J, ai, aj)

	if !g.obst(c, aj-1) && !g.obst(c, aj) {
		g.emit(ai, aj, ai, rational.Int(g.flatLeft(ai, aj)), rational.Int(aj), cost)
	}
	if !canLeft {
		return
	}

	prev := taj
	tj := taj.Floor() + 1
	if g.obst(c, tj-1) {
		prev = rational.Int(tj - 1)
	}
	for g.m.InBounds(ti, tj-1) {
		tj--
		if g.obst(c, tj-1) {
			break
		}
		if g.split(next, tj) {
			if prev.CmpInt(tj) > 0 {
				g.emit(ai, aj, ti, rational.Int(tj), prev, cost)
			}
			prev = rational.Int(tj)
		}
	}
	if prev.CmpInt(tj) > 0 {
		g.emit(ai, aj, ti, rational.Int(tj), prev, cost)
	}
}

// turnRight mirrors turnLeft for the corner (ai, bj) on the right end of n.
func (g *generator) turnRight(n *IntervalNode, bj, ti, c, next int, tbj rational.Frac, canRight bool) {
	ai := n.Row
	cost := n.G + dist(n.I, n.J, ai, bj)

	if !g.obst(c, bj-1) && !g.obst(c, bj) {
		g.emit(ai, bj, ai, rational.Int(bj), rational.Int(g.flatRight(ai, bj)), cost)
	}
	if !canRight {
		return
	}

	prev := tbj
	tj := tbj.Ceil() - 1
	if g.obst(c, tj) {
		prev = rational.Int(tj + 1)
	}
	for g.m.InBounds(ti, tj+1) {
		tj++
		if g.obst(c, tj) {
			break
		}
		if g.split(next, tj) {
			if prev.CmpInt(tj) < 0 {
				g.emit(ai, bj, ti, prev, rational.Int(tj), cost)
			}
			prev = rational.Int(tj)
		}
	}
	if prev.CmpInt(tj) < 0 {
		g.emit(ai, bj, ti, prev, rational.Int(tj), cost)
	}
}
