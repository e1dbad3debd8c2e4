package pathfind

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/anya"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/astar"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

// Path is a polyline of lattice points from start to goal. Length is the cost
// reported by the planner.
type Path struct {
	Points []gridmap.Point
	Length float64
}

// Reconstruct follows the parent chain of an astar goal node.
func Reconstruct(goal *astar.PointNode) Path {
	if goal == nil {
		return Path{}
	}
	var pts []gridmap.Point
	for n := goal; n != nil; n = n.Parent {
		pts = append(pts, n.Point())
	}
	slices.Reverse(pts)

	return Path{Points: pts, Length: goal.G}
}

// ReconstructInterval follows the parent chain of an anya terminal node. The
// points are the roots along the chain, i.e. the turning points.
func ReconstructInterval(goal *anya.IntervalNode) Path {
	if goal == nil {
		return Path{}
	}
	var pts []gridmap.Point
	for n := goal; n != nil; n = n.Parent {
		pts = append(pts, n.Root())
	}
	slices.Reverse(pts)

	return Path{Points: pts, Length: goal.G}
}

// Turns returns the path without interior points that continue the previous
// segment in the same direction. The test is an exact integer cross product.
func (p Path) Turns() Path {
	if len(p.Points) <= 2 {
		return Path{Points: slices.Clone(p.Points), Length: p.Length}
	}

	out := []gridmap.Point{p.Points[0]}
	for k := 1; k < len(p.Points)-1; k++ {
		a, b, c := out[len(out)-1], p.Points[k], p.Points[k+1]
		d1i, d1j := b.I-a.I, b.J-a.J
		d2i, d2j := c.I-b.I, c.J-b.J
		if d1i*d2j-d1j*d2i == 0 && d1i*d2i+d1j*d2j > 0 {
			continue
		}
		out = append(out, b)
	}
	out = append(out, p.Points[len(p.Points)-1])

	return Path{Points: out, Length: p.Length}
}

// EuclideanLength sums the segment lengths of the polyline.
func (p Path) EuclideanLength() float64 {
	total := 0.0
	for k := 1; k < len(p.Points); k++ {
		a, b := p.Points[k-1], p.Points[k]
		total += math.Hypot(float64(a.I-b.I), float64(a.J-b.J))
	}
	return total
}

// String lists the points as "(i,j) (i,j) ...".
func (p Path) String() string {
	parts := make([]string, len(p.Points))
	for k, q := range p.Points {
		parts[k] = q.String()
	}
	return strings.Join(parts, " ")
}

// Validate checks every segment of p with LineOfSight. With taut set, every
// interior point must also touch an obstacle cell, as on any shortest
// any-angle path.
func Validate(m *gridmap.Map, p Path, taut bool) error {
	for k := 1; k < len(p.Points); k++ {
		a, b := p.Points[k-1], p.Points[k]
		if !m.LineOfSight(a.I, a.J, b.I, b.J) {
			return fmt.Errorf("%w: %v→%v", ErrBlockedSegment, a, b)
		}
	}
	if !taut {
		return nil
	}
	for k := 1; k < len(p.Points)-1; k++ {
		q := p.Points[k]
		if m.IsObstacle(q.I-1, q.J-1) || m.IsObstacle(q.I-1, q.J) || m.IsObstacle(q.I, q.J-1) || m.IsObstacle(q.I, q.J) {
			continue
		}
		return fmt.Errorf("%w: %v", ErrNotTaut, q)
	}

	return nil
}
