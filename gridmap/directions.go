package gridmap

import "fmt"

// cardinal holds the four unit moves in angular order: E, S, W, N.
var cardinal = [4]Direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// KNeighborDirections returns the 2^k move vectors of k-directional movement.
//
// Construction: start from the four cardinal unit vectors and, for every
// doubling step from 3 up to k, insert between each angularly adjacent pair
// their vector sum. Two buffers alternate as source and destination. The
// angular order is preserved and every vector is primitive (gcd of its
// components is 1), so a single move never passes through another lattice point.
//
// k = 2 yields the cardinal moves, k = 3 adds the diagonals, k = 4 the
// knight-like moves and so on. Returns ErrInvalidConnectivity for k < 2 or k > MaxK.
// Complexity: O(2^k) time and memory.
func KNeighborDirections(k int) ([]Direction, error) {
	if k < 2 || k > MaxK {
		return nil, fmt.Errorf("%w: k=%d, want 2..%d", ErrInvalidConnectivity, k, MaxK)
	}

	var buf [2][]Direction
	buf[0] = append(make([]Direction, 0, 4), cardinal[:]...)
	for step := 3; step <= k; step++ {
		cur, old := step%2, (step+1)%2
		src := buf[old]
		dst := buf[cur][:0]
		if cap(dst) < 2*len(src) {
			dst = make([]Direction, 0, 2*len(src))
		}
		for idx, d := range src {
			next := src[(idx+1)%len(src)]
			dst = append(dst, d, Direction{DI: d.DI + next.DI, DJ: d.DJ + next.DJ})
		}
		buf[cur] = dst
	}

	out := buf[k%2]
	if len(out) != 1<<k {
		return nil, fmt.Errorf("%w: k=%d produced %d directions", ErrInvalidConnectivity, k, len(out))
	}
	return out, nil
}

// SideOf returns the side flag of point p when it is entered from point from.
//
// The flag is 0 unless p is a diagonal intersection. Otherwise +1 means the
// move arrived on the side of smaller columns and -1 on the side of larger
// columns; for vertical arrivals the side is the one whose adjacent cell is free.
func (m *Map) SideOf(p, from Point) int {
	if !m.IsDiagonalIntersection(p.I, p.J) {
		return 0
	}
	if from.J != p.J {
		return sign(p.J - from.J)
	}
	if from.I > p.I {
		if m.IsObstacle(p.I, p.J) {
			return 1
		}
		return -1
	}
	if m.IsObstacle(p.I-1, p.J) {
		return 1
	}
	return -1
}

// Neighbors applies dirs to point p and returns the lattice points reachable by
// a single traversable step. A non-zero side restricts the result to the moves
// leaving a diagonal intersection on the side it was entered from.
// Complexity: O(len(dirs) × step length).
func (m *Map) Neighbors(p Point, side int, dirs []Direction) []Point {
	out := make([]Point, 0, len(dirs))
	var q Point
	for _, d := range dirs {
		q = p.Add(d)
		if !m.InBounds(q.I, q.J) || !m.TraversableStep(p.I, p.J, q.I, q.J) {
			continue
		}
		if side != 0 && !m.leavesOnSide(p, q, side) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// leavesOnSide reports whether the move p→q stays on the given side of the
// diagonal intersection at p.
func (m *Map) leavesOnSide(p, q Point, side int) bool {
	if q.J != p.J {
		return sign(p.J-q.J) == side
	}
	if q.I > p.I {
		return (side == 1 && m.IsObstacle(p.I, p.J)) || (side == -1 && m.IsObstacle(p.I, p.J-1))
	}
	return (side == 1 && m.IsObstacle(p.I-1, p.J)) || (side == -1 && m.IsObstacle(p.I-1, p.J-1))
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
