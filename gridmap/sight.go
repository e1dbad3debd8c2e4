package gridmap

import "github.com/DenisKorotchenko/any-angle-paths-heuristic-search/rational"

// TraversableStep reports whether the straight segment between lattice points
// (i1,j1) and (i2,j2) avoids every obstacle interior.
//
// Rules:
//   - Horizontal and vertical segments run along grid lines; every unit piece
//     needs at least one free cell on either side of the line.
//   - Any other segment is walked row strip by row strip with exact rational
//     columns; every cell whose interior the segment crosses must be free.
//     Cells touched only at a corner are not crossed.
//
// Intermediate lattice points are not inspected; use LineOfSight for segments
// that may pass exactly through a pinched obstacle corner.
// The test is symmetric in its endpoints. Complexity: O(|Δi| + |Δj|).
func (m *Map) TraversableStep(i1, j1, i2, j2 int) bool {
	if i1 == i2 && j1 == j2 {
		return true
	}
	if i1 == i2 {
		lo, hi := minInt(j1, j2), maxInt(j1, j2)
		for c := lo; c < hi; c++ {
			if m.IsObstacle(i1-1, c) && m.IsObstacle(i1, c) {
				return false
			}
		}
		return true
	}
	if j1 == j2 {
		lo, hi := minInt(i1, i2), maxInt(i1, i2)
		for r := lo; r < hi; r++ {
			if m.IsObstacle(r, j1-1) && m.IsObstacle(r, j1) {
				return false
			}
		}
		return true
	}
	if i1 > i2 {
		i1, i2 = i2, i1
		j1, j2 = j2, j1
	}

	d := rational.New(int64(j2-j1), int64(i2-i1))
	x0 := rational.Int(j1)
	for i := i1; i < i2; i++ {
		x1 := x0.Add(d)
		lo := rational.Min(x0, x1).Floor()
		hi := rational.Max(x0, x1).Ceil() - 1
		for c := lo; c <= hi; c++ {
			if m.IsObstacle(i, c) {
				return false
			}
		}
		x0 = x1
	}

	return true
}

// LineOfSight reports whether a straight segment between lattice points
// (i1,j1) and (i2,j2) is traversable as a whole. The segment is split at
// every lattice point it passes through; each piece must satisfy
// TraversableStep, and passing through an intermediate point whose opposite
// cells are both obstacles (a pinch) blocks the segment.
//
// LineOfSight is reflexive and symmetric. Complexity: O(|Δi| + |Δj|).
func (m *Map) LineOfSight(i1, j1, i2, j2 int) bool {
	if i1 == i2 {
		if j1 > j2 {
			j1, j2 = j2, j1
		}
		for j := j1; j < j2; j++ {
			if !m.TraversableStep(i1, j, i1, j+1) {
				return false
			}
			if j+1 != j2 && m.Pinched(i1, j+1) {
				return false
			}
		}
		return true
	}
	if i1 > i2 {
		i1, i2 = i2, i1
		j1, j2 = j2, j1
	}

	d := rational.New(int64(j2-j1), int64(i2-i1))
	prevI, prevJ := i1, j1
	j := rational.Int(j1)
	for i := i1 + 1; i <= i2; i++ {
		j = j.Add(d)
		if !j.IsInt() {
			continue
		}
		jn := int(j.Num())
		if !m.TraversableStep(prevI, prevJ, i, jn) {
			return false
		}
		prevI, prevJ = i, jn
		if i != i2 && m.Pinched(i, jn) {
			return false
		}
	}

	return true
}

// Pinched reports whether two diagonally opposite cells around point (i,j)
// are both obstacles, so no straight path may pass through the point.
func (m *Map) Pinched(i, j int) bool {
	return (m.IsObstacle(i-1, j) && m.IsObstacle(i, j-1)) ||
		(m.IsObstacle(i-1, j-1) && m.IsObstacle(i, j))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
