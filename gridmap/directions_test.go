package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestKNeighborDirections_Counts(t *testing.T) {
	for k := 2; k <= 10; k++ {
		dirs, err := gridmap.KNeighborDirections(k)
		require.NoError(t, err, "k=%d", k)
		require.Len(t, dirs, 1<<k, "k=%d", k)

		seen := make(map[gridmap.Direction]bool, len(dirs))
		for _, d := range dirs {
			assert.False(t, seen[d], "k=%d duplicate %v", k, d)
			seen[d] = true
			assert.Equal(t, 1, gcd(d.DI, d.DJ), "k=%d non-primitive %v", k, d)
		}
	}
}

func TestKNeighborDirections_Cardinal(t *testing.T) {
	dirs, err := gridmap.KNeighborDirections(2)
	require.NoError(t, err)
	assert.Equal(t, []gridmap.Direction{{DI: 0, DJ: 1}, {DI: 1, DJ: 0}, {DI: 0, DJ: -1}, {DI: -1, DJ: 0}}, dirs)

	dirs, err = gridmap.KNeighborDirections(3)
	require.NoError(t, err)
	assert.Contains(t, dirs, gridmap.Direction{DI: 1, DJ: 1})
	assert.Contains(t, dirs, gridmap.Direction{DI: -1, DJ: 1})

	dirs, err = gridmap.KNeighborDirections(4)
	require.NoError(t, err)
	assert.Contains(t, dirs, gridmap.Direction{DI: 1, DJ: 2})
	assert.Contains(t, dirs, gridmap.Direction{DI: 2, DJ: 1})
}

func TestKNeighborDirections_Invalid(t *testing.T) {
	for _, k := range []int{-1, 0, 1, gridmap.MaxK + 1} {
		dirs, err := gridmap.KNeighborDirections(k)
		assert.Nil(t, dirs)
		assert.ErrorIs(t, err, gridmap.ErrInvalidConnectivity, "k=%d", k)
	}
}

// TestNeighbors_EmptyGrid places a point far enough from the border that every
// k-connected move lands on the grid.
func TestNeighbors_EmptyGrid(t *testing.T) {
	m := emptyMap(t, 15, 30)
	p := gridmap.Point{I: 7, J: 7}
	for k := 2; k <= 6; k++ {
		dirs, err := gridmap.KNeighborDirections(k)
		require.NoError(t, err)
		assert.Len(t, m.Neighbors(p, 0, dirs), 1<<k, "k=%d", k)
	}
}

func TestNeighbors_BorderClipsMoves(t *testing.T) {
	m := emptyMap(t, 3, 3)
	dirs, err := gridmap.KNeighborDirections(3)
	require.NoError(t, err)
	got := m.Neighbors(gridmap.Point{I: 0, J: 0}, 0, dirs)
	assert.ElementsMatch(t, []gridmap.Point{{I: 0, J: 1}, {I: 1, J: 1}, {I: 1, J: 0}}, got)
}

func TestSideOfAndNeighbors_DiagonalIntersection(t *testing.T) {
	m, err := gridmap.FromString("#.\n.#\n", 2, 2)
	require.NoError(t, err)
	p := gridmap.Point{I: 1, J: 1}
	require.True(t, m.IsDiagonalIntersection(p.I, p.J))

	assert.Equal(t, 1, m.SideOf(p, gridmap.Point{I: 2, J: 0}))
	assert.Equal(t, 1, m.SideOf(p, gridmap.Point{I: 1, J: 0}))
	assert.Equal(t, -1, m.SideOf(p, gridmap.Point{I: 0, J: 2}))
	assert.Equal(t, 0, m.SideOf(gridmap.Point{I: 0, J: 1}, p), "plain points have no side")

	dirs, err := gridmap.KNeighborDirections(3)
	require.NoError(t, err)

	left := m.Neighbors(p, 1, dirs)
	assert.ElementsMatch(t, []gridmap.Point{{I: 2, J: 1}, {I: 2, J: 0}, {I: 1, J: 0}}, left)
	diagonals := 0
	for _, q := range left {
		if q.I != p.I && q.J != p.J {
			diagonals++
		}
	}
	assert.Equal(t, 1, diagonals)

	right := m.Neighbors(p, -1, dirs)
	assert.ElementsMatch(t, []gridmap.Point{{I: 1, J: 2}, {I: 0, J: 2}, {I: 0, J: 1}}, right)
}
