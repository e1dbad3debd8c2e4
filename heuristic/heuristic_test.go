package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
)

func TestDistances(t *testing.T) {
	cases := []struct {
		name string
		f    heuristic.Func
		want float64
	}{
		{"Euclidean", heuristic.Euclidean, 5},
		{"Manhattan", heuristic.Manhattan, 7},
		{"Octile", heuristic.Octile, 1 + 3*math.Sqrt2},
		{"Chebyshev", heuristic.Chebyshev, 4},
		{"Zero", heuristic.Zero, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.f(1, 2, 4, 6), 1e-12)
			assert.InDelta(t, tc.want, tc.f(4, 6, 1, 2), 1e-12, "symmetric")
			assert.Zero(t, tc.f(3, 3, 3, 3))
		})
	}
}

// TestOrdering checks Zero ≤ Chebyshev ≤ Euclidean ≤ Octile ≤ Manhattan on a
// spread of displacements.
func TestOrdering(t *testing.T) {
	for di := -5.0; di <= 5; di++ {
		for dj := -5.0; dj <= 5; dj += 0.5 {
			z := heuristic.Zero(0, 0, di, dj)
			c := heuristic.Chebyshev(0, 0, di, dj)
			e := heuristic.Euclidean(0, 0, di, dj)
			o := heuristic.Octile(0, 0, di, dj)
			m := heuristic.Manhattan(0, 0, di, dj)
			assert.LessOrEqual(t, z, c)
			assert.LessOrEqual(t, c, e+1e-12)
			assert.LessOrEqual(t, e, o+1e-12)
			assert.LessOrEqual(t, o, m+1e-12)
		}
	}
}

func TestByName(t *testing.T) {
	f, err := heuristic.ByName("")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, f(0, 0, 3, 4), 1e-12)

	f, err = heuristic.ByName(" Manhattan ")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, f(0, 0, 3, 4), 1e-12)

	_, err = heuristic.ByName("taxicab")
	assert.ErrorIs(t, err, heuristic.ErrUnknown)

	assert.Equal(t, []string{"chebyshev", "euclidean", "manhattan", "octile", "zero"}, heuristic.Names())
}
