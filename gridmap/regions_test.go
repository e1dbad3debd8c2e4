package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

func TestRegions(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		h, w   int
		count  int
		joined [][2]gridmap.Point
		apart  [][2]gridmap.Point
	}{
		{
			name: "Open", src: "...\n...\n", h: 2, w: 3, count: 1,
			joined: [][2]gridmap.Point{{{I: 0, J: 0}, {I: 2, J: 3}}},
		},
		{
			name: "Wall", src: "...\n##.\n...\n", h: 3, w: 3, count: 1,
			joined: [][2]gridmap.Point{{{I: 0, J: 0}, {I: 3, J: 0}}},
		},
		{
			name: "Split", src: ".#.\n.#.\n", h: 2, w: 3, count: 2,
			joined: [][2]gridmap.Point{{{I: 0, J: 0}, {I: 2, J: 1}}, {{I: 1, J: 2}, {I: 0, J: 3}}},
			apart:  [][2]gridmap.Point{{{I: 0, J: 0}, {I: 0, J: 3}}, {{I: 0, J: 1}, {I: 0, J: 2}}},
		},
		{
			name: "Blocked", src: "#\n", h: 1, w: 1, count: 4,
			apart: [][2]gridmap.Point{{{I: 0, J: 0}, {I: 0, J: 1}}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridmap.FromString(tc.src, tc.h, tc.w)
			require.NoError(t, err)
			r := m.Regions()
			assert.Equal(t, tc.count, r.Count())
			for _, pq := range tc.joined {
				assert.True(t, r.Connected(pq[0], pq[1]), "%v-%v", pq[0], pq[1])
				assert.True(t, r.Connected(pq[1], pq[0]))
			}
			for _, pq := range tc.apart {
				assert.False(t, r.Connected(pq[0], pq[1]), "%v-%v", pq[0], pq[1])
			}
		})
	}
}

func TestRegions_OffLattice(t *testing.T) {
	m := emptyMap(t, 2, 2)
	r := m.Regions()
	assert.Equal(t, -1, r.Label(gridmap.Point{I: 3, J: 0}))
	assert.Equal(t, -1, r.Label(gridmap.Point{I: 0, J: 3}))
	assert.Equal(t, -1, r.Label(gridmap.Point{I: -1, J: 0}))
	assert.False(t, r.Connected(gridmap.Point{I: 0, J: 3}, gridmap.Point{I: 0, J: 3}))
	assert.True(t, r.Connected(gridmap.Point{I: 2, J: 2}, gridmap.Point{I: 2, J: 2}))
}
