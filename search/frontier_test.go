package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

func TestScore_Less(t *testing.T) {
	cases := []struct {
		name string
		a, b search.Score
		want bool
	}{
		{"LowerF", search.Score{F: 1, H: 5}, search.Score{F: 2, H: 0}, true},
		{"HigherF", search.Score{F: 3}, search.Score{F: 2}, false},
		{"TieLowerH", search.Score{F: 2, H: 1}, search.Score{F: 2, H: 2}, true},
		{"TieNewerSeq", search.Score{F: 2, H: 1, Seq: 7}, search.Score{F: 2, H: 1, Seq: 3}, true},
		{"TieOlderSeq", search.Score{F: 2, H: 1, Seq: 3}, search.Score{F: 2, H: 1, Seq: 7}, false},
		{"Equal", search.Score{F: 2, H: 1, Seq: 3}, search.Score{F: 2, H: 1, Seq: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}

func TestFrontier_Order(t *testing.T) {
	f := search.NewFrontier[string, string](search.Duplicates)
	f.Push("old", "a", search.Score{F: 2, H: 1, Seq: 1})
	f.Push("new", "b", search.Score{F: 2, H: 1, Seq: 2})
	f.Push("lowH", "c", search.Score{F: 2, H: 0, Seq: 0})
	f.Push("lowF", "d", search.Score{F: 1, H: 1, Seq: 0})

	top, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, "lowF", top)

	var got []string
	for f.Len() > 0 {
		n, ok := f.Pop()
		require.True(t, ok)
		got = append(got, n)
	}
	assert.Equal(t, []string{"lowF", "lowH", "new", "old"}, got)

	_, ok = f.Pop()
	assert.False(t, ok, "pop on empty frontier")
	_, ok = f.Peek()
	assert.False(t, ok)
}

func TestFrontier_Dedup(t *testing.T) {
	f := search.NewFrontier[string, int](search.Dedup)

	assert.True(t, f.Push("first", 1, search.Score{F: 5}))
	assert.False(t, f.Push("same", 1, search.Score{F: 5}), "equal F is not strictly better")
	assert.False(t, f.Push("worse", 1, search.Score{F: 6}))
	assert.True(t, f.Push("other", 2, search.Score{F: 4}))
	assert.True(t, f.Push("better", 1, search.Score{F: 3}))
	assert.Equal(t, 2, f.Len(), "replacement keeps one entry per key")
	assert.True(t, f.Contains(1))

	n, _ := f.Pop()
	assert.Equal(t, "better", n)
	assert.False(t, f.Contains(1))
	n, _ = f.Pop()
	assert.Equal(t, "other", n)
	assert.Zero(t, f.Len())

	assert.True(t, f.Push("again", 1, search.Score{F: 9}), "a popped key may be pushed again")
}

func TestFrontier_DedupRemovesFromMiddle(t *testing.T) {
	f := search.NewFrontier[int, int](search.Dedup)
	for k := 0; k < 32; k++ {
		f.Push(k, k, search.Score{F: float64(k)})
	}
	// Improve a key that sits deep in the heap.
	require.True(t, f.Push(-1, 20, search.Score{F: 0.5}))
	assert.Equal(t, 32, f.Len())

	var got []int
	for f.Len() > 0 {
		n, _ := f.Pop()
		got = append(got, n)
	}
	require.Len(t, got, 32)
	assert.Equal(t, []int{0, -1, 1, 2}, got[:4])
	assert.NotContains(t, got, 20)
}

func TestFrontier_Duplicates(t *testing.T) {
	f := search.NewFrontier[string, int](search.Duplicates)
	assert.True(t, f.Push("a", 1, search.Score{F: 5}))
	assert.True(t, f.Push("b", 1, search.Score{F: 5}))
	assert.True(t, f.Push("c", 1, search.Score{F: 7}))
	assert.Equal(t, 3, f.Len())
	assert.Len(t, f.Nodes(), 3)

	f.Pop()
	f.Pop()
	assert.True(t, f.Contains(1))
	f.Pop()
	assert.False(t, f.Contains(1))
}

func TestClosed(t *testing.T) {
	c := search.NewClosed[string]()
	assert.False(t, c.Contains("x"))
	assert.False(t, c.Stale("x", 0))

	c.Record("x", 5)
	g, ok := c.Best("x")
	require.True(t, ok)
	assert.Equal(t, 5.0, g)

	assert.True(t, c.Stale("x", 5), "equal g is stale")
	assert.True(t, c.Stale("x", 6))
	assert.False(t, c.Stale("x", 4))

	c.Record("x", 7)
	g, _ = c.Best("x")
	assert.Equal(t, 5.0, g, "a worse g never overwrites")
	c.Record("x", 2)
	g, _ = c.Best("x")
	assert.Equal(t, 2.0, g)

	c.Record("y", 1)
	assert.Equal(t, 2, c.Len())
	assert.ElementsMatch(t, []string{"x", "y"}, c.Keys())
}
