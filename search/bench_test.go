package search_test

import (
	"testing"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

type cell struct {
	i, j int
	g    float64
	seq  int
}

// openGrid is a 4-connected obstacle-free n×n grid with a Manhattan heuristic.
type openGrid struct {
	n   int
	seq int
}

func (o *openGrid) Key(c cell) [2]int  { return [2]int{c.i, c.j} }
func (o *openGrid) G(c cell) float64   { return c.g }
func (o *openGrid) IsGoal(c cell) bool { return c.i == o.n-1 && c.j == o.n-1 }
func (o *openGrid) Score(c cell) search.Score {
	h := float64(o.n-1-c.i) + float64(o.n-1-c.j)
	return search.Score{F: c.g + h, H: h, Seq: c.seq}
}

func (o *openGrid) Expand(c cell, closed *search.Closed[[2]int]) []cell {
	out := make([]cell, 0, 4)
	for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		ni, nj := c.i+d[0], c.j+d[1]
		if ni < 0 || nj < 0 || ni >= o.n || nj >= o.n || closed.Contains([2]int{ni, nj}) {
			continue
		}
		o.seq++
		out = append(out, cell{i: ni, j: nj, g: c.g + 1, seq: o.seq})
	}

	return out
}

// BenchmarkRun_OpenGrid measures the driver overhead on a 200×200 open grid.
// Complexity: O(n² log n) in the worst case; the newest-first tie-break keeps
// the actual expansion count close to the path length.
func BenchmarkRun_OpenGrid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		res, err := search.Run[cell, [2]int]([]cell{{}}, &openGrid{n: 200})
		if err != nil || !res.Found {
			b.Fatalf("unexpected result: found=%v err=%v", res.Found, err)
		}
	}
}

// BenchmarkFrontier_PushPop measures raw heap throughput in Duplicates mode.
func BenchmarkFrontier_PushPop(b *testing.B) {
	const n = 1 << 12
	for i := 0; i < b.N; i++ {
		f := search.NewFrontier[int, int](search.Duplicates)
		for k := 0; k < n; k++ {
			f.Push(k, k, search.Score{F: float64((k * 7919) % n), Seq: k})
		}
		for f.Len() > 0 {
			f.Pop()
		}
	}
}
