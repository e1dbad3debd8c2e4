package gridmap_test

import (
	"math/rand"
	"testing"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

func randomMap(b *testing.B, n int, density float64) *gridmap.Map {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
		for j := range cells[i] {
			cells[i][j] = rng.Float64() < density
		}
	}
	m, err := gridmap.New(n, n, cells)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return m
}

// BenchmarkLineOfSight measures long diagonal visibility checks on a sparse
// 512×512 random map.
// Complexity: O(n) per call.
func BenchmarkLineOfSight(b *testing.B) {
	const n = 512
	m := randomMap(b, n, 0.05)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.LineOfSight(0, i%n, n, n-i%n)
	}
}

// BenchmarkNeighbors measures successor generation with k = 5 on a sparse map.
func BenchmarkNeighbors(b *testing.B) {
	const n = 256
	m := randomMap(b, n, 0.1)
	dirs, err := gridmap.KNeighborDirections(5)
	if err != nil {
		b.Fatalf("setup KNeighborDirections failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := gridmap.Point{I: 8 + i%(n-16), J: 8 + (i*7)%(n-16)}
		_ = m.Neighbors(p, 0, dirs)
	}
}
