package astar_test

import (
	"math/rand"
	"testing"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/astar"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

func benchMap(b *testing.B, n int, density float64) *gridmap.Map {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
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

// BenchmarkAStar_K3 measures 8-connected A* across a 128×128 map with 10% obstacles.
func BenchmarkAStar_K3(b *testing.B) {
	m := benchMap(b, 128, 0.1)
	start, goal := gridmap.Point{I: 0, J: 0}, gridmap.Point{I: 128, J: 128}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.AStar(m, start, goal, nil, astar.WithK(3)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkThetaStar_K3 measures Theta* on the same map; each successor adds
// a line-of-sight check against its grandparent.
func BenchmarkThetaStar_K3(b *testing.B) {
	m := benchMap(b, 128, 0.1)
	start, goal := gridmap.Point{I: 0, J: 0}, gridmap.Point{I: 128, J: 128}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.ThetaStar(m, start, goal, nil, astar.WithK(3)); err != nil {
			b.Fatal(err)
		}
	}
}
