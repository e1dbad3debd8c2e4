// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/astar"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
)

////////////////////////////////////////////////////////////////////////////////
// Example: AStar
////////////////////////////////////////////////////////////////////////////////

// ExampleAStar routes around a two-cell wall with 4-connected (k = 2) and
// 8-connected (k = 3) moves.
func ExampleAStar() {
	m, _ := gridmap.FromString(`
. . .
# # .
. . .
`, 3, 3)
	start, goal := gridmap.Point{I: 0, J: 0}, gridmap.Point{I: 3, J: 0}

	for _, k := range []int{2, 3} {
		res, err := astar.AStar(m, start, goal, heuristic.Euclidean, astar.WithK(k))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("k=%d found=%v length=%.4f\n", k, res.Found, res.Goal.G)
	}

	// Output:
	// k=2 found=true length=7.0000
	// k=3 found=true length=5.8284
}

////////////////////////////////////////////////////////////////////////////////
// Example: ThetaStar
////////////////////////////////////////////////////////////////////////////////

// ExampleThetaStar shows that on an open grid Theta* returns the single
// straight segment between start and goal.
func ExampleThetaStar() {
	m, _ := gridmap.FromString(`
. . . . . . .
. . . . . . .
. . . . . . .
. . . . . . .
. . . . . . .
`, 5, 7)

	res, _ := astar.ThetaStar(m, gridmap.Point{I: 0, J: 0}, gridmap.Point{I: 5, J: 7}, nil)
	fmt.Printf("length=%.4f segments=", res.Goal.G)
	n := 0
	for p := res.Goal; p.Parent != nil; p = p.Parent {
		n++
	}
	fmt.Println(n)

	// Output:
	// length=8.6023 segments=1
}
