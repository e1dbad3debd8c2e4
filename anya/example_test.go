// File: anya/example_test.go
package anya_test

import (
	"fmt"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/anya"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Search
////////////////////////////////////////////////////////////////////////////////

// ExampleSearch finds the optimal any-angle route around a two-cell wall and
// prints its turning points from start to goal.
func ExampleSearch() {
	m, _ := gridmap.FromString(`
. . .
# # .
. . .
`, 3, 3)

	res, err := anya.Search(m, gridmap.Point{I: 0, J: 0}, gridmap.Point{I: 3, J: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var pts []gridmap.Point
	for n := res.Goal; n != nil; n = n.Parent {
		pts = append([]gridmap.Point{n.Root()}, pts...)
	}
	fmt.Printf("length=%.4f\n", res.Goal.G)
	for _, p := range pts {
		fmt.Printf("(%d,%d) ", p.I, p.J)
	}
	fmt.Println()

	// Output:
	// length=5.4721
	// (0,0) (1,2) (2,2) (3,0)
}
