// Package heuristic provides distance estimates between lattice points for
// best-first grid search.
//
// A Func receives (i1, j1) and (i2, j2) as real coordinates so it can score
// both lattice points and the fractional projections used by interval search.
// Every Func returns a nonnegative value. Euclidean and Zero are admissible for
// all move models; Octile and Chebyshev are admissible for 8-connected moves
// but may overestimate any-angle distances; Manhattan is admissible only for
// 4-connected moves.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknown is returned by ByName for an unregistered heuristic name.
var ErrUnknown = errors.New("heuristic: unknown name")

// Func estimates the remaining cost from (i1, j1) to (i2, j2).
type Func func(i1, j1, i2, j2 float64) float64

// Euclidean returns the straight-line distance.
func Euclidean(i1, j1, i2, j2 float64) float64 {
	return math.Hypot(i1-i2, j1-j2)
}

// Manhattan returns the sum of absolute coordinate differences.
func Manhattan(i1, j1, i2, j2 float64) float64 {
	return math.Abs(i1-i2) + math.Abs(j1-j2)
}

// Octile returns the length of the shortest 8-connected path on an open grid.
func Octile(i1, j1, i2, j2 float64) float64 {
	di, dj := math.Abs(i1-i2), math.Abs(j1-j2)
	lo, hi := math.Min(di, dj), math.Max(di, dj)

	return hi - lo + math.Sqrt2*lo
}

// Chebyshev returns the largest absolute coordinate difference.
func Chebyshev(i1, j1, i2, j2 float64) float64 {
	return math.Max(math.Abs(i1-i2), math.Abs(j1-j2))
}

// Zero always returns 0 and turns best-first search into uniform-cost search.
func Zero(_, _, _, _ float64) float64 { return 0 }

var registry = map[string]Func{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"octile":    Octile,
	"chebyshev": Chebyshev,
	"zero":      Zero,
}

// ByName resolves a heuristic by its lower-case name (case-insensitive).
// An empty name selects Euclidean.
func ByName(name string) (Func, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Euclidean, nil
	}
	if f, ok := registry[name]; ok {
		return f, nil
	}

	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
