package anya

import (
	"errors"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/rational"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

// Sentinel errors.
var (
	// ErrNilMap indicates that a nil *gridmap.Map was passed.
	ErrNilMap = errors.New("anya: map is nil")

	// ErrOutOfBounds indicates a start or goal outside the lattice of the map.
	ErrOutOfBounds = errors.New("anya: point outside the map lattice")

	// ErrInvariant is the panic value raised by invariant checks.
	ErrInvariant = errors.New("anya: interval invariant violated")
)

// IntervalNode is the interval [A, B] on point row Row seen from root (I, J).
//
// Terminal marks the node Search places on the goal once the goal interval
// was popped; it is never expanded.
type IntervalNode struct {
	I, J     int
	Row      int
	A, B     rational.Frac
	G, H, F  float64
	Seq      int
	Terminal bool
	Parent   *IntervalNode
}

// Root returns the root point of n.
func (n *IntervalNode) Root() gridmap.Point { return gridmap.Point{I: n.I, J: n.J} }

// Flat reports whether the interval lies on the root's row.
func (n *IntervalNode) Flat() bool { return n.Row == n.I }

// Contains reports whether lattice point p lies on the interval.
func (n *IntervalNode) Contains(p gridmap.Point) bool {
	return p.I == n.Row && n.A.CmpInt(p.J) <= 0 && n.B.CmpInt(p.J) >= 0
}

// Key is the closed identity of an IntervalNode: its root and its interval.
type Key struct {
	I, J, Row int
	A, B      rational.Frac
}

// Options configures Search.
//
// Check  – verify interval invariants on every generated node (panics with
// ErrInvariant).
// Search – options forwarded to search.Run.
type Options struct {
	Check  bool
	Search []search.Option
}

// Option represents a functional option.
type Option func(*Options)

// WithInvariantChecks enables the per-node invariant checks.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.Check = true
	}
}

// WithSearch forwards driver options (context, step limit, logger, hooks).
// The frontier mode is always search.Duplicates and cannot be overridden.
func WithSearch(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// DefaultOptions returns no checks and no driver options.
func DefaultOptions() Options {
	return Options{}
}
