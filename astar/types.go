package astar

import (
	"errors"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

// Sentinel errors.
var (
	// ErrOutOfBounds indicates a start or goal outside the lattice of the map.
	ErrOutOfBounds = errors.New("astar: point outside the map lattice")

	// ErrNilMap indicates that a nil *gridmap.Map was passed.
	ErrNilMap = errors.New("astar: map is nil")
)

// PointNode is a search node on lattice point (I, J).
//
// Side is non-zero only on diagonal obstacle corners and records the side
// the point was entered from (see gridmap.Map.SideOf). Parent is nil for the
// start node.
type PointNode struct {
	I, J    int
	G, H, F float64
	Seq     int
	Side    int
	Parent  *PointNode
}

// Point returns the lattice point of n.
func (n *PointNode) Point() gridmap.Point { return gridmap.Point{I: n.I, J: n.J} }

// Key is the closed identity of a PointNode.
type Key struct {
	I, J, Side int
}

// Options configures AStar and ThetaStar.
//
// K      – connectivity exponent, 2^K move directions (default 2).
// Search – options forwarded to search.Run.
type Options struct {
	K      int
	Search []search.Option
}

// Option represents a functional option.
type Option func(*Options)

// WithK sets the connectivity exponent. It is validated before any search
// work; invalid values yield gridmap.ErrInvalidConnectivity.
func WithK(k int) Option {
	return func(o *Options) {
		o.K = k
	}
}

// WithSearch forwards driver options (context, step limit, logger, hooks).
func WithSearch(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// DefaultOptions returns K = 2 and no driver options.
func DefaultOptions() Options {
	return Options{K: 2}
}

func orDefault(h heuristic.Func) heuristic.Func {
	if h == nil {
		return heuristic.Euclidean
	}
	return h
}
