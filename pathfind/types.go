package pathfind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates an algorithm name or value outside the closed set.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrBlockedSegment indicates a path segment without line of sight.
	ErrBlockedSegment = errors.New("pathfind: blocked segment")

	// ErrNotTaut indicates an interior turning point that touches no obstacle.
	ErrNotTaut = errors.New("pathfind: turning point away from obstacles")
)

// Algorithm selects a planner.
type Algorithm int

const (
	// AStar2k is A* over 2^k move directions.
	AStar2k Algorithm = iota
	// ThetaStar is A* with grandparent line-of-sight relaxation.
	ThetaStar
	// Anya is the optimal interval-based planner.
	Anya
)

var algorithmNames = map[string]Algorithm{
	"astar":     AStar2k,
	"astar2k":   AStar2k,
	"theta":     ThetaStar,
	"thetastar": ThetaStar,
	"anya":      Anya,
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "astar", "astar2k", "theta", "thetastar", "anya".
func ParseAlgorithm(name string) (Algorithm, error) {
	a, ok := algorithmNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// String returns the canonical name.
func (a Algorithm) String() string {
	switch a {
	case AStar2k:
		return "astar"
	case ThetaStar:
		return "theta"
	case Anya:
		return "anya"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// AnyAngle reports whether paths of a are expected to be taut.
func (a Algorithm) AnyAngle() bool { return a == Anya }

// Task is a start/goal pair of lattice points.
type Task struct {
	Start, Goal gridmap.Point
}

// Solution is the outcome of Solve.
type Solution struct {
	Algorithm Algorithm
	Found     bool
	Path      Path
	Steps     int
	Created   int
}

// Options configures Solve.
//
// K         – connectivity exponent for AStar2k and ThetaStar (default 2).
// Heuristic – point heuristic for AStar2k and ThetaStar (default Euclidean).
// ANYA always uses its exact interval heuristic.
// Ctx, MaxSteps, Logger – search budgets and debug logging.
// Check     – ANYA interval invariant checks.
// Regions   – when set, tasks across regions fail without searching.
type Options struct {
	K         int
	Heuristic heuristic.Func
	Ctx       context.Context
	MaxSteps  int
	Logger    *slog.Logger
	Check     bool
	Regions   *gridmap.Regions
}

// Option represents a functional option.
type Option func(*Options)

// WithK sets the connectivity exponent.
func WithK(k int) Option {
	return func(o *Options) {
		o.K = k
	}
}

// WithHeuristic sets the point heuristic; nil keeps the default.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithContext bounds the search by ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxSteps bounds the number of expansions (0 = unlimited).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithLogger routes per-expansion debug lines to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithInvariantChecks enables ANYA's interval invariant checks.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.Check = true
	}
}

// WithRegions short-circuits tasks whose endpoints lie in different regions
// of r, which must have been computed from the searched map.
func WithRegions(r *gridmap.Regions) Option {
	return func(o *Options) {
		o.Regions = r
	}
}

// DefaultOptions returns K = 2, the Euclidean heuristic and no budgets.
func DefaultOptions() Options {
	return Options{
		K:         2,
		Heuristic: heuristic.Euclidean,
		Ctx:       context.Background(),
	}
}
