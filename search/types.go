package search

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors returned by the search driver.
var (
	// ErrStepLimit indicates that the run was stopped by WithMaxSteps before
	// reaching a goal or exhausting the frontier.
	ErrStepLimit = errors.New("search: step limit reached")

	// ErrFinished is returned by Stepper.Step after the run has terminated.
	ErrFinished = errors.New("search: run already finished")
)

// Score is the frontier ordering key of a node.
type Score struct {
	F   float64 // g + h
	H   float64 // heuristic part, first tie-breaker
	Seq int     // creation sequence, newest wins the final tie
}

// Less reports whether s has priority over o: F ascending, then H ascending,
// then Seq descending.
func (s Score) Less(o Score) bool {
	if s.F != o.F {
		return s.F < o.F
	}
	if s.H != o.H {
		return s.H < o.H
	}

	return s.Seq > o.Seq
}

// Mode selects how a Frontier treats several nodes with the same key.
type Mode int

const (
	// Dedup keeps one entry per key; a push replaces it only on strictly better F.
	Dedup Mode = iota

	// Duplicates keeps every pushed node; stale copies are dropped by the Closed record.
	Duplicates
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Dedup:
		return "dedup"
	case Duplicates:
		return "duplicates"
	default:
		return "unknown"
	}
}

// State is the driver state.
type State int

const (
	// Running means the run has not terminated yet.
	Running State = iota
	// Found means a goal node was popped.
	Found
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Event describes one expansion. It is delivered to the WithOnExpand hook.
type Event struct {
	Step     int // 1-based expansion index
	Node     any // the expanded node
	Children int // successors pushed to the frontier
	Frontier int // frontier size after the push
	Closed   int // closed keys after recording this node
}

// Options configures a run.
//
// Ctx      – checked once per iteration; nil means context.Background().
// MaxSteps – expansion budget; 0 disables it.
// Logger   – receives debug lines per expansion when the debug level is enabled.
// Mode     – frontier duplicate handling.
// OnExpand – optional hook called after every expansion.
type Options struct {
	Ctx      context.Context
	MaxSteps int
	Logger   *slog.Logger
	Mode     Mode
	OnExpand func(Event)
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithContext sets the context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxSteps limits the number of expansions. Non-positive n disables the limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// WithLogger routes per-expansion debug logging to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFrontierMode selects Dedup or Duplicates handling in the frontier.
func WithFrontierMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithOnExpand installs a hook called after every expansion.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the defaults: background context, no step limit,
// discarded logging, Dedup frontier, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
		Mode:   Dedup,
	}
}
