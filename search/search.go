package search

import (
	"context"
	"fmt"
	"log/slog"
)

// Generator supplies the problem-specific half of a best-first search: node
// identity, ordering, goal test and successor generation.
//
// Expand receives the run's Closed record read-only so a generator can skip
// successors whose identity is already closed.
type Generator[N any, K comparable] interface {
	Key(n N) K
	Score(n N) Score
	G(n N) float64
	IsGoal(n N) bool
	Expand(n N, closed *Closed[K]) []N
}

// Pruner is implemented by generators that keep their own dominance record.
// A popped node for which Prune returns true is dropped before the goal test,
// exactly like a stale duplicate.
type Pruner[N any] interface {
	Prune(n N) bool
}

// Result is the outcome of a run.
//
// Goal is the popped goal node when Found is true and the zero value otherwise.
// Steps counts expanded (non-stale) nodes including the goal; Created counts
// every node handed to the frontier including the start nodes.
type Result[N any] struct {
	Found   bool
	Goal    N
	State   State
	Steps   int
	Created int
	Open    int // frontier size at termination
	Closed  int // closed keys at termination
}

// Run executes a best-first search from the start nodes until a goal is
// popped or the frontier is exhausted.
//
// Loop:
//  1. Check the context and the step budget.
//  2. Pop the best node; an empty frontier ends the run as Exhausted.
//  3. Skip it if its key is closed with an equal-or-better g, or if the
//     generator prunes it.
//  4. If it is a goal, end the run as Found.
//  5. Expand it, push every successor, record its key as closed.
//
// Exhaustion is reported as Found=false with a nil error. Budget violations
// return the partial Result together with ErrStepLimit or the wrapped
// context error.
func Run[N any, K comparable](start []N, gen Generator[N, K], opts ...Option) (Result[N], error) {
	s := NewStepper(start, gen, opts...)
	for {
		done, err := s.Step()
		if err != nil {
			return s.Result(), err
		}
		if done {
			return s.Result(), nil
		}
	}
}

// Stepper runs the search loop of Run one expansion at a time.
type Stepper[N any, K comparable] struct {
	cfg      Options
	gen      Generator[N, K]
	pruner   Pruner[N]
	frontier *Frontier[N, K]
	closed   *Closed[K]
	debug    bool
	res      Result[N]
}

// NewStepper seeds a frontier with the start nodes.
func NewStepper[N any, K comparable](start []N, gen Generator[N, K], opts ...Option) *Stepper[N, K] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	s := &Stepper[N, K]{
		cfg:      cfg,
		gen:      gen,
		frontier: NewFrontier[N, K](cfg.Mode),
		closed:   NewClosed[K](),
		debug:    cfg.Logger.Enabled(cfg.Ctx, slog.LevelDebug),
	}
	s.pruner, _ = gen.(Pruner[N])
	for _, n := range start {
		if s.frontier.Push(n, gen.Key(n), gen.Score(n)) {
			s.res.Created++
		}
	}

	return s
}

// Step performs one expansion. done is true once the run reached Found or
// Exhausted; further calls return ErrFinished.
func (s *Stepper[N, K]) Step() (done bool, err error) {
	if s.res.State != Running {
		return true, ErrFinished
	}

	for {
		// 1) Budgets.
		if err = s.cfg.Ctx.Err(); err != nil {
			return false, fmt.Errorf("search: stopped after %d steps: %w", s.res.Steps, err)
		}
		if s.cfg.MaxSteps > 0 && s.res.Steps >= s.cfg.MaxSteps {
			return false, fmt.Errorf("%w: %d expansions", ErrStepLimit, s.cfg.MaxSteps)
		}

		// 2) Pop.
		n, ok := s.frontier.Pop()
		if !ok {
			s.res.State = Exhausted
			return true, nil
		}

		// 3) Lazy deletion.
		key, g := s.gen.Key(n), s.gen.G(n)
		if s.closed.Stale(key, g) {
			continue
		}
		if s.pruner != nil && s.pruner.Prune(n) {
			continue
		}
		s.res.Steps++

		// 4) Goal test.
		if s.gen.IsGoal(n) {
			s.res.State = Found
			s.res.Found = true
			s.res.Goal = n
			if s.debug {
				s.cfg.Logger.Debug("search: goal reached", "step", s.res.Steps, "g", g, "created", s.res.Created)
			}
			return true, nil
		}

		// 5) Expand and close.
		children := s.gen.Expand(n, s.closed)
		pushed := 0
		for _, c := range children {
			if s.frontier.Push(c, s.gen.Key(c), s.gen.Score(c)) {
				pushed++
			}
		}
		s.res.Created += len(children)
		s.closed.Record(key, g)

		if s.debug {
			s.cfg.Logger.Debug("search: expand",
				"step", s.res.Steps,
				"key", key,
				"g", g,
				"children", len(children),
				"pushed", pushed,
				"open", s.frontier.Len())
		}
		if s.cfg.OnExpand != nil {
			s.cfg.OnExpand(Event{
				Step:     s.res.Steps,
				Node:     n,
				Children: pushed,
				Frontier: s.frontier.Len(),
				Closed:   s.closed.Len(),
			})
		}

		return false, nil
	}
}

// Result returns a snapshot of the run outcome and counters.
func (s *Stepper[N, K]) Result() Result[N] {
	r := s.res
	r.Open = s.frontier.Len()
	r.Closed = s.closed.Len()

	return r
}

// Frontier exposes the open list for inspection. It must not be modified.
func (s *Stepper[N, K]) Frontier() *Frontier[N, K] { return s.frontier }

// Closed exposes the closed record for inspection. It must not be modified.
func (s *Stepper[N, K]) Closed() *Closed[K] { return s.closed }
