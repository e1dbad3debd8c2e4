package pathfind

import (
	"fmt"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/anya"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/astar"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/search"
)

// Solve runs alg on task over m.
//
// Steps and Created are filled even when the search stops on a budget, so
// callers can report partial work next to the error. An unreachable goal is
// Found=false with a nil error; with WithRegions it may be reported after
// zero steps.
func Solve(m *gridmap.Map, alg Algorithm, task Task, opts ...Option) (Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sopts := []search.Option{
		search.WithContext(cfg.Ctx),
		search.WithMaxSteps(cfg.MaxSteps),
		search.WithLogger(cfg.Logger),
	}
	sol := Solution{Algorithm: alg}

	switch alg {
	case AStar2k, ThetaStar:
		if cfg.separated(m, task) {
			return sol, nil
		}
		plan := astar.AStar
		if alg == ThetaStar {
			plan = astar.ThetaStar
		}
		res, err := plan(m, task.Start, task.Goal, cfg.Heuristic, astar.WithK(cfg.K), astar.WithSearch(sopts...))
		sol.Steps, sol.Created = res.Steps, res.Created
		if err != nil {
			return sol, err
		}
		if res.Found {
			sol.Found = true
			sol.Path = Reconstruct(res.Goal)
		}

	case Anya:
		if cfg.separated(m, task) {
			return sol, nil
		}
		aopts := []anya.Option{anya.WithSearch(sopts...)}
		if cfg.Check {
			aopts = append(aopts, anya.WithInvariantChecks())
		}
		res, err := anya.Search(m, task.Start, task.Goal, aopts...)
		sol.Steps, sol.Created = res.Steps, res.Created
		if err != nil {
			return sol, err
		}
		if res.Found {
			sol.Found = true
			sol.Path = ReconstructInterval(res.Goal)
		}

	default:
		return sol, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	return sol, nil
}

// separated reports whether the configured regions prove task unreachable.
// Invalid input is left to the planners to report.
func (o Options) separated(m *gridmap.Map, task Task) bool {
	if o.Regions == nil || m == nil || o.K < 2 || o.K > gridmap.MaxK {
		return false
	}
	if !m.InBounds(task.Start.I, task.Start.J) || !m.InBounds(task.Goal.I, task.Goal.J) {
		return false
	}
	return !o.Regions.Connected(task.Start, task.Goal)
}
