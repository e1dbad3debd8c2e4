package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/internal/ctxlog"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// Tolerance is the largest accepted difference between a found length and
// the expected length of a run.
const Tolerance = 1e-4

// Report is the outcome of one run.
type Report struct {
	ID        uuid.UUID
	Name      string
	Algorithm pathfind.Algorithm
	Found     bool
	Path      pathfind.Path
	Steps     int
	Created   int
	Duration  time.Duration
	Expect    *float64
	Mismatch  bool
	Err       error
}

// OK reports whether the run finished without error and met its expectation.
func (r Report) OK() bool { return r.Err == nil && !r.Mismatch }

// Runner executes scenario runs concurrently.
//
// Logger defaults to the logger in the context (see ctxlog), Workers to 1,
// Tracer to otel.Tracer("pathfinder"). A nil Metrics records nothing.
type Runner struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
	Workers int
	Check   bool // ANYA invariant checks
}

// Run executes every run of sc and returns the reports in declaration order.
// A run failing on its own is reported in Report.Err; Run itself fails only
// when ctx ends before all runs were started.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	tracer := r.Tracer
	if tracer == nil {
		tracer = otel.Tracer("pathfinder")
	}
	workers := max(r.Workers, 1)

	// Regions are computed once per map and shared read-only by the workers.
	regions := make(map[*gridmap.Map]*gridmap.Regions, len(sc.Maps))
	for _, run := range sc.Runs {
		if _, ok := regions[run.Map]; !ok && run.Map != nil {
			regions[run.Map] = run.Map.Regions()
		}
	}

	reports := make([]Report, len(sc.Runs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	logger.Info("scenario started", "runs", len(sc.Runs), "workers", workers)
	for idx := range sc.Runs {
		if err := acquire(ctx, sem); err != nil {
			wg.Wait()
			return reports, fmt.Errorf("scenario: %d of %d runs started: %w", idx, len(sc.Runs), err)
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			run := sc.Runs[idx]
			reports[idx] = r.runOne(ctx, logger, tracer, run, regions[run.Map])
		}(idx)
	}
	wg.Wait()

	failed := 0
	for _, rep := range reports {
		if !rep.OK() {
			failed++
		}
	}
	logger.Info("scenario finished", "runs", len(reports), "failed", failed)

	return reports, nil
}

// acquire takes a worker slot; an ended ctx wins over a free slot.
func acquire(ctx context.Context, sem chan struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) runOne(ctx context.Context, logger *slog.Logger, tracer trace.Tracer, run Run, regions *gridmap.Regions) Report {
	rep := Report{
		ID:        uuid.New(),
		Name:      run.Name,
		Algorithm: run.Algorithm,
		Expect:    run.Expect,
	}
	log := logger.With("run", run.Name, "id", rep.ID.String(), "algorithm", run.Algorithm.String())

	ctx, span := tracer.Start(ctx, "scenario.run", trace.WithAttributes(
		attribute.String("run.id", rep.ID.String()),
		attribute.String("run.name", run.Name),
		attribute.String("run.map", run.MapName),
		attribute.String("algorithm", run.Algorithm.String()),
	))
	defer span.End()

	opts := []pathfind.Option{
		pathfind.WithK(run.K),
		pathfind.WithHeuristic(run.Heuristic),
		pathfind.WithContext(ctx),
		pathfind.WithMaxSteps(run.MaxSteps),
		pathfind.WithLogger(log),
	}
	if regions != nil {
		opts = append(opts, pathfind.WithRegions(regions))
	}
	if r.Check {
		opts = append(opts, pathfind.WithInvariantChecks())
	}

	began := time.Now()
	sol, err := pathfind.Solve(run.Map, run.Algorithm, run.Task, opts...)
	rep.Duration = time.Since(began)
	rep.Found, rep.Path = sol.Found, sol.Path
	rep.Steps, rep.Created = sol.Steps, sol.Created
	if err == nil && sol.Found {
		err = pathfind.Validate(run.Map, sol.Path, run.Algorithm.AnyAngle())
	}
	rep.Err = err

	if run.Expect != nil {
		rep.Mismatch = !rep.Found || math.Abs(rep.Path.Length-*run.Expect) > Tolerance
	}
	r.Metrics.observe(rep)

	span.SetAttributes(
		attribute.Bool("found", rep.Found),
		attribute.Int("steps", rep.Steps),
		attribute.Int("created", rep.Created),
		attribute.Float64("length", rep.Path.Length),
	)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		log.Error("run failed", "error", err, "steps", rep.Steps)
	case rep.Mismatch:
		span.RecordError(fmt.Errorf("%w: got %.6f, want %.6f", ErrLengthMismatch, rep.Path.Length, *run.Expect))
		span.SetStatus(codes.Error, "unexpected length")
		log.Warn("run length mismatch", "length", rep.Path.Length, "expect", *run.Expect)
	default:
		span.SetStatus(codes.Ok, "")
		log.Info("run finished",
			"found", rep.Found,
			"length", rep.Path.Length,
			"steps", rep.Steps,
			"created", rep.Created,
			"duration", rep.Duration)
	}

	return rep
}
