package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/internal/cli"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/internal/ctxlog"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/movingai"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/render"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/scenario"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program so tests can drive it with their own writer.
func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	if cfg.ScenarioPath != "" {
		sc, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return err
		}
		return runBatch(ctx, out, cfg, sc)
	}

	m, err := readMap(cfg.MapPath)
	if err != nil {
		return err
	}
	logger.Debug("map loaded", "path", cfg.MapPath, "height", m.Height(), "width", m.Width())

	if cfg.BenchPath != "" {
		sc, err := readBench(cfg, m)
		if err != nil {
			return err
		}
		return runBatch(ctx, out, cfg, sc)
	}

	if cfg.Task == nil {
		// Without a task only the map is shown.
		return show(out, cfg, m, nil)
	}

	return solve(ctx, out, cfg, m)
}

func solve(ctx context.Context, out io.Writer, cfg *cli.Config, m *gridmap.Map) error {
	h, err := heuristic.ByName(cfg.Heuristic)
	if err != nil {
		return err
	}
	opts := []pathfind.Option{
		pathfind.WithK(cfg.K),
		pathfind.WithHeuristic(h),
		pathfind.WithContext(ctx),
		pathfind.WithLogger(ctxlog.FromContext(ctx)),
	}
	if cfg.Check {
		opts = append(opts, pathfind.WithInvariantChecks())
	}

	sol, err := pathfind.Solve(m, cfg.Algorithm, *cfg.Task, opts...)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("search finished",
		"algorithm", cfg.Algorithm.String(),
		"found", sol.Found,
		"steps", sol.Steps,
		"created", sol.Created)

	if !sol.Found {
		fmt.Fprintln(out, "Path not found!")
		return show(out, cfg, m, nil)
	}

	fmt.Fprintln(out, "Path found!")
	fmt.Fprintf(out, "Length: %.6f\n", sol.Path.Length)
	for _, p := range sol.Path.Turns().Points {
		fmt.Fprintln(out, p.I, p.J)
	}

	return show(out, cfg, m, &sol.Path)
}

// show renders m and p on every output the command line asked for.
func show(out io.Writer, cfg *cli.Config, m *gridmap.Map, p *pathfind.Path) error {
	if cfg.Text {
		fmt.Fprint(out, render.Text(m, p))
	}
	if cfg.PNGPath != "" {
		if err := writePNG(cfg.PNGPath, m, p); err != nil {
			return err
		}
	}
	if cfg.TUI {
		return showTerminal(m, p)
	}
	return nil
}

func writePNG(path string, m *gridmap.Map, p *pathfind.Path) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render.PNG(f, m, p)
}

// showTerminal draws on the real terminal and waits for a key press.
func showTerminal(m *gridmap.Map, p *pathfind.Path) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	render.Terminal(screen, m, p)
	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func readMap(path string) (*gridmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := movingai.ReadMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func readBench(cfg *cli.Config, m *gridmap.Map) (*scenario.Scenario, error) {
	f, err := os.Open(cfg.BenchPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := movingai.ReadScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.BenchPath, err)
	}
	return scenario.FromEntries(cfg.MapPath, m, entries, cfg.Algorithm, cfg.K), nil
}

// runBatch executes sc, prints one line per run and fails when any run did.
func runBatch(ctx context.Context, out io.Writer, cfg *cli.Config, sc *scenario.Scenario) error {
	reg := prometheus.NewRegistry()
	runner := &scenario.Runner{
		Logger:  ctxlog.FromContext(ctx),
		Metrics: scenario.NewMetrics(reg),
		Workers: cfg.Workers,
		Check:   cfg.Check,
	}
	if cfg.TracePath != "" {
		tp, closeTrace, err := newTracerProvider(cfg.TracePath)
		if err != nil {
			return err
		}
		defer closeTrace()
		runner.Tracer = tp.Tracer("pathfinder")
	}

	reports, err := runner.Run(ctx, sc)
	if err != nil {
		return err
	}

	failed := 0
	for _, rep := range reports {
		status := "ok"
		switch {
		case rep.Err != nil:
			status = "error: " + rep.Err.Error()
		case rep.Mismatch:
			status = fmt.Sprintf("mismatch: expected %.6f", *rep.Expect)
		case !rep.Found:
			status = "not found"
		}
		if !rep.OK() {
			failed++
		}
		fmt.Fprintf(out, "%-24s %-6s %12.6f %8d  %s\n", rep.Name, rep.Algorithm, rep.Path.Length, rep.Steps, status)
	}

	if cfg.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsPath, reg); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Debug("metrics written", "path", cfg.MetricsPath)
	}

	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d runs failed", failed, len(reports))}
	}
	return nil
}

// newTracerProvider exports every ended span synchronously as JSON to path.
// The returned func flushes the provider and closes the file.
func newTracerProvider(path string) (*sdktrace.TracerProvider, func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "pathfinder"))),
	)

	return tp, func() {
		_ = tp.Shutdown(context.Background())
		_ = f.Close()
	}, nil
}
