package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
//
// Exactly one of MapPath and ScenarioPath is set. Task is nil when a map is
// given without a task; the map is then only rendered.
type Config struct {
	Algorithm    pathfind.Algorithm
	K            int
	Heuristic    string
	MapPath      string
	Task         *pathfind.Task
	BenchPath    string // MovingAI .scen run against MapPath
	ScenarioPath string
	PNGPath      string
	MetricsPath  string
	TracePath    string
	TUI          bool
	Text         bool
	Check        bool
	Workers      int
	LogLevel     string
	LogFormat    string
}

// Parse processes command-line arguments. It returns the Config, a boolean
// telling the caller to exit cleanly (help or usage was printed), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(output, `
pathfinder - any-angle path planning on grid maps.

Usage:
  pathfinder [options] -map FILE [SI SJ GI GJ]
  pathfinder [options] -scenario FILE.hcl

Arguments:
  SI SJ GI GJ
    Start and goal lattice points; same as -task "SI SJ GI GJ".

Options:
`)
		fs.PrintDefaults()
	}

	algFlag := fs.String("algorithm", "astar", "Planner: 'astar', 'theta' or 'anya'.")
	kFlag := fs.Int("k", 2, "Connectivity exponent: 2^k move directions for astar and theta.")
	heurFlag := fs.String("heuristic", "euclidean", "Heuristic for astar and theta: "+strings.Join(heuristic.Names(), ", ")+".")
	mapFlag := fs.String("map", "", "Path to a MovingAI .map file.")
	taskFlag := fs.String("task", "", `Task as four integers "SI SJ GI GJ".`)
	benchFlag := fs.String("bench", "", "Path to a MovingAI .scen file run against -map.")
	scenarioFlag := fs.String("scenario", "", "Path to an HCL scenario file.")
	metricsFlag := fs.String("metrics", "", "Write Prometheus metrics of -scenario or -bench to this file.")
	traceFlag := fs.String("trace", "", "Write OpenTelemetry spans of -scenario or -bench to this file as JSON.")
	pngFlag := fs.String("png", "", "Write the map and path to this PNG file.")
	tuiFlag := fs.Bool("tui", false, "Show the map and path in the terminal until a key is pressed.")
	textFlag := fs.Bool("v", false, "Print the map and path as text.")
	checkFlag := fs.Bool("check", false, "Enable ANYA invariant checks.")
	workersFlag := fs.Int("workers", 4, "Concurrent searches for -scenario and -bench.")
	logLevelFlag := fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *mapFlag == "" && *scenarioFlag == "" {
		fs.Usage()
		return nil, true, nil
	}
	if *mapFlag != "" && *scenarioFlag != "" {
		return nil, false, &ExitError{Code: 2, Message: "-map and -scenario are mutually exclusive"}
	}

	alg, err := pathfind.ParseAlgorithm(*algFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if _, err := gridmap.KNeighborDirections(*kFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if _, err := heuristic.ByName(*heurFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := &Config{
		Algorithm:    alg,
		K:            *kFlag,
		Heuristic:    *heurFlag,
		MapPath:      *mapFlag,
		BenchPath:    *benchFlag,
		ScenarioPath: *scenarioFlag,
		PNGPath:      *pngFlag,
		MetricsPath:  *metricsFlag,
		TracePath:    *traceFlag,
		TUI:          *tuiFlag,
		Text:         *textFlag,
		Check:        *checkFlag,
		Workers:      *workersFlag,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}

	// 1) The task comes from -task or from exactly four trailing arguments.
	fields := strings.Fields(*taskFlag)
	if len(fields) > 0 && fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "task given both by -task and as arguments"}
	}
	if len(fields) == 0 {
		fields = fs.Args()
	}
	if len(fields) > 0 {
		if cfg.MapPath == "" {
			return nil, false, &ExitError{Code: 2, Message: "a task needs -map"}
		}
		task, err := parseTask(fields)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Task = &task
	}

	// 2) -bench replaces the single task.
	if cfg.BenchPath != "" && (cfg.MapPath == "" || cfg.Task != nil) {
		return nil, false, &ExitError{Code: 2, Message: "-bench needs -map and no task"}
	}

	return cfg, false, nil
}

func parseTask(fields []string) (pathfind.Task, error) {
	if len(fields) != 4 {
		return pathfind.Task{}, fmt.Errorf("invalid task: want 4 integers, got %d", len(fields))
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return pathfind.Task{}, fmt.Errorf("invalid task: %q is not an integer", f)
		}
		v[i] = n
	}

	return pathfind.Task{
		Start: gridmap.Point{I: v[0], J: v[1]},
		Goal:  gridmap.Point{I: v[2], J: v[3]},
	}, nil
}

// NewLogger creates a logger writing to w. It does not set the global logger.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
