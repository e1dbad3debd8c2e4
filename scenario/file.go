package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/heuristic"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/movingai"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// Sentinel errors.
var (
	// ErrMapSource indicates a map block with both or neither of file and rows.
	ErrMapSource = errors.New("scenario: map needs exactly one of file or rows")

	// ErrUnknownMap indicates a run referring to an undeclared map.
	ErrUnknownMap = errors.New("scenario: unknown map")

	// ErrDuplicate indicates two blocks of the same kind with the same name.
	ErrDuplicate = errors.New("scenario: duplicate block name")

	// ErrLengthMismatch is recorded on the span of a run whose length misses
	// its expectation.
	ErrLengthMismatch = errors.New("scenario: length differs from expectation")

	// ErrBadPoint indicates a start or goal that is not a pair of integers.
	ErrBadPoint = errors.New("scenario: point must be [row, column]")
)

// hclFile is the decoding target of a scenario file.
type hclFile struct {
	Maps []*hclMap `hcl:"map,block"`
	Runs []*hclRun `hcl:"run,block"`
}

type hclMap struct {
	Name   string   `hcl:"name,label"`
	File   string   `hcl:"file,optional"`
	Height int      `hcl:"height,optional"`
	Width  int      `hcl:"width,optional"`
	Rows   []string `hcl:"rows,optional"`
}

type hclRun struct {
	Name      string         `hcl:"name,label"`
	Map       string         `hcl:"map"`
	Algorithm string         `hcl:"algorithm,optional"`
	K         int            `hcl:"k,optional"`
	Heuristic string         `hcl:"heuristic,optional"`
	Start     hcl.Expression `hcl:"start"`
	Goal      hcl.Expression `hcl:"goal"`
	Expect    *float64       `hcl:"expect,optional"`
	MaxSteps  int            `hcl:"max_steps,optional"`
}

// Scenario is a resolved scenario file.
type Scenario struct {
	Maps map[string]*gridmap.Map
	Runs []Run
}

// Run is one resolved task.
type Run struct {
	Name      string
	MapName   string
	Map       *gridmap.Map
	Algorithm pathfind.Algorithm
	K         int
	Heuristic heuristic.Func
	Task      pathfind.Task
	Expect    *float64
	MaxSteps  int
}

// Load reads and resolves the scenario file at path. Map files are resolved
// relative to the directory of path.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes src; filename is used in diagnostics and as the base for
// relative map files.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to parse %s: %w", filename, diags)
	}

	var raw hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: failed to decode %s: %w", filename, diags)
	}

	sc := &Scenario{Maps: make(map[string]*gridmap.Map, len(raw.Maps))}
	base := filepath.Dir(filename)
	for _, mb := range raw.Maps {
		if _, dup := sc.Maps[mb.Name]; dup {
			return nil, fmt.Errorf("%w: map %q", ErrDuplicate, mb.Name)
		}
		m, err := mb.load(base)
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", mb.Name, err)
		}
		sc.Maps[mb.Name] = m
	}

	seen := make(map[string]bool, len(raw.Runs))
	for _, rb := range raw.Runs {
		if seen[rb.Name] {
			return nil, fmt.Errorf("%w: run %q", ErrDuplicate, rb.Name)
		}
		seen[rb.Name] = true

		run, err := rb.resolve(sc.Maps)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", rb.Name, err)
		}
		sc.Runs = append(sc.Runs, run)
	}

	return sc, nil
}

func (mb *hclMap) load(base string) (*gridmap.Map, error) {
	if (mb.File == "") == (len(mb.Rows) == 0) {
		return nil, ErrMapSource
	}
	if len(mb.Rows) > 0 {
		return gridmap.FromString(strings.Join(mb.Rows, "\n"), mb.Height, mb.Width)
	}

	path := mb.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return movingai.ReadMap(f)
}

func (rb *hclRun) resolve(maps map[string]*gridmap.Map) (Run, error) {
	m, ok := maps[rb.Map]
	if !ok {
		return Run{}, fmt.Errorf("%w: %q", ErrUnknownMap, rb.Map)
	}

	alg := pathfind.AStar2k
	if rb.Algorithm != "" {
		a, err := pathfind.ParseAlgorithm(rb.Algorithm)
		if err != nil {
			return Run{}, err
		}
		alg = a
	}
	h, err := heuristic.ByName(rb.Heuristic)
	if err != nil {
		return Run{}, err
	}
	k := rb.K
	if k == 0 {
		k = 2
	}

	// start and goal may refer to the size of their map.
	ectx := &hcl.EvalContext{Variables: map[string]cty.Value{
		"height": cty.NumberIntVal(int64(m.Height())),
		"width":  cty.NumberIntVal(int64(m.Width())),
	}}
	start, err := point(rb.Start, ectx)
	if err != nil {
		return Run{}, fmt.Errorf("start: %w", err)
	}
	goal, err := point(rb.Goal, ectx)
	if err != nil {
		return Run{}, fmt.Errorf("goal: %w", err)
	}

	return Run{
		Name:      rb.Name,
		MapName:   rb.Map,
		Map:       m,
		Algorithm: alg,
		K:         k,
		Heuristic: h,
		Task:      pathfind.Task{Start: start, Goal: goal},
		Expect:    rb.Expect,
		MaxSteps:  rb.MaxSteps,
	}, nil
}

// point evaluates expr to a [row, column] pair.
func point(expr hcl.Expression, ectx *hcl.EvalContext) (gridmap.Point, error) {
	val, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return gridmap.Point{}, diags
	}
	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil || list.IsNull() || !list.IsKnown() || list.LengthInt() != 2 {
		return gridmap.Point{}, ErrBadPoint
	}

	var ij []int
	if err := gocty.FromCtyValue(list, &ij); err != nil {
		return gridmap.Point{}, fmt.Errorf("%w: %v", ErrBadPoint, err)
	}

	return gridmap.Point{I: ij[0], J: ij[1]}, nil
}
