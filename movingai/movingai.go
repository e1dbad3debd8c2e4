// Package movingai reads the map and scenario formats of the MovingAI grid
// pathfinding benchmarks.
//
// A map file starts with a four-line header
//
//	type octile
//	height H
//	width W
//	map
//
// followed by H rows of W glyphs. '.', 'G' and 'S' are passable; every other
// glyph is an obstacle. A scenario file starts with "version N" and lists one
// task per line:
//
//	bucket map width height startX startY goalX goalY optimal
//
// X is a column and Y a row; Entry stores them as gridmap points (I = Y, J = X).
package movingai

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
)

// Sentinel errors.
var (
	// ErrBadHeader indicates a missing or malformed header line.
	ErrBadHeader = errors.New("movingai: bad header")

	// ErrBadEntry indicates a malformed map row or scenario line.
	ErrBadEntry = errors.New("movingai: bad entry")
)

// Entry is one scenario task.
type Entry struct {
	Bucket        int
	Map           string
	Width, Height int
	Start, Goal   gridmap.Point
	Optimal       float64
}

// ReadMap parses a MovingAI .map stream.
func ReadMap(r io.Reader) (*gridmap.Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(sc.Text()), true
	}

	height, width := -1, -1
	for {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing \"map\" line", ErrBadHeader)
		}
		if text == "map" {
			break
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadHeader, line, text)
		}
		switch fields[0] {
		case "type":
		case "height", "width":
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: line %d: %s %q", ErrBadHeader, line, fields[0], fields[1])
			}
			if fields[0] == "height" {
				height = n
			} else {
				width = n
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown key %q", ErrBadHeader, line, fields[0])
		}
	}
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: height and width are required", ErrBadHeader)
	}

	cells := make([][]bool, 0, height)
	for len(cells) < height {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadEntry, len(cells), height)
		}
		if len(text) != width {
			return nil, fmt.Errorf("%w: line %d: %d glyphs, want %d", ErrBadEntry, line, len(text), width)
		}
		row := make([]bool, width)
		for j := 0; j < width; j++ {
			row[j] = !passable(text[j])
		}
		cells = append(cells, row)
	}

	return gridmap.New(height, width, cells)
}

func passable(c byte) bool {
	return c == '.' || c == 'G' || c == 'S'
}

// ReadScenario parses a MovingAI .scen stream.
func ReadScenario(r io.Reader) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty scenario", ErrBadHeader)
	}
	if f := strings.Fields(sc.Text()); len(f) != 2 || f[0] != "version" {
		return nil, fmt.Errorf("%w: line 1: %q", ErrBadHeader, sc.Text())
	}

	var out []Entry
	for line := 2; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseEntry(text string) (Entry, error) {
	f := strings.Fields(text)
	if len(f) != 9 {
		return Entry{}, fmt.Errorf("%w: %d fields, want 9", ErrBadEntry, len(f))
	}

	var n [7]int
	for k, idx := range [7]int{0, 2, 3, 4, 5, 6, 7} {
		v, err := strconv.Atoi(f[idx])
		if err != nil {
			return Entry{}, fmt.Errorf("%w: field %d: %v", ErrBadEntry, idx+1, err)
		}
		n[k] = v
	}
	opt, err := strconv.ParseFloat(f[8], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: optimal length: %v", ErrBadEntry, err)
	}

	return Entry{
		Bucket:  n[0],
		Map:     f[1],
		Width:   n[1],
		Height:  n[2],
		Start:   gridmap.Point{I: n[4], J: n[3]},
		Goal:    gridmap.Point{I: n[6], J: n[5]},
		Optimal: opt,
	}, nil
}
