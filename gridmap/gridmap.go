package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Map is an immutable occupancy grid. cells is row-major, true marks an obstacle.
type Map struct {
	height, width int
	cells         []bool
}

// New constructs a Map from a height×width matrix (true = obstacle).
// The input is deep-copied so later mutation of cells does not affect the Map.
// Returns ErrEmptyGrid if height or width is below one and ErrDimensionMismatch
// if the matrix shape differs from the declared size.
// Complexity: O(H×W).
func New(height, width int, cells [][]bool) (*Map, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(cells), height)
	}
	flat := make([]bool, 0, height*width)
	for i, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, i, len(row), width)
		}
		flat = append(flat, row...)
	}

	return &Map{height: height, width: width, cells: flat}, nil
}

// FromString parses s with the default glyphs. See Parse.
func FromString(s string, height, width int) (*Map, error) {
	return Parse(strings.NewReader(s), height, width)
}

// Parse reads a line-oriented text matrix. Each line that contains at least one
// glyph is one row; runes other than the two glyphs are skipped (or rejected
// under WithStrictGlyphs, whitespace excepted). The number of rows and of cells
// per row must equal height and width exactly.
func Parse(r io.Reader, height, width int, opts ...ParseOption) (*Map, error) {
	cfg := DefaultParseOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}

	rows := make([][]bool, 0, height)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		var row []bool
		for _, c := range sc.Text() {
			switch {
			case c == cfg.Free:
				row = append(row, false)
			case c == cfg.Obstacle:
				row = append(row, true)
			case cfg.Strict && !unicode.IsSpace(c):
				return nil, fmt.Errorf("%w: %q on line %d", ErrUnknownGlyph, c, line)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrDimensionMismatch, line, len(row), width)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: read: %w", err)
	}
	if len(rows) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(rows), height)
	}

	return New(height, width, rows)
}

// Height returns the number of cell rows.
func (m *Map) Height() int { return m.height }

// Width returns the number of cell columns.
func (m *Map) Width() int { return m.width }

// InBoundsCell reports whether cell (i,j) lies inside the matrix.
func (m *Map) InBoundsCell(i, j int) bool {
	return i >= 0 && i < m.height && j >= 0 && j < m.width
}

// InBounds reports whether lattice point (i,j) lies on the grid, border included.
func (m *Map) InBounds(i, j int) bool {
	return i >= 0 && i <= m.height && j >= 0 && j <= m.width
}

// IsObstacle reports whether cell (i,j) is blocked. Cells outside the matrix are blocked.
func (m *Map) IsObstacle(i, j int) bool {
	if !m.InBoundsCell(i, j) {
		return true
	}
	return m.cells[i*m.width+j]
}

// IsDiagonalIntersection reports whether point (i,j) is a corner where two
// obstacle cells touch only diagonally while the other two cells are free.
func (m *Map) IsDiagonalIntersection(i, j int) bool {
	tl, tr := m.IsObstacle(i-1, j-1), m.IsObstacle(i-1, j)
	bl, br := m.IsObstacle(i, j-1), m.IsObstacle(i, j)

	return (tl && br && !tr && !bl) || (tr && bl && !tl && !br)
}

// Free reports whether at least one of the four cells around point (i,j) is free.
func (m *Map) Free(i, j int) bool {
	return !m.IsObstacle(i-1, j-1) || !m.IsObstacle(i-1, j) ||
		!m.IsObstacle(i, j-1) || !m.IsObstacle(i, j)
}

// String renders the grid back to the default text format, one row per line.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			if m.cells[i*m.width+j] {
				b.WriteRune(ObstacleGlyph)
			} else {
				b.WriteRune(FreeGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
