package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// Canvas is the part of tcell.Screen that Terminal draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Terminal draws the character raster of m and p at the top-left corner of s
// and shows it.
func Terminal(s Canvas, m *gridmap.Map, p *pathfind.Path) {
	for i, row := range raster(m, p) {
		for j, r := range row {
			style := freeStyle
			switch r {
			case ObstacleGlyph:
				style = obstacleStyle
			case PathGlyph:
				style = pathStyle
			}
			s.SetContent(j, i, r, nil, style)
		}
	}
	s.Show()
}

// Text returns the character raster of m and p, one line per cell row.
func Text(m *gridmap.Map, p *pathfind.Path) string {
	var b strings.Builder
	b.Grow((m.Width() + 1) * m.Height())
	for _, row := range raster(m, p) {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// raster marks every free cell the path passes through. Each segment is
// sampled at the midpoints of 4·max(|Δi|,|Δj|) equal steps, which keeps the
// samples off cell borders for axis and diagonal moves.
func raster(m *gridmap.Map, p *pathfind.Path) [][]rune {
	grid := make([][]rune, m.Height())
	for i := range grid {
		grid[i] = make([]rune, m.Width())
		for j := range grid[i] {
			grid[i][j] = FreeGlyph
			if m.IsObstacle(i, j) {
				grid[i][j] = ObstacleGlyph
			}
		}
	}
	if p == nil {
		return grid
	}

	for k := 1; k < len(p.Points); k++ {
		a, b := p.Points[k-1], p.Points[k]
		di, dj := b.I-a.I, b.J-a.J
		steps := 4 * max(abs(di), abs(dj))
		for s := 0; s < steps; s++ {
			t := (float64(s) + 0.5) / float64(steps)
			ci := int(math.Floor(float64(a.I) + t*float64(di)))
			cj := int(math.Floor(float64(a.J) + t*float64(dj)))
			if m.InBoundsCell(ci, cj) && grid[ci][cj] == FreeGlyph {
				grid[ci][cj] = PathGlyph
			}
		}
	}

	return grid
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
