package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Glyphs of the character raster.
const (
	FreeGlyph     = '.'
	ObstacleGlyph = '#'
	PathGlyph     = '*'
)

// Options configures Image and PNG.
//
// CellSize  – side of one cell in pixels (default 16).
// LineWidth – path stroke width in pixels (default CellSize/4, at least 1).
type Options struct {
	CellSize  int
	LineWidth float64
	Obstacle  color.Color
	Path      color.Color
}

// Option represents a functional option.
type Option func(*Options)

// WithCellSize sets the cell side in pixels; values below 1 are ignored.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.CellSize = px
		}
	}
}

// WithLineWidth sets the path stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *Options) {
		o.LineWidth = w
	}
}

// DefaultOptions returns 16 px cells, a slate obstacle colour and a blue path.
func DefaultOptions() Options {
	return Options{
		CellSize: 16,
		Obstacle: color.RGBA{R: 70, G: 80, B: 80, A: 255},
		Path:     color.RGBA{R: 52, G: 152, B: 219, A: 255},
	}
}

// Terminal styles.
var (
	freeStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	pathStyle     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
)
