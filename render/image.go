package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/gridmap"
	"github.com/DenisKorotchenko/any-angle-paths-heuristic-search/pathfind"
)

// Image draws m and p into an image of Width·CellSize × Height·CellSize pixels.
// Lattice point (i, j) maps to pixel (j·CellSize, i·CellSize).
func Image(m *gridmap.Map, p *pathfind.Path, opts ...Option) image.Image {
	return draw(m, p, opts).Image()
}

// PNG encodes the drawing of m and p to w.
func PNG(w io.Writer, m *gridmap.Map, p *pathfind.Path, opts ...Option) error {
	return draw(m, p, opts).EncodePNG(w)
}

func draw(m *gridmap.Map, p *pathfind.Path, opts []Option) *gg.Context {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cs := float64(cfg.CellSize)
	lw := cfg.LineWidth
	if lw <= 0 {
		lw = max(cs/4, 1)
	}

	dc := gg.NewContext(m.Width()*cfg.CellSize, m.Height()*cfg.CellSize)
	dc.SetColor(color.White)
	dc.Clear()

	// 1) Obstacles.
	dc.SetColor(cfg.Obstacle)
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			if m.IsObstacle(i, j) {
				dc.DrawRectangle(float64(j)*cs, float64(i)*cs, cs, cs)
			}
		}
	}
	dc.Fill()

	if p == nil || len(p.Points) == 0 {
		return dc
	}

	// 2) Path polyline.
	dc.SetColor(cfg.Path)
	dc.SetLineWidth(lw)
	first := p.Points[0]
	dc.MoveTo(float64(first.J)*cs, float64(first.I)*cs)
	for _, q := range p.Points[1:] {
		dc.LineTo(float64(q.J)*cs, float64(q.I)*cs)
	}
	dc.Stroke()

	// 3) Start and goal markers.
	last := p.Points[len(p.Points)-1]
	dc.SetRGB255(46, 204, 113)
	dc.DrawCircle(float64(first.J)*cs, float64(first.I)*cs, lw*1.5)
	dc.Fill()
	dc.SetRGB255(231, 76, 60)
	dc.DrawCircle(float64(last.J)*cs, float64(last.I)*cs, lw*1.5)
	dc.Fill()

	return dc
}
