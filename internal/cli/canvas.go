package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/holefit/pkg/geom"
	"github.com/matzehuels/holefit/pkg/session"
	"github.com/matzehuels/holefit/pkg/validity"
)

// Canvas styles
var (
	canvasHoleStyle     = lipgloss.NewStyle().Foreground(colorGray)
	canvasEdgeStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	canvasStretchStyle  = lipgloss.NewStyle().Foreground(colorRed)
	canvasShrinkStyle   = lipgloss.NewStyle().Foreground(colorBlue)
	canvasVertexStyle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	canvasFrozenStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	canvasSelectedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// canvasLayer orders what wins when two marks share a cell.
type canvasLayer int

const (
	layerEmpty canvasLayer = iota
	layerHole
	layerEdge
	layerVertex
)

type cell struct {
	r     rune
	style lipgloss.Style
	layer canvasLayer
}

// canvas is a character raster of the hole and the figure. Terminal cells
// are about twice as tall as wide, so x is stretched by two.
type canvas struct {
	w, h  int
	cells []cell

	origin geom.Vec2 // world point at the top-left cell
	scale  float64   // cells per world unit along y
}

// newCanvas fits bounds into w×h cells, then applies the session view:
// zoom scales about the center and pan shifts in world units.
func newCanvas(w, h int, bounds geom.Rect, view session.View) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	bw, bh := math.Max(bounds.Width(), 1), math.Max(bounds.Height(), 1)
	c.scale = math.Min(float64(w-1)/(2*bw), float64(h-1)/bh)
	if view.Zoom > 0 {
		c.scale *= view.Zoom
	}
	center := bounds.Center().Add(view.Pan)
	c.origin = geom.Vec(
		center.X-float64(w-1)/(4*c.scale),
		center.Y-float64(h-1)/(2*c.scale),
	)
	return c
}

// project maps a world point to a cell, reporting whether it is visible.
func (c *canvas) project(p geom.Vec2) (int, int, bool) {
	x := int(math.Round((p.X - c.origin.X) * c.scale * 2))
	y := int(math.Round((p.Y - c.origin.Y) * c.scale))
	return x, y, x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) set(x, y int, r rune, style lipgloss.Style, layer canvasLayer) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	if c.cells[i].layer > layer {
		return
	}
	c.cells[i] = cell{r: r, style: style, layer: layer}
}

func (c *canvas) point(p geom.Vec2, r rune, style lipgloss.Style, layer canvasLayer) {
	if x, y, ok := c.project(p); ok {
		c.set(x, y, r, style, layer)
	}
}

// line rasterizes a segment by sampling once per cell along its longer axis.
func (c *canvas) line(s geom.Segment, r rune, style lipgloss.Style, layer canvasLayer) {
	x0, y0, _ := c.project(s.A)
	x1, y1, _ := c.project(s.B)
	n := max(abs(x1-x0), abs(y1-y0), 1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.set(
			int(math.Round(float64(x0)+t*float64(x1-x0))),
			int(math.Round(float64(y0)+t*float64(y1-y0))),
			r, style, layer,
		)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// String renders the raster, merging runs of equal style.
func (c *canvas) String() string {
	var b strings.Builder
	for y := range c.h {
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			if row[x].layer == layerEmpty {
				b.WriteByte(' ')
				x++
				continue
			}
			end := x + 1
			for end < len(row) && row[end].layer == row[x].layer && row[end].style.GetForeground() == row[x].style.GetForeground() {
				end++
			}
			var run strings.Builder
			for _, cl := range row[x:end] {
				run.WriteRune(cl.r)
			}
			b.WriteString(row[x].style.Render(run.String()))
			x = end
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// drawSession paints the hole, the figure edges colored by length status and
// the vertices. The selected vertex is highlighted when in range.
func drawSession(s *session.Session, w, h, selected int) string {
	p := s.Problem()
	vs := s.Vertices()
	bounds := geom.Bounds(append(geom.Clone(p.Hole), vs...))
	c := newCanvas(w, h, bounds, s.View())

	for _, e := range p.HoleEdges() {
		c.line(e, '·', canvasHoleStyle, layerHole)
	}
	for _, v := range p.Hole {
		c.point(v, '+', canvasHoleStyle, layerHole)
	}

	cls := s.Classification()
	for i, e := range p.Figure.Edges {
		style := canvasEdgeStyle
		switch cls.Status[i] {
		case validity.Overstretched:
			style = canvasStretchStyle
		case validity.Overshrunk:
			style = canvasShrinkStyle
		}
		c.line(geom.Seg(vs[e.U], vs[e.V]), '•', style, layerEdge)
	}
	for i, v := range vs {
		switch {
		case i == selected:
			c.point(v, '◉', canvasSelectedStyle, layerVertex+1)
		case s.IsFrozen(i):
			c.point(v, '■', canvasFrozenStyle, layerVertex)
		default:
			c.point(v, 'o', canvasVertexStyle, layerVertex)
		}
	}
	return c.String()
}
