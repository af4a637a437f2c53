// Package textcanvas rasterises timeline draw calls onto a grid of terminal
// cells, one cell per pixel, and renders the grid with lipgloss colours.
package textcanvas

import (
	"image/color"
	"math"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/timeline"
)

// Glyphs used for the timeline primitives
const (
	GlyphVertical   = '│'
	GlyphHorizontal = '─'
	GlyphDiagonal   = '·'
	GlyphMarker     = '●'
	GlyphBlank      = ' '
)

type cell struct {
	r     rune
	color string // lipgloss colour, empty for default
}

// Grid is a fixed size cell buffer implementing timeline.Canvas
type Grid struct {
	width  int
	height int
	cells  []cell
}

var _ timeline.Canvas = (*Grid)(nil)

// NewGrid creates a blank grid
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, cells: make([]cell, width*height)}
	g.Clear()
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// Resize changes the grid size and blanks every cell
func (g *Grid) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width*height != len(g.cells) {
		g.cells = make([]cell, width*height)
	}
	g.width, g.height = width, height
	g.Clear()
}

// Clear blanks every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: GlyphBlank}
	}
}

// At returns the rune at column x, row y, or a blank outside the grid
func (g *Grid) At(x, y int) rune {
	if !g.inside(x, y) {
		return GlyphBlank
	}
	return g.cells[y*g.width+x].r
}

// DrawLine draws an axis aligned line; other slopes are stepped with dots.
// Lines with a stroke narrower than half a cell are not drawn.
func (g *Grid) DrawLine(from, to fyne.Position, paint timeline.Paint) {
	if paint.StrokeWidth > 0 && paint.StrokeWidth < 0.5 {
		return
	}
	x0, y0 := cellOf(from.X), cellOf(from.Y)
	x1, y1 := cellOf(to.X), cellOf(to.Y)
	fg := colorOf(paint.Color)

	glyph := GlyphDiagonal
	switch {
	case x0 == x1:
		glyph = GlyphVertical
	case y0 == y1:
		glyph = GlyphHorizontal
	}

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + (x1-x0)*i/steps
			y = y0 + (y1-y0)*i/steps
		}
		g.set(x, y, glyph, fg)
	}
}

// DrawCircle fills the cells covered by the circle; a radius under one cell
// still marks the centre cell
func (g *Grid) DrawCircle(center fyne.Position, radius float32, paint timeline.Paint) {
	fg := colorOf(paint.Color)
	cx, cy := cellOf(center.X), cellOf(center.Y)
	r := int(radius)
	if r < 1 {
		g.set(cx, cy, GlyphMarker, fg)
		return
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				g.set(x, y, GlyphMarker, fg)
			}
		}
	}
}

// Put writes text starting at column x, row y, clipped to the grid
func (g *Grid) Put(x, y int, text string, fg string) {
	for i, r := range []rune(text) {
		g.set(x+i, y, r, fg)
	}
}

// String returns the grid without colours, rows joined by newlines
func (g *Grid) String() string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y*g.width+x].r)
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Render returns the grid with each run of same coloured cells styled by lipgloss
func (g *Grid) Render() string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		var run strings.Builder
		current := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(current)).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.color != current {
				flush()
				current = c.color
			}
			run.WriteRune(c.r)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (g *Grid) set(x, y int, r rune, fg string) {
	if !g.inside(x, y) {
		return
	}
	g.cells[y*g.width+x] = cell{r: r, color: fg}
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func cellOf(v float32) int {
	return int(math.Floor(float64(v)))
}

func colorOf(c color.Color) string {
	if c == nil {
		return ""
	}
	return config.FromColor(c).RGBHex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
