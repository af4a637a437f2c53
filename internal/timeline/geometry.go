package timeline

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/model"
)

// Child is the part of fyne.CanvasObject the timeline needs to place an item.
// Any fyne.CanvasObject satisfies it.
type Child interface {
	MinSize() fyne.Size
	Visible() bool
	Move(fyne.Position)
	Resize(fyne.Size)
	Position() fyne.Position
	Size() fyne.Size
}

// Geometry measures, arranges and draws children for one resolved style.
// It holds no per-frame state; every pass reads the children it is given.
type Geometry struct {
	style      config.Resolved
	linePaint  Paint
	pointPaint Paint
}

// NewGeometry validates the orientation and prepares paints for a resolved style
func NewGeometry(style config.Resolved) (*Geometry, error) {
	if !style.Orientation.Valid() {
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedOrientation, style.Orientation)
	}

	return &Geometry{
		style: style,
		linePaint: Paint{
			Color:       style.LineColor.NRGBA(),
			StrokeWidth: style.LineStrokeWidth,
		},
		pointPaint: Paint{
			Color: style.CircleColor.NRGBA(),
			Fill:  true,
		},
	}, nil
}

// Style returns the resolved style the geometry was built with
func (g *Geometry) Style() config.Resolved {
	return g.style
}

// Orientation returns the stacking axis
func (g *Geometry) Orientation() model.Orientation {
	return g.style.Orientation
}

// Gutter is the space reserved for the marker: the circle diameter or the
// stroke width, whichever is larger
func (g *Geometry) Gutter() float32 {
	return max(g.style.CircleRadius*2, g.style.LineStrokeWidth)
}

// Inset is the cross-axis offset at which every child starts
func (g *Geometry) Inset() float32 {
	return g.style.LineLeftMargin + g.style.LineRightMargin + g.Gutter()
}

// Measure computes the container size for the given constraints. Hidden children
// are ignored; with no visible child the result is zero in every mode.
func (g *Geometry) Measure(children []Child, width, height MeasureSpec) fyne.Size {
	visible := visibleChildren(children)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	var stack, cross float32
	for _, child := range visible {
		s := g.stackExtent(child.MinSize())
		c := g.crossExtent(child.MinSize())
		stack += s
		cross = max(cross, c)
	}

	crossContent := g.Gutter() + cross + g.style.LineLeftMargin + g.style.LineRightMargin
	if g.style.Orientation.IsVertical() {
		return fyne.NewSize(width.resolveCross(crossContent), height.resolveStack(stack))
	}
	return fyne.NewSize(width.resolveStack(stack), height.resolveCross(crossContent))
}

// ContentExtent is the summed stacking-axis size of all visible children
func (g *Geometry) ContentExtent(children []Child) float32 {
	var total float32
	for _, child := range visibleChildren(children) {
		total += g.stackExtent(child.MinSize())
	}
	return total
}

// Arrange sizes every visible child to its minimum size and stacks them at
// Inset, shifted back by offset along the stacking axis. Hidden and nil
// children are skipped and consume no space.
func (g *Geometry) Arrange(children []Child, offset float32) {
	inset := g.Inset()
	var next float32
	for _, child := range children {
		if child == nil || !child.Visible() {
			continue
		}
		size := child.MinSize()
		child.Resize(size)
		if g.style.Orientation.IsVertical() {
			child.Move(fyne.NewPos(inset, next-offset))
		} else {
			child.Move(fyne.NewPos(next-offset, inset))
		}
		next += g.stackExtent(size)
	}
}

// PointPositions returns the stacking-axis centre of every visible child, read
// from its current position and size
func (g *Geometry) PointPositions(children []Child) []float32 {
	visible := visibleChildren(children)
	points := make([]float32, 0, len(visible))
	for _, child := range visible {
		pos, size := child.Position(), child.Size()
		if g.style.Orientation.IsVertical() {
			points = append(points, pos.Y+size.Height/2)
		} else {
			points = append(points, pos.X+size.Width/2)
		}
	}
	return points
}

// Segments connects each consecutive pair of points on the line
func (g *Geometry) Segments(points []float32) []Segment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		segments = append(segments, Segment{
			From: g.onLine(points[i]),
			To:   g.onLine(points[i+1]),
		})
	}
	return segments
}

// Draw emits the connecting lines first and the markers second, so markers
// cover the line joints
func (g *Geometry) Draw(c Canvas, children []Child) {
	points := g.PointPositions(children)
	for _, seg := range g.Segments(points) {
		c.DrawLine(seg.From, seg.To, g.linePaint)
	}
	for _, p := range points {
		c.DrawCircle(g.onLine(p), g.style.CircleRadius, g.pointPaint)
	}
}

// onLine maps a stacking-axis coordinate to a point on the timeline line
func (g *Geometry) onLine(p float32) fyne.Position {
	if g.style.Orientation.IsVertical() {
		return fyne.NewPos(g.style.LineLeftMargin, p)
	}
	return fyne.NewPos(p, g.style.LineLeftMargin)
}

func (g *Geometry) stackExtent(s fyne.Size) float32 {
	if g.style.Orientation.IsVertical() {
		return s.Height
	}
	return s.Width
}

func (g *Geometry) crossExtent(s fyne.Size) float32 {
	if g.style.Orientation.IsVertical() {
		return s.Width
	}
	return s.Height
}

func visibleChildren(children []Child) []Child {
	visible := make([]Child, 0, len(children))
	for _, child := range children {
		if child != nil && child.Visible() {
			visible = append(visible, child)
		}
	}
	return visible
}
