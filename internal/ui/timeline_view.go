package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/timeline"
)

// TimelineView stacks its objects along one axis and draws a line through
// their centres with a dot at each centre. The style is fixed at construction;
// build a new view to change it.
type TimelineView struct {
	widget.BaseWidget

	style    config.Style
	geometry *timeline.Geometry
	scroller *timeline.Scroller
	objects  []fyne.CanvasObject

	fling *fyne.Animation
}

// NewTimelineView creates a timeline with the given style and initial objects.
// Invalid styles, including unsupported orientations, are rejected.
func NewTimelineView(style config.Style, objects ...fyne.CanvasObject) (*TimelineView, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("timeline view: %w", err)
	}

	geometry, err := timeline.NewGeometry(style.Resolve(FyneDensity))
	if err != nil {
		return nil, fmt.Errorf("timeline view: %w", err)
	}

	v := &TimelineView{
		style:    style,
		geometry: geometry,
		scroller: timeline.NewScroller(style.Orientation),
		objects:  make([]fyne.CanvasObject, 0, len(objects)),
	}
	for i, obj := range objects {
		if obj == nil {
			log.Printf("Warning: NewTimelineView skipping nil object at index %d", i)
			continue
		}
		v.objects = append(v.objects, obj)
	}
	v.ExtendBaseWidget(v)
	return v, nil
}

// Style returns the construction-time style
func (v *TimelineView) Style() config.Style {
	return v.style
}

// Objects returns a copy of the current objects in stacking order
func (v *TimelineView) Objects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject(nil), v.objects...)
}

// Add appends an object to the end of the timeline
func (v *TimelineView) Add(obj fyne.CanvasObject) {
	if obj == nil {
		log.Printf("Warning: TimelineView.Add called with nil object")
		return
	}
	v.objects = append(v.objects, obj)
	v.Refresh()
}

// Remove removes an object and reports whether it was present
func (v *TimelineView) Remove(obj fyne.CanvasObject) bool {
	for i, o := range v.objects {
		if o == obj {
			v.objects = append(v.objects[:i], v.objects[i+1:]...)
			v.Refresh()
			return true
		}
	}
	return false
}

// RemoveAll drops every object
func (v *TimelineView) RemoveAll() {
	v.objects = nil
	v.scroller.ScrollTo(0)
	v.Refresh()
}

// Measure reports the size the timeline wants under the given constraints
func (v *TimelineView) Measure(width, height timeline.MeasureSpec) fyne.Size {
	return v.geometry.Measure(v.children(), width, height)
}

// PointPositions returns the current marker coordinates along the stacking axis
func (v *TimelineView) PointPositions() []float32 {
	return v.geometry.PointPositions(v.children())
}

// ScrollOffset returns the current scroll offset along the stacking axis
func (v *TimelineView) ScrollOffset() float32 {
	return v.scroller.Offset()
}

// ScrollBy moves the content by delta along the stacking axis
func (v *TimelineView) ScrollBy(delta float32) {
	v.scroller.ScrollBy(delta)
	v.Refresh()
}

// ScrollTo sets the scroll offset
func (v *TimelineView) ScrollTo(offset float32) {
	v.stopFling()
	v.scroller.ScrollTo(offset)
	v.Refresh()
}

// MaxScroll is the largest offset that keeps the last child inside the view
func (v *TimelineView) MaxScroll() float32 {
	viewport := v.Size().Height
	if !v.style.Orientation.IsVertical() {
		viewport = v.Size().Width
	}
	return max(0, v.geometry.ContentExtent(v.children())-viewport)
}

// CreateRenderer creates the widget renderer
func (v *TimelineView) CreateRenderer() fyne.WidgetRenderer {
	return &timelineRenderer{view: v}
}

func (v *TimelineView) children() []timeline.Child {
	children := make([]timeline.Child, 0, len(v.objects))
	for _, obj := range v.objects {
		children = append(children, obj)
	}
	return children
}

// timelineRenderer draws the line and markers beneath the objects
type timelineRenderer struct {
	view *TimelineView

	lines   []*canvas.Line
	circles []*canvas.Circle
	used    struct{ lines, circles int }
	objects []fyne.CanvasObject
}

var _ timeline.Canvas = (*timelineRenderer)(nil)

// Layout arranges the objects at the current scroll offset and redraws the decoration
func (r *timelineRenderer) Layout(_ fyne.Size) {
	v := r.view
	children := v.children()
	v.geometry.Arrange(children, v.scroller.Offset())

	r.used.lines, r.used.circles = 0, 0
	v.geometry.Draw(r, children)
	r.lines = r.lines[:r.used.lines]
	r.circles = r.circles[:r.used.circles]

	r.objects = r.objects[:0]
	for _, l := range r.lines {
		r.objects = append(r.objects, l)
	}
	for _, c := range r.circles {
		r.objects = append(r.objects, c)
	}
	r.objects = append(r.objects, v.objects...)
}

// MinSize returns the unconstrained measured size
func (r *timelineRenderer) MinSize() fyne.Size {
	return r.view.Measure(timeline.Unbounded(), timeline.Unbounded())
}

// Refresh re-runs layout and repaints the decoration. Children refresh
// themselves when their content changes; moving them is enough here.
func (r *timelineRenderer) Refresh() {
	r.Layout(r.view.Size())
	for _, l := range r.lines {
		l.Refresh()
	}
	for _, c := range r.circles {
		c.Refresh()
	}
}

// Objects returns lines, then circles, then the children
func (r *timelineRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.Layout(r.view.Size())
	}
	return r.objects
}

// Destroy stops any running fling
func (r *timelineRenderer) Destroy() {
	r.view.stopFling()
}

// DrawLine reuses or allocates a canvas.Line
func (r *timelineRenderer) DrawLine(from, to fyne.Position, paint timeline.Paint) {
	if r.used.lines == len(r.lines) {
		r.lines = append(r.lines, canvas.NewLine(paint.Color))
	}
	l := r.lines[r.used.lines]
	r.used.lines++

	l.StrokeColor = paint.Color
	l.StrokeWidth = paint.StrokeWidth
	l.Position1 = from
	l.Position2 = to
}

// DrawCircle reuses or allocates a canvas.Circle
func (r *timelineRenderer) DrawCircle(center fyne.Position, radius float32, paint timeline.Paint) {
	if r.used.circles == len(r.circles) {
		r.circles = append(r.circles, canvas.NewCircle(paint.Color))
	}
	c := r.circles[r.used.circles]
	r.used.circles++

	c.FillColor = paint.Color
	c.Position1 = fyne.NewPos(center.X-radius, center.Y-radius)
	c.Position2 = fyne.NewPos(center.X+radius, center.Y+radius)
}
