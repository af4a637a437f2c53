package timeline

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Paint describes how a primitive is drawn
type Paint struct {
	Color       color.Color
	StrokeWidth float32
	Fill        bool
}

// Segment is a straight line between two consecutive markers
type Segment struct {
	From fyne.Position
	To   fyne.Position
}

// Canvas receives the draw calls of one pass
type Canvas interface {
	DrawLine(from, to fyne.Position, paint Paint)
	DrawCircle(center fyne.Position, radius float32, paint Paint)
}

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
)

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	From   fyne.Position // line start, or circle centre
	To     fyne.Position // line end
	Radius float32
	Paint  Paint
}

// Recorder is a Canvas that keeps every call in order
type Recorder struct {
	Ops []Op
}

// DrawLine records a line
func (r *Recorder) DrawLine(from, to fyne.Position, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Paint: paint})
}

// DrawCircle records a circle
func (r *Recorder) DrawCircle(center fyne.Position, radius float32, paint Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, From: center, Radius: radius, Paint: paint})
}

// Lines returns the recorded lines
func (r *Recorder) Lines() []Op {
	return r.filter(OpLine)
}

// Circles returns the recorded circles
func (r *Recorder) Circles() []Op {
	return r.filter(OpCircle)
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
