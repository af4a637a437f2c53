package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/ytget/timelineview/internal/timeline"
)

var (
	_ fyne.Draggable   = (*TimelineView)(nil)
	_ fyne.Scrollable  = (*TimelineView)(nil)
	_ mobile.Touchable = (*TimelineView)(nil)
)

// TouchDown starts a drag gesture and stops any running fling
func (v *TimelineView) TouchDown(event *mobile.TouchEvent) {
	v.stopFling()
	v.scroller.Press(event.Position)
}

// TouchUp ends the gesture; a fast release continues as a fling
func (v *TimelineView) TouchUp(_ *mobile.TouchEvent) {
	v.release()
}

// TouchCancel ends the gesture without momentum
func (v *TimelineView) TouchCancel(_ *mobile.TouchEvent) {
	v.scroller.Cancel()
}

// Dragged scrolls by the stacking-axis movement since the previous event.
// Desktop drags arrive without a touch down, so the first event starts the
// gesture at the position the pointer came from.
func (v *TimelineView) Dragged(event *fyne.DragEvent) {
	if !v.scroller.Pressed() {
		v.stopFling()
		v.scroller.Press(fyne.NewPos(
			event.Position.X-event.Dragged.DX,
			event.Position.Y-event.Dragged.DY,
		))
	}

	if delta := v.scroller.Move(event.Position); delta != 0 {
		v.Refresh()
	}
}

// DragEnd ends the gesture; a fast release continues as a fling
func (v *TimelineView) DragEnd() {
	v.release()
}

// Scrolled handles mouse wheel and trackpad scrolling, kept within the content
func (v *TimelineView) Scrolled(event *fyne.ScrollEvent) {
	delta := -event.Scrolled.DY
	if !v.style.Orientation.IsVertical() {
		delta = -event.Scrolled.DX
		if delta == 0 {
			delta = -event.Scrolled.DY
		}
	}
	if delta == 0 {
		return
	}

	v.stopFling()
	v.scroller.ScrollBy(delta * WheelScrollFactor)
	v.scroller.Clamp(0, v.MaxScroll())
	v.Refresh()
}

func (v *TimelineView) release() {
	if fling := v.scroller.Release(); fling != nil {
		v.startFling(fling)
	}
}

// startFling animates the offset along the fling curve, stopping at the content edges
func (v *TimelineView) startFling(f *timeline.Fling) {
	v.stopFling()

	var applied float32
	var anim *fyne.Animation
	anim = fyne.NewAnimation(f.Duration(), func(progress float32) {
		target := f.OffsetAtProgress(progress)
		v.scroller.ScrollBy(target - applied)
		applied = target

		clamped := v.scroller.Clamp(0, v.MaxScroll())
		v.Refresh()
		if clamped {
			anim.Stop()
		}
	})
	anim.Curve = fyne.AnimationLinear
	v.fling = anim
	anim.Start()
}

func (v *TimelineView) stopFling() {
	if v.fling != nil {
		v.fling.Stop()
		v.fling = nil
	}
}
