package timeline

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/timelineview/internal/model"
)

// Scroller turns a single-pointer drag into a scroll offset along the stacking
// axis. Moving the pointer by d changes the offset by -d, so content follows
// the finger; cross-axis movement is ignored.
type Scroller struct {
	orientation model.Orientation
	offset      float32
	last        fyne.Position
	pressed     bool
	tracker     *VelocityTracker
	now         func() time.Time
}

// NewScroller creates a scroller for the given stacking axis
func NewScroller(orientation model.Orientation) *Scroller {
	return &Scroller{
		orientation: orientation,
		tracker:     NewVelocityTracker(),
		now:         time.Now,
	}
}

// SetClock replaces the time source used for velocity sampling
func (s *Scroller) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Offset returns the accumulated scroll offset
func (s *Scroller) Offset() float32 {
	return s.offset
}

// Pressed reports whether a gesture is in progress
func (s *Scroller) Pressed() bool {
	return s.pressed
}

// LastPosition returns the last recorded pointer position
func (s *Scroller) LastPosition() fyne.Position {
	return s.last
}

// Press starts a gesture at pos. A second press while one is active is a
// secondary pointer and is ignored.
func (s *Scroller) Press(pos fyne.Position) {
	if s.pressed {
		return
	}
	s.pressed = true
	s.last = pos
	s.tracker.Clear()
	s.tracker.AddMovement(s.now(), pos)
}

// Move applies the stacking-axis delta since the last recorded position and
// returns the offset change. A move without a press starts the gesture.
func (s *Scroller) Move(pos fyne.Position) float32 {
	if !s.pressed {
		s.Press(pos)
		return 0
	}

	var delta float32
	if s.orientation.IsVertical() {
		delta = s.last.Y - pos.Y
	} else {
		delta = s.last.X - pos.X
	}
	s.offset += delta
	s.last = pos
	s.tracker.AddMovement(s.now(), pos)
	return delta
}

// Release ends the gesture and returns the fling implied by the release
// velocity, or nil if the pointer was nearly still
func (s *Scroller) Release() *Fling {
	if !s.pressed {
		return nil
	}
	s.tracker.AddMovement(s.now(), s.last)
	v := s.tracker.Velocity()
	s.pressed = false
	s.tracker.Clear()

	// Offset moves against the pointer
	if s.orientation.IsVertical() {
		return NewFling(-v.DY)
	}
	return NewFling(-v.DX)
}

// Cancel ends the gesture without a fling
func (s *Scroller) Cancel() {
	s.pressed = false
	s.tracker.Clear()
}

// ScrollBy adds delta to the offset
func (s *Scroller) ScrollBy(delta float32) {
	s.offset += delta
}

// ScrollTo sets the offset
func (s *Scroller) ScrollTo(offset float32) {
	s.offset = offset
}

// Clamp keeps the offset within [lo, hi] and reports whether it had to move it
func (s *Scroller) Clamp(lo, hi float32) bool {
	if hi < lo {
		hi = lo
	}
	switch {
	case s.offset < lo:
		s.offset = lo
		return true
	case s.offset > hi:
		s.offset = hi
		return true
	}
	return false
}
