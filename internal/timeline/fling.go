package timeline

import (
	"math"
	"time"
)

// Fling tuning, in pixels per second
const (
	MinFlingVelocity  float32 = 50
	MaxFlingVelocity  float32 = 8000
	FlingDeceleration float32 = 2500 // px/s²
)

// Fling is a constant deceleration glide of the scroll offset
type Fling struct {
	velocity float32 // offset units per second
}

// NewFling creates a fling for a scroll velocity, or nil when the velocity is
// too small to be worth animating. The velocity is capped at MaxFlingVelocity.
func NewFling(velocity float32) *Fling {
	speed := float32(math.Abs(float64(velocity)))
	if speed < MinFlingVelocity {
		return nil
	}
	if speed > MaxFlingVelocity {
		velocity = MaxFlingVelocity * velocity / speed
	}
	return &Fling{velocity: velocity}
}

// Velocity returns the initial scroll velocity
func (f *Fling) Velocity() float32 {
	return f.velocity
}

// Duration is the time until the glide stops
func (f *Fling) Duration() time.Duration {
	seconds := math.Abs(float64(f.velocity)) / float64(FlingDeceleration)
	return time.Duration(seconds * float64(time.Second))
}

// Distance is the total offset change of the glide
func (f *Fling) Distance() float32 {
	return f.offsetAt(f.Duration().Seconds())
}

// OffsetAt returns the offset change after elapsed time, constant after Duration
func (f *Fling) OffsetAt(elapsed time.Duration) float32 {
	t := math.Min(elapsed.Seconds(), f.Duration().Seconds())
	if t < 0 {
		t = 0
	}
	return f.offsetAt(t)
}

// OffsetAtProgress maps an animation progress in [0, 1] onto OffsetAt
func (f *Fling) OffsetAtProgress(progress float32) float32 {
	p := math.Max(0, math.Min(1, float64(progress)))
	return f.offsetAt(p * f.Duration().Seconds())
}

func (f *Fling) offsetAt(t float64) float32 {
	v := float64(f.velocity)
	a := float64(FlingDeceleration)
	if v < 0 {
		a = -a
	}
	return float32(v*t - 0.5*a*t*t)
}
