package timeline

import (
	"time"

	"fyne.io/fyne/v2"
)

// Velocity sampling constants
const (
	VelocityHorizon    = 100 * time.Millisecond
	MaxVelocitySamples = 20
)

type velocitySample struct {
	at  time.Time
	pos fyne.Position
}

// VelocityTracker estimates pointer velocity from recent movements
type VelocityTracker struct {
	samples []velocitySample
}

// NewVelocityTracker creates an empty tracker
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{samples: make([]velocitySample, 0, MaxVelocitySamples)}
}

// AddMovement records the pointer at pos at time at
func (vt *VelocityTracker) AddMovement(at time.Time, pos fyne.Position) {
	if len(vt.samples) == MaxVelocitySamples {
		copy(vt.samples, vt.samples[1:])
		vt.samples = vt.samples[:len(vt.samples)-1]
	}
	vt.samples = append(vt.samples, velocitySample{at: at, pos: pos})
}

// Velocity returns pixels per second along each axis over the samples within
// VelocityHorizon of the newest one. Fewer than two samples give zero.
func (vt *VelocityTracker) Velocity() fyne.Delta {
	if len(vt.samples) < 2 {
		return fyne.Delta{}
	}

	newest := vt.samples[len(vt.samples)-1]
	oldest := newest
	for i := len(vt.samples) - 2; i >= 0; i-- {
		if newest.at.Sub(vt.samples[i].at) > VelocityHorizon {
			break
		}
		oldest = vt.samples[i]
	}

	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return fyne.Delta{}
	}
	return fyne.Delta{
		DX: float32(float64(newest.pos.X-oldest.pos.X) / dt),
		DY: float32(float64(newest.pos.Y-oldest.pos.Y) / dt),
	}
}

// Clear drops every sample
func (vt *VelocityTracker) Clear() {
	vt.samples = vt.samples[:0]
}
