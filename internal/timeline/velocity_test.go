package timeline

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestVelocityTracker_Empty(t *testing.T) {
	vt := NewVelocityTracker()
	assert.Equal(t, fyne.Delta{}, vt.Velocity())

	vt.AddMovement(time.Now(), fyne.NewPos(0, 0))
	assert.Equal(t, fyne.Delta{}, vt.Velocity(), "one sample has no velocity")
}

func TestVelocityTracker_Velocity(t *testing.T) {
	vt := NewVelocityTracker()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	vt.AddMovement(start, fyne.NewPos(0, 0))
	vt.AddMovement(start.Add(50*time.Millisecond), fyne.NewPos(10, 50))
	vt.AddMovement(start.Add(100*time.Millisecond), fyne.NewPos(20, 100))

	v := vt.Velocity()
	assert.InDelta(t, 200, v.DX, 0.01)
	assert.InDelta(t, 1000, v.DY, 0.01)
}

func TestVelocityTracker_IgnoresStaleSamples(t *testing.T) {
	vt := NewVelocityTracker()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	vt.AddMovement(start, fyne.NewPos(0, 1000))
	vt.AddMovement(start.Add(500*time.Millisecond), fyne.NewPos(0, 0))
	vt.AddMovement(start.Add(550*time.Millisecond), fyne.NewPos(0, 10))

	assert.InDelta(t, 200, vt.Velocity().DY, 0.01)
}

func TestVelocityTracker_SameTimestamp(t *testing.T) {
	vt := NewVelocityTracker()
	now := time.Now()
	vt.AddMovement(now, fyne.NewPos(0, 0))
	vt.AddMovement(now, fyne.NewPos(0, 50))

	assert.Equal(t, fyne.Delta{}, vt.Velocity())
}

func TestVelocityTracker_BoundedSamples(t *testing.T) {
	vt := NewVelocityTracker()
	start := time.Now()
	for i := 0; i < MaxVelocitySamples*3; i++ {
		vt.AddMovement(start.Add(time.Duration(i)*time.Millisecond), fyne.NewPos(0, float32(i)))
	}

	assert.Len(t, vt.samples, MaxVelocitySamples)
	assert.InDelta(t, 1000, vt.Velocity().DY, 0.01)

	vt.Clear()
	assert.Equal(t, fyne.Delta{}, vt.Velocity())
}
