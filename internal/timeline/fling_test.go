package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFling_Threshold(t *testing.T) {
	assert.Nil(t, NewFling(0))
	assert.Nil(t, NewFling(MinFlingVelocity/2))
	assert.Nil(t, NewFling(-MinFlingVelocity/2))
	assert.NotNil(t, NewFling(MinFlingVelocity))
}

func TestNewFling_CapsVelocity(t *testing.T) {
	f := NewFling(-3 * MaxFlingVelocity)
	require.NotNil(t, f)
	assert.Equal(t, -MaxFlingVelocity, f.Velocity())
}

func TestFling_Kinematics(t *testing.T) {
	f := NewFling(2500)
	require.NotNil(t, f)

	// v / a = 1s, distance = v² / 2a = 1250
	assert.Equal(t, time.Second, f.Duration())
	assert.InDelta(t, 1250, f.Distance(), 0.01)
	assert.InDelta(t, 0, f.OffsetAt(0), 0.01)
	assert.InDelta(t, 937.5, f.OffsetAt(500*time.Millisecond), 0.01)
	assert.InDelta(t, 1250, f.OffsetAt(5*time.Second), 0.01, "constant after the glide stops")
	assert.InDelta(t, 0, f.OffsetAt(-time.Second), 0.01)

	assert.InDelta(t, 937.5, f.OffsetAtProgress(0.5), 0.01)
	assert.InDelta(t, 1250, f.OffsetAtProgress(2), 0.01)
}

func TestFling_Negative(t *testing.T) {
	f := NewFling(-2500)
	require.NotNil(t, f)

	assert.InDelta(t, -1250, f.Distance(), 0.01)
	assert.InDelta(t, -937.5, f.OffsetAt(500*time.Millisecond), 0.01)
}
