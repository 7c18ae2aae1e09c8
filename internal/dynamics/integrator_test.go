package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

func TestAdvanceBackwardDifferenceAcceleration(t *testing.T) {
	t.Parallel()

	var s core.State
	Advance(&s, 1.0, 0, 0.05)
	assert.Equal(t, 20.0, s.AccelLin, "first 0 to 1 m/s transition at 50 ms")
	assert.Equal(t, 1.0, s.V)

	Advance(&s, 1.0, 0, 0.05)
	assert.Equal(t, 0.0, s.AccelLin, "steady command leaves no acceleration")
}

func TestAdvanceAngularAcceleration(t *testing.T) {
	t.Parallel()

	var s core.State
	Advance(&s, 0, 0.2, 0.05)
	assert.Equal(t, 4.0, s.AccelAng)

	Advance(&s, 0, 0.2, 0.05)
	assert.Equal(t, 0.0, s.AccelAng)
}

func TestAdvanceZeroTimestep(t *testing.T) {
	t.Parallel()

	s := core.State{X: 1, Y: 2, Heading: 0.5, Elapsed: 3}
	Advance(&s, 2.0, 0.1, 0)

	assert.Equal(t, 0.0, s.AccelLin, "no timestep, no finite difference")
	assert.Equal(t, 0.0, s.AccelAng)
	assert.Equal(t, 1.0, s.X)
	assert.Equal(t, 2.0, s.Y)
	assert.Equal(t, 0.5, s.Heading)
	assert.Equal(t, 3.0, s.Elapsed)
}

func TestPureRotationKeepsPosition(t *testing.T) {
	t.Parallel()

	var s core.State
	for i := 0; i < 10; i++ {
		Advance(&s, 0, 0.5, 0.05)
	}

	assert.Zero(t, s.X, "pure rotation must not translate")
	assert.Zero(t, s.Y)
	assert.InDelta(t, 0.25, s.Heading, 1e-12)
}

func TestPureTranslationKeepsHeading(t *testing.T) {
	t.Parallel()

	var s core.State
	for i := 0; i < 20; i++ {
		Advance(&s, 1.0, 0, 0.05)
	}

	assert.Zero(t, s.Heading, "straight motion must not rotate")
	assert.Zero(t, s.Y, "motion stays on the initial heading")
	assert.InDelta(t, 1.0, s.X, 1e-9)
}

func TestAdvanceUpdatesHeadingBeforePosition(t *testing.T) {
	t.Parallel()

	// One step that turns a quarter circle: the displacement must be
	// taken along the new heading, i.e. fully in +Y.
	var s core.State
	Advance(&s, 1.0, math.Pi/2/0.05, 0.05)

	assert.InDelta(t, math.Pi/2, s.Heading, 1e-12)
	assert.InDelta(t, 0, s.X, 1e-12)
	assert.InDelta(t, 0.05, s.Y, 1e-12)
}

func TestAdvanceClimbsSlope(t *testing.T) {
	t.Parallel()

	s := core.State{Pitch: math.Pi / 6}
	Advance(&s, 1.0, 0, 0.05)

	// Height gain is the slope component of the travelled distance.
	assert.InDelta(t, 0.025, s.Z, 1e-12)
}

func TestAdvanceAccumulatesClock(t *testing.T) {
	t.Parallel()

	var s core.State
	for i := 0; i < 40; i++ {
		Advance(&s, 0.5, 0, 0.05)
	}
	assert.InDelta(t, 2.0, s.Elapsed, 1e-9)
}
