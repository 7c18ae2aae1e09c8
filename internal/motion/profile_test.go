package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

func referenceRamp() RampProfile {
	return RampProfile{
		TargetV:     1.0,
		TargetOmega: 0.3,
		AccelTime:   2,
		ConstTime:   5,
		DecelTime:   2,
	}
}

func TestRampScheduleLength(t *testing.T) {
	t.Parallel()

	cmds := referenceRamp().Commands(core.DefaultTimeStep)

	require.Len(t, cmds, 180, "2s + 5s + 2s at 50ms is 40 + 100 + 40 steps")
	assert.Equal(t, core.ModeRamp, referenceRamp().Name())
}

func TestRampStartsFromRest(t *testing.T) {
	t.Parallel()

	cmds := referenceRamp().Commands(core.DefaultTimeStep)

	require.NotEmpty(t, cmds)
	assert.Equal(t, Command{}, cmds[0])
}

func TestRampScalesBothSetpointsTogether(t *testing.T) {
	t.Parallel()

	cmds := referenceRamp().Commands(core.DefaultTimeStep)

	// Halfway through the ramp-up the factor is exactly 20/40.
	assert.Equal(t, 0.5, cmds[20].V)
	assert.InDelta(t, 0.15, cmds[20].Omega, 1e-12)
}

func TestRampHoldsTargetThroughConstantPhase(t *testing.T) {
	t.Parallel()

	cmds := referenceRamp().Commands(core.DefaultTimeStep)

	want := Command{V: 1.0, Omega: 0.3}
	assert.Equal(t, want, cmds[40], "first step after the ramp-up")
	assert.Equal(t, want, cmds[139], "last step before the ramp-down")
	assert.Equal(t, want, cmds[140], "ramp-down begins at full speed")
}

func TestRampEndsOneStepShortOfZero(t *testing.T) {
	t.Parallel()

	cmds := referenceRamp().Commands(core.DefaultTimeStep)

	last := cmds[len(cmds)-1]
	assert.Positive(t, last.V)
	assert.InDelta(t, 1.0/40, last.V, 1e-12)
	assert.InDelta(t, 0.3/40, last.Omega, 1e-12)
}

func TestRampTruncatesPartialPhase(t *testing.T) {
	t.Parallel()

	p := RampProfile{TargetV: 1.0, AccelTime: 0.07}
	cmds := p.Commands(core.DefaultTimeStep)

	require.Len(t, cmds, 1, "0.07s covers a single 50ms step")
	assert.Equal(t, Command{}, cmds[0])
}

func TestRampZeroTimestep(t *testing.T) {
	t.Parallel()

	assert.Empty(t, referenceRamp().Commands(0))
}

func TestFixedScheduleIsUniform(t *testing.T) {
	t.Parallel()

	p := FixedProfile{V: 0.8, Omega: -0.2, Duration: 2}
	cmds := p.Commands(core.DefaultTimeStep)

	require.Len(t, cmds, 40)
	want := Command{V: 0.8, Omega: -0.2}
	for i, c := range cmds {
		require.Equal(t, want, c, "step %d", i)
	}
	assert.Equal(t, core.ModeFixed, p.Name())
}
