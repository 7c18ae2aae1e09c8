package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

func TestStabilityOnFlatGround(t *testing.T) {
	t.Parallel()

	s := CheckStability(core.DefaultGeometry(core.DiffCentered), 0, 0)

	assert.True(t, s.Stable())
	assert.Equal(t, 1.0, s.Margin, "no lateral load leaves the full grip margin")
	assert.Zero(t, s.LateralForce)
}

func TestStabilityMarginOnModerateTilt(t *testing.T) {
	t.Parallel()

	g := core.DefaultGeometry(core.DiffCentered)
	pitch := 15 * math.Pi / 180
	roll := 10 * math.Pi / 180
	s := CheckStability(g, pitch, roll)

	lateral := g.Mass * core.Gravity * math.Sin(roll)
	grip := g.Friction * g.Mass * core.Gravity * math.Cos(pitch) * math.Cos(roll)
	assert.True(t, s.Stable())
	assert.InDelta(t, (grip-lateral)/grip, s.Margin, 1e-12)
	assert.InDelta(t, lateral, s.LateralForce, 1e-12)
	assert.InDelta(t, grip, s.GripLimit, 1e-12)
}

func TestStabilitySlideOnSlickSlope(t *testing.T) {
	t.Parallel()

	g := core.DefaultGeometry(core.DiffCentered)
	g.Friction = 0.1
	s := CheckStability(g, 0, 30*math.Pi/180)

	assert.False(t, s.Stable(), "0.1 friction cannot hold a 30° roll")
	assert.Less(t, s.Margin, 0.0)
}

func TestStabilityZeroGrip(t *testing.T) {
	t.Parallel()

	g := core.DefaultGeometry(core.DiffCentered)
	g.Friction = 0
	s := CheckStability(g, 0, 10*math.Pi/180)

	assert.False(t, s.Stable())
	assert.Zero(t, s.Margin, "margin is pinned to zero when there is no grip to ratio against")
}

func TestSolveReportsStabilityMargin(t *testing.T) {
	t.Parallel()

	r := core.NewRobot(core.DiffCentered, core.DefaultGeometry(core.DiffCentered))
	r.SetTilt(0, 10*math.Pi/180)

	f := Solve(r, DefaultResistance())
	want := CheckStability(r.Geometry, 0, 10*math.Pi/180).Margin
	assert.Equal(t, want, f.Margin)
}
