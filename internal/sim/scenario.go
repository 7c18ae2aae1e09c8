package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
	"github.com/elektrokombinacija/wmr-sim/internal/dynamics"
	"github.com/elektrokombinacija/wmr-sim/internal/motion"
)

// FromScenario validates a scenario and builds the run configuration for
// it. Terrain angles are converted from the file's degrees to radians
// here; everything downstream works in radians.
func FromScenario(sc core.Scenario) (Config, error) {
	variant, err := core.ParseVariant(sc.Variant)
	if err != nil {
		return Config{}, err
	}
	if err := sc.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "scenario %q", sc.Name)
	}

	var profile motion.Profile
	switch sc.Motion.Mode {
	case core.ModeFixed:
		profile = motion.FixedProfile{
			V:        sc.Motion.LinearV,
			Omega:    sc.Motion.AngularV,
			Duration: sc.Motion.Duration,
		}
	default:
		profile = motion.RampProfile{
			TargetV:     sc.Motion.LinearV,
			TargetOmega: sc.Motion.AngularV,
			AccelTime:   sc.Motion.AccelTime,
			ConstTime:   sc.Motion.ConstTime,
			DecelTime:   sc.Motion.DecelTime,
		}
	}

	var terrain motion.Terrain
	switch sc.Terrain.Kind {
	case core.TerrainPitch:
		terrain.Pitch = mgl64.DegToRad(sc.Terrain.PitchDeg)
	case core.TerrainPitchRoll:
		terrain.Pitch = mgl64.DegToRad(sc.Terrain.PitchDeg)
		terrain.Roll = mgl64.DegToRad(sc.Terrain.RollDeg)
	}

	return Config{
		Name:       sc.Name,
		Robot:      core.NewRobot(variant, sc.Geometry),
		Profile:    profile,
		Terrain:    terrain,
		TimeStep:   sc.Step(),
		Resistance: dynamics.DefaultResistance(),
	}, nil
}
