package core

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ValidationError reports one rejected parameter together with a
// suggested correction.
type ValidationError struct {
	Field   string
	Problem string
	Fix     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s; %s", e.Field, e.Problem, e.Fix)
}

func invalid(field, problem, fix string) error {
	return &ValidationError{Field: field, Problem: problem, Fix: fix}
}

// Validate checks every scenario parameter and returns all violations
// combined into one error. A nil result means the scenario is safe to
// hand to the simulation driver.
func (s *Scenario) Validate() error {
	variant, err := ParseVariant(s.Variant)
	if err != nil {
		// Geometry rules depend on the variant, so stop here.
		return invalid("variant", err.Error(), "pick one of the four supported drive configurations")
	}

	var errs error
	g := s.Geometry

	if g.Mass <= 0 {
		errs = multierr.Append(errs, invalid("geometry.mass_kg",
			fmt.Sprintf("must be positive, got %g", g.Mass),
			"set a mass greater than zero"))
	}
	if g.Friction < 0 {
		errs = multierr.Append(errs, invalid("geometry.friction",
			fmt.Sprintf("must be non-negative, got %g", g.Friction),
			"use a coefficient of at least 0, typically 0.1 to 1.5"))
	}
	if g.Length <= 0 {
		errs = multierr.Append(errs, invalid("geometry.length_m",
			fmt.Sprintf("must be positive, got %g", g.Length),
			"set a chassis length greater than zero"))
	}
	if g.Width <= 0 {
		errs = multierr.Append(errs, invalid("geometry.width_m",
			fmt.Sprintf("must be positive, got %g", g.Width),
			"set a chassis width greater than zero"))
	}
	if g.WheelRadius <= 0 {
		errs = multierr.Append(errs, invalid("geometry.wheel_radius_m",
			fmt.Sprintf("must be positive, got %g", g.WheelRadius),
			"set a wheel radius greater than zero"))
	}

	switch variant.WheelCount() {
	case 2:
		if g.Track <= 0 {
			errs = multierr.Append(errs, invalid("geometry.track_m",
				fmt.Sprintf("must be positive, got %g", g.Track),
				"set the distance between the drive wheels"))
		} else if g.WheelRadius >= g.Track/2 {
			errs = multierr.Append(errs, invalid("geometry.wheel_radius_m",
				fmt.Sprintf("radius %.3f m must stay below half the track %.3f m", g.WheelRadius, g.Track/2),
				"shrink the wheels or widen the track"))
		}
		if g.CasterDist <= 0 {
			errs = multierr.Append(errs, invalid("geometry.caster_dist_m",
				fmt.Sprintf("must be positive, got %g", g.CasterDist),
				"set the caster distance from the drive axle"))
		} else if g.Length > 0 && g.CasterDist > g.Length {
			errs = multierr.Append(errs, invalid("geometry.caster_dist_m",
				fmt.Sprintf("caster at %.3f m lies beyond the %.3f m chassis", g.CasterDist, g.Length),
				"move the caster closer or lengthen the chassis"))
		}
	case 4:
		if g.Track <= 0 {
			errs = multierr.Append(errs, invalid("geometry.track_m",
				fmt.Sprintf("must be positive, got %g", g.Track),
				"set the lateral wheel separation"))
		} else if g.Track <= 2*g.WheelRadius {
			errs = multierr.Append(errs, invalid("geometry.track_m",
				fmt.Sprintf("track %.3f m must exceed the wheel diameter %.3f m", g.Track, 2*g.WheelRadius),
				"widen the track or shrink the wheels"))
		}
		if g.Wheelbase <= 0 {
			errs = multierr.Append(errs, invalid("geometry.wheelbase_m",
				fmt.Sprintf("must be positive, got %g", g.Wheelbase),
				"set the longitudinal axle separation"))
		} else if g.Wheelbase <= 2*g.WheelRadius {
			errs = multierr.Append(errs, invalid("geometry.wheelbase_m",
				fmt.Sprintf("wheelbase %.3f m must exceed the wheel diameter %.3f m", g.Wheelbase, 2*g.WheelRadius),
				"lengthen the wheelbase or shrink the wheels"))
		}
	}

	if variant.HasOffset() {
		if g.Length > 0 && math.Abs(g.OffsetX) > g.Length/2 {
			errs = multierr.Append(errs, invalid("geometry.offset_x_m",
				fmt.Sprintf("displacement %.3f m exceeds half the chassis length %.3f m", g.OffsetX, g.Length/2),
				fmt.Sprintf("keep |A| below %.3f m", g.Length/2)))
		}
		if g.Width > 0 && math.Abs(g.OffsetY) > g.Width/2 {
			errs = multierr.Append(errs, invalid("geometry.offset_y_m",
				fmt.Sprintf("displacement %.3f m exceeds half the chassis width %.3f m", g.OffsetY, g.Width/2),
				fmt.Sprintf("keep |B| below %.3f m", g.Width/2)))
		}
		if math.Abs(g.OffsetZ) > 1.0 {
			errs = multierr.Append(errs, invalid("geometry.offset_z_m",
				fmt.Sprintf("displacement %.3f m is out of range", g.OffsetZ),
				"keep |C| below 1 m"))
		}
	}

	errs = multierr.Append(errs, s.validateMotion())
	errs = multierr.Append(errs, s.validateTerrain())

	if s.TimeStep < 0 {
		errs = multierr.Append(errs, invalid("time_step_s",
			fmt.Sprintf("must not be negative, got %g", s.TimeStep),
			"leave it at 0 for the default step or set a positive value"))
	}
	return errs
}

func (s *Scenario) validateMotion() error {
	m := s.Motion
	switch m.Mode {
	case ModeRamp:
		var errs error
		for _, phase := range []struct {
			field string
			value float64
		}{
			{"motion.accel_s", m.AccelTime},
			{"motion.constant_s", m.ConstTime},
			{"motion.decel_s", m.DecelTime},
		} {
			if phase.value < 0 {
				errs = multierr.Append(errs, invalid(phase.field,
					fmt.Sprintf("must not be negative, got %g", phase.value),
					"use a duration of at least 0 s"))
			}
		}
		if m.AccelTime+m.ConstTime+m.DecelTime == 0 {
			errs = multierr.Append(errs, invalid("motion",
				"total profile duration is zero",
				"make at least one ramp phase longer than 0 s"))
		}
		return errs
	case ModeFixed:
		if m.Duration <= 0 {
			return invalid("motion.duration_s",
				fmt.Sprintf("must be positive, got %g", m.Duration),
				"set a run duration greater than zero")
		}
		return nil
	default:
		return invalid("motion.mode",
			fmt.Sprintf("unknown mode %q", m.Mode),
			fmt.Sprintf("use %q or %q", ModeRamp, ModeFixed))
	}
}

func (s *Scenario) validateTerrain() error {
	t := s.Terrain
	switch t.Kind {
	case TerrainFlat:
		return nil
	case TerrainPitch, TerrainPitchRoll:
		var errs error
		if t.PitchDeg < 0 || t.PitchDeg > 90 {
			errs = multierr.Append(errs, invalid("terrain.pitch_deg",
				fmt.Sprintf("angle %.1f° is outside [0, 90]", t.PitchDeg),
				"use a pitch between 0 and 90 degrees"))
		}
		if t.Kind == TerrainPitchRoll && (t.RollDeg < 0 || t.RollDeg > 90) {
			errs = multierr.Append(errs, invalid("terrain.roll_deg",
				fmt.Sprintf("angle %.1f° is outside [0, 90]", t.RollDeg),
				"use a roll between 0 and 90 degrees"))
		}
		return errs
	default:
		return invalid("terrain.kind",
			fmt.Sprintf("unknown kind %q", t.Kind),
			fmt.Sprintf("use %q, %q or %q", TerrainFlat, TerrainPitch, TerrainPitchRoll))
	}
}
