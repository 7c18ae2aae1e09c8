// Package core defines the domain model for wheeled mobile robot
// simulation: drive variants, physical geometry, kinematic state, and
// the per-step history of a run.
package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Gravity is the gravitational acceleration used by all force models, in m/s².
const Gravity = 9.81

// DefaultTimeStep is the integration step used by the simulation driver, in s.
const DefaultTimeStep = 0.05

// Variant identifies the drive configuration of a robot.
type Variant int

const (
	DiffCentered      Variant = iota // differential drive, center of mass on the wheel axis
	DiffOffset                       // differential drive, displaced center of mass
	FourWheelCentered                // skid-steer 4x4, center of mass at the geometric center
	FourWheelOffset                  // skid-steer 4x4, displaced center of mass
)

// String returns the scenario-file name of the variant.
func (v Variant) String() string {
	return [...]string{"diff_centered", "diff_offset", "four_wheel_centered", "four_wheel_offset"}[v]
}

// Variants returns all supported drive configurations.
func Variants() []Variant {
	return []Variant{DiffCentered, DiffOffset, FourWheelCentered, FourWheelOffset}
}

// ParseVariant maps a scenario-file name to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, nil
		}
	}
	names := make([]string, 0, len(Variants()))
	for _, v := range Variants() {
		names = append(names, v.String())
	}
	return 0, errors.Errorf("unknown variant %q (want one of %s)", s, strings.Join(names, ", "))
}

// WheelCount returns the number of driven wheels for the variant.
func (v Variant) WheelCount() int {
	switch v {
	case DiffCentered, DiffOffset:
		return 2
	default:
		return 4
	}
}

// HasOffset reports whether the variant models a displaced center of mass.
func (v Variant) HasOffset() bool {
	return v == DiffOffset || v == FourWheelOffset
}

// Wheel storage order for differential variants.
const (
	WheelLeft = iota
	WheelRight
)

// Wheel storage order for four-wheel variants.
const (
	WheelFrontLeft = iota
	WheelFrontRight
	WheelRearLeft
	WheelRearRight
)

// WheelLabels returns display names for each wheel in storage order.
func (v Variant) WheelLabels() []string {
	if v.WheelCount() == 2 {
		return []string{"left", "right"}
	}
	return []string{"front_left", "front_right", "rear_left", "rear_right"}
}

// Motion profile modes accepted in scenario files.
const (
	ModeRamp  = "ramp"  // accelerate, hold, decelerate
	ModeFixed = "fixed" // constant commanded velocities
)

// Terrain envelope kinds accepted in scenario files.
const (
	TerrainFlat      = "flat"       // level ground throughout
	TerrainPitch     = "pitch"      // fore-aft slope in the middle section
	TerrainPitchRoll = "pitch_roll" // combined fore-aft and lateral slope
)
