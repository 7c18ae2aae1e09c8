package dynamics

import (
	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// Resistance models speed-proportional losses opposing motion. Both
// terms vanish at rest, so a stationary robot transmits no power.
type Resistance struct {
	Linear  float64 // N·s/m, opposes linear velocity
	Angular float64 // N·m·s/rad, opposes angular velocity
}

// DefaultResistance returns the reference platform coefficients.
func DefaultResistance() Resistance {
	return Resistance{Linear: 0.5, Angular: 0.01}
}

// Solve computes the per-wheel dynamics for the robot's current
// state: wheel speeds from the body twist, weight distribution,
// required traction with the yaw torque balance, Coulomb friction
// saturation, and the resulting torque and power. Solve never mutates
// the state.
func Solve(r *core.Robot, res Resistance) core.StepForces {
	s := r.State
	g := r.Geometry
	n := r.Wheels()

	speeds := WheelSpeeds(r.Variant, g, s.V, s.Omega)
	normals := NormalForces(r.Variant, g, s.Pitch, s.Roll)

	// Total tangential demand: accelerate the mass, overcome rolling
	// resistance, hold the slope. Split evenly across the wheels.
	_, downhill := core.GravityComponents(s.Pitch)
	linear := g.Mass*s.AccelLin + res.Linear*s.V + g.Mass*downhill
	perWheel := linear / float64(n)

	// Yaw torque balance: the commanded angular acceleration is
	// realized by a right/left traction difference across the track.
	yaw := g.YawInertia()*s.AccelAng + res.Angular*s.Omega
	var delta float64
	if g.Track > 0 {
		delta = yaw / (float64(n/2) * g.Track)
	}

	tangentials := make([]float64, n)
	torques := make([]float64, n)
	powers := make([]float64, n)
	saturated := false
	total := 0.0

	for i := 0; i < n; i++ {
		required := perWheel - delta
		if isRightWheel(i) {
			required = perWheel + delta
		}

		// Coulomb saturation: a wheel can never transmit more than
		// the friction limit allows. Exceeding it is slip, not an
		// error.
		limit := g.Friction * normals[i]
		force := required
		if force > limit {
			force = limit
			saturated = true
		} else if force < -limit {
			force = -limit
			saturated = true
		}

		tangentials[i] = force
		torques[i] = force * g.WheelRadius
		powers[i] = torques[i] * speeds[i]
		total += powers[i]
	}

	return core.StepForces{
		WheelSpeeds: speeds,
		Normals:     normals,
		Tangentials: tangentials,
		Torques:     torques,
		Powers:      powers,
		TotalPower:  total,
		Saturated:   saturated,
		Margin:      CheckStability(g, s.Pitch, s.Roll).Margin,
	}
}

// WheelSpeeds converts the body twist (v, ω) to wheel angular
// velocities via the lateral lever arm: right-side wheels run faster
// in a positive (counterclockwise) turn. Only the lateral offset
// matters, so front and rear wheels on the same side match. A zero
// wheel radius yields all zeros.
func WheelSpeeds(v core.Variant, g core.Geometry, linear, omega float64) []float64 {
	speeds := make([]float64, v.WheelCount())
	if g.WheelRadius <= 0 {
		return speeds
	}
	arm := g.HalfTrack()
	for i := range speeds {
		if isRightWheel(i) {
			speeds[i] = (linear + omega*arm) / g.WheelRadius
		} else {
			speeds[i] = (linear - omega*arm) / g.WheelRadius
		}
	}
	return speeds
}

// isRightWheel reports whether storage index i is on the right side.
// Storage order alternates sides: {left, right} and {FL, FR, RL, RR}.
func isRightWheel(i int) bool {
	return i%2 == 1
}
