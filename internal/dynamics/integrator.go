// Package dynamics implements the per-step physics of a wheeled
// robot: explicit Euler pose integration, weight distribution over
// the wheels, the traction solution with its yaw torque balance, and
// Coulomb friction saturation.
package dynamics

import (
	"math"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// Advance applies one commanded-velocity step to the state using
// explicit Euler integration. Accelerations come from backward finite
// differences of the commanded velocities. The heading updates before
// the position, so the displacement is taken along the new heading;
// height follows the slope component of the travelled distance.
func Advance(s *core.State, vCmd, omegaCmd, dt float64) {
	if dt > 0 {
		s.AccelLin = (vCmd - s.PrevV) / dt
		s.AccelAng = (omegaCmd - s.PrevOmega) / dt
	} else {
		s.AccelLin = 0
		s.AccelAng = 0
	}

	s.V = vCmd
	s.Omega = omegaCmd

	s.Heading += s.Omega * dt
	s.X += s.V * math.Cos(s.Heading) * dt
	s.Y += s.V * math.Sin(s.Heading) * dt
	s.Z += s.V * math.Sin(s.Pitch) * dt

	s.Elapsed += dt
	s.PrevV = vCmd
	s.PrevOmega = omegaCmd
}
