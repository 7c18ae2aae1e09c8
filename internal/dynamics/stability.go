package dynamics

import (
	"math"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// Stability is the outcome of the lateral slip check for one tilt.
type Stability struct {
	LateralForce float64 // downslope lateral load m·g·|sin(roll)|, N
	GripLimit    float64 // available lateral friction μ·m·g·cos(pitch)·cos(roll), N
	Margin       float64 // (GripLimit-LateralForce)/GripLimit; 0 when the grip is ~0
}

// Stable reports whether the lateral load stays within the grip limit.
func (s Stability) Stable() bool {
	return s.LateralForce <= s.GripLimit
}

// CheckStability evaluates whether the robot can hold its line on a
// tilted surface without sliding sideways.
func CheckStability(g core.Geometry, pitch, roll float64) Stability {
	lateral := g.Mass * core.Gravity * math.Abs(math.Sin(roll))
	grip := g.Friction * g.Mass * core.Gravity * math.Cos(pitch) * math.Cos(roll)

	margin := 0.0
	if grip > 1e-6 {
		margin = (grip - lateral) / grip
	}
	return Stability{LateralForce: lateral, GripLimit: grip, Margin: margin}
}
