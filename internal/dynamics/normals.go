package dynamics

import (
	"math"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// Redistribution terms below these thresholds are skipped so that
// near-zero tilts and offsets do not inject numerical noise.
const (
	epsTilt   = 1e-6
	epsOffset = 1e-6
)

// NormalForces distributes the robot's weight over its wheels for the
// given tilt, in wheel storage order. A wheel pushed past the contact
// limit reports zero force (loss of contact), never a negative one.
func NormalForces(v core.Variant, g core.Geometry, pitch, roll float64) []float64 {
	if v.WheelCount() == 2 {
		return diffNormals(g, pitch, roll, v.HasOffset())
	}
	return fourWheelNormals(g, pitch, roll, v.HasOffset())
}

func diffNormals(g core.Geometry, pitch, roll float64, offset bool) []float64 {
	weight := g.Weight()
	perp, _ := core.GravityComponents(pitch)
	base := g.Mass * perp / 2.0

	left, right := base, base
	if offset && math.Abs(g.OffsetY) > epsOffset && math.Abs(g.Track) > epsOffset {
		// Lateral displacement B loads the side it leans toward.
		moment := weight * g.OffsetY / g.Track
		left -= moment / 2.0
		right += moment / 2.0
	}
	if math.Abs(roll) > epsTilt {
		// Positive roll loads the right side.
		delta := weight * math.Sin(roll) / 2.0
		left -= delta
		right += delta
	}
	return []float64{contact(left), contact(right)}
}

func fourWheelNormals(g core.Geometry, pitch, roll float64, offset bool) []float64 {
	weight := g.Weight()
	perp, par := core.GravityComponents(pitch)
	base := g.Mass * perp / 4.0

	front, rear := base, base
	if offset && math.Abs(g.OffsetX) > epsOffset && math.Abs(g.Wheelbase) > epsOffset {
		// Longitudinal displacement A shifts load between the axles.
		moment := weight * g.OffsetX / g.Wheelbase
		front -= moment / 2.0
		rear += moment / 2.0
	}

	leftFactor, rightFactor := 1.0, 1.0
	if offset && math.Abs(g.OffsetY) > epsOffset && math.Abs(g.Track) > epsOffset {
		// Lateral displacement B scales the two sides against each
		// other; the factors sum to 2, preserving the total.
		moment := weight * g.OffsetY / g.Track
		leftFactor = 1.0 - moment/weight
		rightFactor = 1.0 + moment/weight
	}

	fl := front * leftFactor
	fr := front * rightFactor
	rl := rear * leftFactor
	rr := rear * rightFactor

	if math.Abs(pitch) > epsTilt {
		// Climbing shifts load to the rear axle.
		delta := g.Mass * par / 2.0
		fl -= delta / 2.0
		fr -= delta / 2.0
		rl += delta / 2.0
		rr += delta / 2.0
	}
	if math.Abs(roll) > epsTilt {
		// Positive roll loads the right side.
		delta := weight * math.Sin(roll) / 2.0
		fl -= delta / 2.0
		fr += delta / 2.0
		rl -= delta / 2.0
		rr += delta / 2.0
	}
	return []float64{contact(fl), contact(fr), contact(rl), contact(rr)}
}

// contact floors a normal force at zero: a lifted wheel carries no
// load and offers no traction.
func contact(n float64) float64 {
	return math.Max(n, 0)
}
