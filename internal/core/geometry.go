package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Robot frame convention: X points forward, Y toward the right wheel,
// Z up, origin at the geometric reference point on the drive axle.

// WheelPositions returns each wheel mount point in the robot frame,
// in wheel storage order.
func WheelPositions(v Variant, g Geometry) []mgl64.Vec3 {
	half := g.HalfTrack()
	if v.WheelCount() == 2 {
		return []mgl64.Vec3{
			{0, -half, 0}, // left
			{0, +half, 0}, // right
		}
	}
	axle := g.Wheelbase / 2.0
	return []mgl64.Vec3{
		{+axle, -half, 0}, // front left
		{+axle, +half, 0}, // front right
		{-axle, -half, 0}, // rear left
		{-axle, +half, 0}, // rear right
	}
}

// CasterPosition returns the passive caster mount point for
// differential variants, ahead of the drive axle.
func CasterPosition(g Geometry) mgl64.Vec3 {
	return mgl64.Vec3{g.CasterDist, 0, 0}
}

// CenterOfMass returns the (A, B, C) displacement as a robot-frame vector.
func (g Geometry) CenterOfMass() mgl64.Vec3 {
	return mgl64.Vec3{g.OffsetX, g.OffsetY, g.OffsetZ}
}

// ToWorld transforms a robot-frame point into the world frame for the
// pose in s: rotate by the heading about Z, then translate.
func ToWorld(s State, p mgl64.Vec3) mgl64.Vec3 {
	rotated := mgl64.Rotate3DZ(s.Heading).Mul3x1(p)
	return rotated.Add(mgl64.Vec3{s.X, s.Y, s.Z})
}

// TurnRadius returns the instantaneous turn radius v/ω in m.
// Straight motion (ω = 0) returns +Inf.
func TurnRadius(v, omega float64) float64 {
	if omega == 0 {
		return math.Inf(1)
	}
	return v / omega
}

// GravityComponents splits the gravitational acceleration on a pitched
// plane into its surface-normal and downhill parts, in m/s².
func GravityComponents(pitch float64) (perp, par float64) {
	return Gravity * math.Cos(pitch), Gravity * math.Sin(pitch)
}
