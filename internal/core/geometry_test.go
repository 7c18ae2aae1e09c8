package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWheelPositionsDifferential(t *testing.T) {
	g := DefaultGeometry(DiffCentered)
	positions := WheelPositions(DiffCentered, g)

	if len(positions) != 2 {
		t.Fatalf("got %d wheel positions, want 2", len(positions))
	}
	if positions[WheelLeft].Y() != -0.2 || positions[WheelRight].Y() != 0.2 {
		t.Errorf("lateral positions = %g, %g, want -0.2, 0.2",
			positions[WheelLeft].Y(), positions[WheelRight].Y())
	}
	for i, p := range positions {
		if p.X() != 0 {
			t.Errorf("wheel %d sits off the drive axle: X = %g", i, p.X())
		}
	}
}

func TestWheelPositionsFourWheel(t *testing.T) {
	g := DefaultGeometry(FourWheelCentered)
	positions := WheelPositions(FourWheelCentered, g)

	if len(positions) != 4 {
		t.Fatalf("got %d wheel positions, want 4", len(positions))
	}
	if positions[WheelFrontLeft].X() != 0.35 || positions[WheelRearRight].X() != -0.35 {
		t.Errorf("longitudinal positions wrong: FL %g, RR %g",
			positions[WheelFrontLeft].X(), positions[WheelRearRight].X())
	}

	// The mount rectangle is centered on the reference point.
	var sumX, sumY float64
	for _, p := range positions {
		sumX += p.X()
		sumY += p.Y()
	}
	if sumX != 0 || sumY != 0 {
		t.Errorf("mount rectangle not centered: sum = (%g, %g)", sumX, sumY)
	}
}

func TestCasterPositionAheadOfAxle(t *testing.T) {
	g := DefaultGeometry(DiffCentered)
	p := CasterPosition(g)
	if p.X() != g.CasterDist || p.Y() != 0 {
		t.Errorf("caster at (%g, %g), want (%g, 0)", p.X(), p.Y(), g.CasterDist)
	}
}

func TestToWorldRotatesThenTranslates(t *testing.T) {
	s := State{X: 1, Y: 2, Heading: math.Pi / 2}
	p := ToWorld(s, mgl64.Vec3{1, 0, 0})

	// A quarter turn maps the forward unit vector onto +Y.
	if math.Abs(p.X()-1) > 1e-12 || math.Abs(p.Y()-3) > 1e-12 {
		t.Errorf("ToWorld = (%g, %g), want (1, 3)", p.X(), p.Y())
	}
}

func TestTurnRadius(t *testing.T) {
	tests := []struct {
		v, omega float64
		want     float64
	}{
		{1.0, 0.5, 2.0},
		{2.0, -0.5, -4.0},
		{0, 1.0, 0},
	}

	for _, tt := range tests {
		got := TurnRadius(tt.v, tt.omega)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("TurnRadius(%g, %g) = %g, want %g", tt.v, tt.omega, got, tt.want)
		}
	}

	if !math.IsInf(TurnRadius(1.0, 0), 1) {
		t.Error("straight motion should give an infinite turn radius")
	}
}

func TestGravityComponents(t *testing.T) {
	perp, par := GravityComponents(0)
	if perp != Gravity || par != 0 {
		t.Errorf("flat ground split = (%g, %g), want (%g, 0)", perp, par, Gravity)
	}

	perp, par = GravityComponents(math.Pi / 6)
	if math.Abs(perp-Gravity*math.Sqrt(3)/2) > 1e-12 {
		t.Errorf("perpendicular component at 30° = %g", perp)
	}
	if math.Abs(par-Gravity/2) > 1e-12 {
		t.Errorf("parallel component at 30° = %g", par)
	}
}
