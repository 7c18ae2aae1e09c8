package core

// DefaultGeometry returns the factory geometry for a variant, modeled
// on the reference platform: 10 kg chassis, 0.8 m by 0.6 m footprint,
// 0.1 m wheels on dry rubber (μ = 0.5). Offset variants carry a small
// representative center-of-mass displacement so they behave
// differently from their centered siblings out of the box.
func DefaultGeometry(v Variant) Geometry {
	g := Geometry{
		Mass:        10,
		Friction:    0.5,
		Length:      0.8,
		Width:       0.6,
		WheelRadius: 0.1,
	}
	switch v.WheelCount() {
	case 2:
		g.Track = 0.4
		g.CasterDist = 0.2
	case 4:
		g.Track = 0.5
		g.Wheelbase = 0.7
	}
	if v.HasOffset() {
		g.OffsetX = 0.1
		g.OffsetY = 0.05
		g.OffsetZ = 0.05
	}
	return g
}

// DefaultScenario returns a ready-to-run configuration for a variant:
// a 2/5/2 s ramp to 1 m/s with a gentle 0.3 rad/s turn on flat ground.
func DefaultScenario(v Variant) Scenario {
	return Scenario{
		Name:     v.String(),
		Variant:  v.String(),
		Geometry: DefaultGeometry(v),
		Motion: MotionConfig{
			Mode:      ModeRamp,
			LinearV:   1.0,
			AngularV:  0.3,
			AccelTime: 2,
			ConstTime: 5,
			DecelTime: 2,
		},
		Terrain: TerrainConfig{Kind: TerrainFlat},
	}
}

// Presets returns one default scenario per variant, in variant order.
func Presets() []Scenario {
	scenarios := make([]Scenario, 0, len(Variants()))
	for _, v := range Variants() {
		scenarios = append(scenarios, DefaultScenario(v))
	}
	return scenarios
}
