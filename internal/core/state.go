package core

// State is the kinematic and dynamic state of a robot at one instant.
// The integrator mutates it in place exactly once per step.
type State struct {
	X        float64 // world-frame position, m
	Y        float64 // world-frame position, m
	Z        float64 // height gained on slopes, m
	Heading  float64 // orientation about the vertical axis, rad (unwrapped)
	V        float64 // linear velocity, m/s
	Omega    float64 // angular velocity, rad/s
	AccelLin float64 // linear acceleration by backward differences, m/s²
	AccelAng float64 // angular acceleration by backward differences, rad/s²
	Pitch    float64 // terrain tilt about the lateral axis, rad
	Roll     float64 // terrain tilt about the longitudinal axis, rad
	Elapsed  float64 // simulation clock, s

	// Previous commanded velocities, kept only for the backward
	// finite-difference acceleration of the next step.
	PrevV     float64
	PrevOmega float64
}

// StepForces is the per-wheel dynamics output of one step. Slices are
// indexed in wheel storage order and sized by the variant's wheel count.
type StepForces struct {
	WheelSpeeds []float64 // wheel angular velocities, rad/s
	Normals     []float64 // normal forces, N
	Tangentials []float64 // traction forces after friction clamping, N
	Torques     []float64 // drive torques, N·m
	Powers      []float64 // mechanical power per wheel, W
	TotalPower  float64   // sum of per-wheel powers, W
	Saturated   bool      // at least one wheel hit its friction limit
	Margin      float64   // lateral stability margin: 1 unloaded, 0 at the slip limit, negative sliding
}
