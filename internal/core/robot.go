package core

// Geometry holds the physical parameters of a robot. All values are SI.
type Geometry struct {
	Mass        float64 `json:"mass_kg"`
	Friction    float64 `json:"friction"`       // static friction coefficient, dimensionless
	Length      float64 `json:"length_m"`       // chassis length
	Width       float64 `json:"width_m"`        // chassis width
	WheelRadius float64 `json:"wheel_radius_m"` // driven wheel radius
	Track       float64 `json:"track_m"`        // lateral distance between left and right wheels
	Wheelbase   float64 `json:"wheelbase_m"`    // longitudinal distance between axles (four-wheel only)
	CasterDist  float64 `json:"caster_dist_m"`  // caster distance from the drive axle (differential only)
	OffsetX     float64 `json:"offset_x_m"`     // center-of-mass displacement A, longitudinal
	OffsetY     float64 `json:"offset_y_m"`     // center-of-mass displacement B, lateral
	OffsetZ     float64 `json:"offset_z_m"`     // center-of-mass displacement C, vertical
}

// Weight returns the gravitational force on the robot in N.
func (g Geometry) Weight() float64 {
	return g.Mass * Gravity
}

// HalfTrack returns half the lateral wheel separation in m.
func (g Geometry) HalfTrack() float64 {
	return g.Track / 2.0
}

// YawInertia returns the moment of inertia about the vertical axis in
// kg·m², approximating the chassis as a flat rectangular plate:
// Iz = m(L² + W²)/12.
func (g Geometry) YawInertia() float64 {
	return g.Mass / 12.0 * (g.Length*g.Length + g.Width*g.Width)
}

// Robot pairs a drive variant with its geometry and running state.
// Geometry is fixed for the robot's lifetime; State and History are
// mutated once per simulation step.
type Robot struct {
	Variant  Variant
	Geometry Geometry
	State    State
	History  *History
}

// NewRobot creates a robot at the origin, at rest, with an empty history.
func NewRobot(v Variant, geo Geometry) *Robot {
	return &Robot{Variant: v, Geometry: geo, History: NewHistory()}
}

// Wheels returns the number of driven wheels.
func (r *Robot) Wheels() int {
	return r.Variant.WheelCount()
}

// SetTilt sets the terrain tilt the robot currently stands on, in rad.
func (r *Robot) SetTilt(pitch, roll float64) {
	r.State.Pitch = pitch
	r.State.Roll = roll
}

// Reset returns the robot to the origin at rest and clears the history.
// Resetting an already reset robot changes nothing.
func (r *Robot) Reset() {
	r.State = State{}
	r.History.Reset()
}
