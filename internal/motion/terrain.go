package motion

// Terrain is the tilt envelope applied over a run, in radians. Flat ground
// is the zero value.
type Terrain struct {
	Pitch float64
	Roll  float64
}

// At returns the tilt for step i of an n-step run. The first and last
// fifths of the run stay flat; the configured tilt holds in between.
func (t Terrain) At(i, n int) (pitch, roll float64) {
	lo := int(float64(n) * 0.2)
	hi := int(float64(n) * 0.8)
	if i < lo || i >= hi {
		return 0, 0
	}
	return t.Pitch, t.Roll
}

// Flat reports whether the envelope never tilts the platform.
func (t Terrain) Flat() bool {
	return t.Pitch == 0 && t.Roll == 0
}
