package core

// History is the append-only record of a run: parallel series indexed
// by step number. Every series always has the same length; Append adds
// one complete row or nothing. Rows are never mutated after appending.
type History struct {
	Time     []float64
	X        []float64
	Y        []float64
	Z        []float64
	Heading  []float64
	V        []float64
	Omega    []float64
	AccelLin []float64
	AccelAng []float64

	WheelSpeeds [][]float64
	Normals     [][]float64
	Tangentials [][]float64
	Torques     [][]float64
	Powers      [][]float64
	TotalPower  []float64
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	return len(h.Time)
}

// Append records one completed step. Per-wheel slices are copied, so
// the caller may reuse the backing arrays in f.
func (h *History) Append(s State, f StepForces) {
	h.Time = append(h.Time, s.Elapsed)
	h.X = append(h.X, s.X)
	h.Y = append(h.Y, s.Y)
	h.Z = append(h.Z, s.Z)
	h.Heading = append(h.Heading, s.Heading)
	h.V = append(h.V, s.V)
	h.Omega = append(h.Omega, s.Omega)
	h.AccelLin = append(h.AccelLin, s.AccelLin)
	h.AccelAng = append(h.AccelAng, s.AccelAng)

	h.WheelSpeeds = append(h.WheelSpeeds, copyRow(f.WheelSpeeds))
	h.Normals = append(h.Normals, copyRow(f.Normals))
	h.Tangentials = append(h.Tangentials, copyRow(f.Tangentials))
	h.Torques = append(h.Torques, copyRow(f.Torques))
	h.Powers = append(h.Powers, copyRow(f.Powers))
	h.TotalPower = append(h.TotalPower, f.TotalPower)
}

// Reset discards all recorded steps.
func (h *History) Reset() {
	*h = History{}
}

// Clone returns a copy that is safe to read while the run continues.
// Row slices are shared, which is sound because rows are immutable
// once appended.
func (h *History) Clone() *History {
	return &History{
		Time:     append([]float64(nil), h.Time...),
		X:        append([]float64(nil), h.X...),
		Y:        append([]float64(nil), h.Y...),
		Z:        append([]float64(nil), h.Z...),
		Heading:  append([]float64(nil), h.Heading...),
		V:        append([]float64(nil), h.V...),
		Omega:    append([]float64(nil), h.Omega...),
		AccelLin: append([]float64(nil), h.AccelLin...),
		AccelAng: append([]float64(nil), h.AccelAng...),

		WheelSpeeds: append([][]float64(nil), h.WheelSpeeds...),
		Normals:     append([][]float64(nil), h.Normals...),
		Tangentials: append([][]float64(nil), h.Tangentials...),
		Torques:     append([][]float64(nil), h.Torques...),
		Powers:      append([][]float64(nil), h.Powers...),
		TotalPower:  append([]float64(nil), h.TotalPower...),
	}
}

func copyRow(row []float64) []float64 {
	return append([]float64(nil), row...)
}
