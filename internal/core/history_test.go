package core

import "testing"

func sampleForces() StepForces {
	return StepForces{
		WheelSpeeds: []float64{1, 2},
		Normals:     []float64{49, 49},
		Tangentials: []float64{3, 4},
		Torques:     []float64{0.3, 0.4},
		Powers:      []float64{0.3, 0.8},
		TotalPower:  1.1,
	}
}

func TestHistoryAppendKeepsSeriesAligned(t *testing.T) {
	h := NewHistory()
	s := State{Elapsed: 0.05, X: 0.1, V: 1.0}

	h.Append(s, sampleForces())
	s.Elapsed = 0.1
	h.Append(s, sampleForces())

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	scalars := [][]float64{h.Time, h.X, h.Y, h.Z, h.Heading, h.V, h.Omega, h.AccelLin, h.AccelAng, h.TotalPower}
	for i, series := range scalars {
		if len(series) != 2 {
			t.Errorf("scalar series %d has length %d, want 2", i, len(series))
		}
	}
	wheels := [][][]float64{h.WheelSpeeds, h.Normals, h.Tangentials, h.Torques, h.Powers}
	for i, series := range wheels {
		if len(series) != 2 {
			t.Errorf("wheel series %d has length %d, want 2", i, len(series))
		}
	}
}

func TestHistoryAppendCopiesWheelRows(t *testing.T) {
	h := NewHistory()
	f := sampleForces()
	h.Append(State{}, f)

	f.Normals[0] = -999
	if h.Normals[0][0] == -999 {
		t.Error("Append must copy per-wheel slices, not alias them")
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory()
	h.Append(State{Elapsed: 0.05}, sampleForces())
	h.Reset()

	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", h.Len())
	}
	if len(h.WheelSpeeds) != 0 || len(h.TotalPower) != 0 {
		t.Error("Reset must empty every series")
	}
}

func TestHistoryCloneIsIndependent(t *testing.T) {
	h := NewHistory()
	h.Append(State{Elapsed: 0.05, X: 1}, sampleForces())

	c := h.Clone()
	h.Append(State{Elapsed: 0.1, X: 2}, sampleForces())

	if c.Len() != 1 {
		t.Errorf("clone Len() = %d, want 1", c.Len())
	}
	if h.Len() != 2 {
		t.Errorf("original Len() = %d, want 2", h.Len())
	}
	if c.X[0] != 1 {
		t.Errorf("clone X[0] = %g, want 1", c.X[0])
	}
}
