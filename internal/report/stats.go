// Package report turns run histories into summary statistics, CSV
// tables, PNG charts, and console output.
package report

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// SeriesStats summarizes one recorded variable.
type SeriesStats struct {
	Variable string
	Unit     string
	Min      float64
	Max      float64
	Mean     float64
	Mode     float64
}

// Collect builds the per-variable summary for a run: platform motion
// first, then each per-wheel series, then total power. Wheel columns
// are named with the given labels, in wheel order.
func Collect(h *core.History, labels []string) []SeriesStats {
	out := []SeriesStats{
		series("v", "m/s", h.V),
		series("omega", "rad/s", h.Omega),
		series("accel_linear", "m/s2", h.AccelLin),
		series("accel_angular", "rad/s2", h.AccelAng),
	}
	perWheel := []struct {
		name string
		unit string
		rows [][]float64
	}{
		{"wheel_speed", "rad/s", h.WheelSpeeds},
		{"force_tangential", "N", h.Tangentials},
		{"force_normal", "N", h.Normals},
		{"torque", "N*m", h.Torques},
		{"power", "W", h.Powers},
	}
	for _, q := range perWheel {
		for w, label := range labels {
			out = append(out, series(q.name+"_"+label, q.unit, column(q.rows, w)))
		}
	}
	return append(out, series("total_power", "W", h.TotalPower))
}

// Energy integrates |total power| over the recorded samples with the
// trapezoid rule.
func Energy(h *core.History) float64 {
	var e float64
	for i := 1; i < h.Len(); i++ {
		dt := h.Time[i] - h.Time[i-1]
		e += 0.5 * (math.Abs(h.TotalPower[i-1]) + math.Abs(h.TotalPower[i])) * dt
	}
	return e
}

func series(name, unit string, xs []float64) SeriesStats {
	if len(xs) == 0 {
		return SeriesStats{Variable: name, Unit: unit}
	}
	return SeriesStats{
		Variable: name,
		Unit:     unit,
		Min:      lo.Min(xs),
		Max:      lo.Max(xs),
		Mean:     lo.Sum(xs) / float64(len(xs)),
		Mode:     mode(xs),
	}
}

// mode returns the most frequent sample, breaking ties toward the
// smaller value. When every sample is distinct it falls back to the
// median.
func mode(xs []float64) float64 {
	counts := lo.CountValues(xs)
	best, bestN := 0.0, 0
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	if bestN <= 1 {
		return median(xs)
	}
	return best
}

func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

func column(rows [][]float64, w int) []float64 {
	return lo.Map(rows, func(row []float64, _ int) float64 { return row[w] })
}
