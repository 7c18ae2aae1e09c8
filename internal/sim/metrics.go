package sim

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
	"github.com/elektrokombinacija/wmr-sim/internal/report"
)

// Run end states.
const (
	StatusCompleted = "completed"
	StatusStopped   = "stopped"
	StatusFailed    = "failed"
)

// Metrics collects per-run aggregates while a simulation steps.
type Metrics struct {
	RunID    string `json:"run_id"`
	Scenario string `json:"scenario,omitempty"`
	Variant  string `json:"variant"`
	Status   string `json:"status"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	SimTime    float64   `json:"sim_time_s"`

	Steps              int     `json:"steps"`
	Distance           float64 `json:"distance_m"`
	Energy             float64 `json:"energy_j"`
	PeakPower          float64 `json:"peak_power_w"`
	SaturatedSteps     int     `json:"saturated_steps"`
	MinStabilityMargin float64 `json:"min_stability_margin"`

	FinalX       float64 `json:"final_x_m"`
	FinalY       float64 `json:"final_y_m"`
	FinalZ       float64 `json:"final_z_m"`
	FinalHeading float64 `json:"final_heading_rad"`
}

func newMetrics(scenario string, v core.Variant) Metrics {
	return Metrics{
		RunID:              uuid.NewString(),
		Scenario:           scenario,
		Variant:            v.String(),
		StartedAt:          time.Now(),
		MinStabilityMargin: math.Inf(1),
	}
}

// observe folds one completed step into the aggregates.
func (m *Metrics) observe(s core.State, f core.StepForces, dt float64) {
	m.Steps++
	m.Distance += math.Abs(s.V) * dt
	if p := math.Abs(f.TotalPower); p > m.PeakPower {
		m.PeakPower = p
	}
	if f.Saturated {
		m.SaturatedSteps++
	}
	if f.Margin < m.MinStabilityMargin {
		m.MinStabilityMargin = f.Margin
	}
}

// finish seals the aggregates once the run loop exits.
func (m *Metrics) finish(status string, r *core.Robot) {
	m.Status = status
	m.FinishedAt = time.Now()
	m.SimTime = r.State.Elapsed
	m.Energy = report.Energy(r.History)
	m.FinalX = r.State.X
	m.FinalY = r.State.Y
	m.FinalZ = r.State.Z
	m.FinalHeading = r.State.Heading
	if math.IsInf(m.MinStabilityMargin, 1) {
		// no step ever ran, so there is no margin sample
		m.MinStabilityMargin = 0
	}
}

// ExportMetrics writes the current metrics snapshot to a JSON file.
func (s *Simulator) ExportMetrics(path string) error {
	m := s.Metrics()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal metrics")
	}
	return os.WriteFile(path, data, 0644)
}

// Result is the final output of a scenario run.
type Result struct {
	Scenario core.Scenario `json:"scenario"`
	Metrics  Metrics       `json:"metrics"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
}

// RunScenario builds a simulator from a scenario and executes it.
func RunScenario(ctx context.Context, sc core.Scenario, logger *zap.Logger) (*Result, error) {
	cfg, err := FromScenario(sc)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger

	m, err := NewSimulator(cfg).Run(ctx)

	res := &Result{Scenario: sc, Success: err == nil}
	if err != nil {
		res.Error = err.Error()
		res.Metrics.Status = StatusFailed
		return res, err
	}
	res.Metrics = *m
	return res, nil
}
