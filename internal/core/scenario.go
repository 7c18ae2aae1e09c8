package core

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// MotionConfig selects and parameterizes the commanded-velocity profile.
type MotionConfig struct {
	Mode     string  `json:"mode"`          // ModeRamp or ModeFixed
	LinearV  float64 `json:"linear_mps"`    // target linear velocity
	AngularV float64 `json:"angular_radps"` // target angular velocity

	// Ramp mode phase durations, s.
	AccelTime float64 `json:"accel_s,omitempty"`
	ConstTime float64 `json:"constant_s,omitempty"`
	DecelTime float64 `json:"decel_s,omitempty"`

	// Fixed mode duration, s.
	Duration float64 `json:"duration_s,omitempty"`
}

// TerrainConfig selects the terrain envelope applied over a run.
// Angles are degrees in the file format; they become radians when the
// simulation is assembled.
type TerrainConfig struct {
	Kind     string  `json:"kind"` // TerrainFlat, TerrainPitch or TerrainPitchRoll
	PitchDeg float64 `json:"pitch_deg,omitempty"`
	RollDeg  float64 `json:"roll_deg,omitempty"`
}

// Scenario is a complete, serializable run configuration.
type Scenario struct {
	Name     string        `json:"name"`
	Variant  string        `json:"variant"`
	Geometry Geometry      `json:"geometry"`
	Motion   MotionConfig  `json:"motion"`
	Terrain  TerrainConfig `json:"terrain"`
	TimeStep float64       `json:"time_step_s,omitempty"` // 0 means DefaultTimeStep
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrapf(err, "decode scenario %s", path)
	}
	return &sc, nil
}

// Save writes the scenario as indented JSON.
func (s *Scenario) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode scenario %s", s.Name)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write scenario %s", path)
}

// Step returns the integration timestep for the scenario.
func (s *Scenario) Step() float64 {
	if s.TimeStep > 0 {
		return s.TimeStep
	}
	return DefaultTimeStep
}
