// Package sim drives scenario runs for the wheeled-platform models.
//
// A run materializes the motion profile into a command schedule, then for
// every step applies the terrain envelope, integrates the platform
// kinematics, solves the per-wheel contact forces, and appends the result
// to the robot history. A running simulation can be paused, resumed, and
// stopped from other goroutines.
package sim

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/wmr-sim/internal/core"
	"github.com/elektrokombinacija/wmr-sim/internal/dynamics"
	"github.com/elektrokombinacija/wmr-sim/internal/motion"
)

const (
	// pausePoll is how often a paused run rechecks its gate.
	pausePoll = 100 * time.Millisecond

	// defaultNotifyEvery throttles observer callbacks to wall time.
	defaultNotifyEvery = 100 * time.Millisecond
)

// Config configures a simulation run.
type Config struct {
	// Name labels the run in metrics and logs.
	Name string

	// Robot is the platform to drive. Its state is reset when the run starts.
	Robot *core.Robot

	// Profile produces the command schedule.
	Profile motion.Profile

	// Terrain is the tilt envelope applied over the schedule.
	Terrain motion.Terrain

	// TimeStep in seconds. Zero selects core.DefaultTimeStep.
	TimeStep float64

	// Resistance holds the rolling-loss coefficients. The zero value
	// disables rolling losses.
	Resistance dynamics.Resistance

	// Observer, when set, receives throttled progress updates plus one
	// final update when the run ends.
	Observer Observer

	// NotifyEvery is the observer throttle interval. Zero selects the
	// default of 100ms.
	NotifyEvery time.Duration

	// Realtime stretches the run to wall clock, sleeping one timestep
	// per step.
	Realtime bool

	// Logger may be nil.
	Logger *zap.Logger
}

// Progress is a point-in-time view of a running simulation.
type Progress struct {
	Step   int
	Total  int
	State  core.State
	Forces core.StepForces
}

// Observer receives progress updates during a run.
type Observer func(Progress)

// Simulator executes one scenario run at a time.
type Simulator struct {
	mu sync.Mutex

	cfg Config

	paused  bool
	stopped bool

	metrics Metrics
}

// NewSimulator creates a simulator for the given configuration.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// Pause holds the run at the next step boundary.
func (s *Simulator) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume releases a paused run.
func (s *Simulator) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Stop ends the run at the next step boundary, keeping the partial history.
func (s *Simulator) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// Metrics returns a snapshot of the run metrics.
func (s *Simulator) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// History returns a copy of the run history that is safe to read while
// the simulation is still stepping.
func (s *Simulator) History() *core.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Robot.History.Clone()
}

// Run executes the configured scenario. The robot is reset first, so each
// call produces a fresh history. A canceled context or a Stop call ends
// the run early with StatusStopped; the partial metrics are still
// returned with a nil error.
func (s *Simulator) Run(ctx context.Context) (*Metrics, error) {
	if s.cfg.Robot == nil {
		return nil, errors.New("simulator needs a robot")
	}
	if s.cfg.Profile == nil {
		return nil, errors.New("simulator needs a motion profile")
	}

	dt := s.cfg.TimeStep
	if dt <= 0 {
		dt = core.DefaultTimeStep
	}
	cmds := s.cfg.Profile.Commands(dt)
	if len(cmds) == 0 {
		return nil, errors.Errorf("profile %q produced an empty schedule", s.cfg.Profile.Name())
	}

	logger := s.cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifyEvery := s.cfg.NotifyEvery
	if notifyEvery <= 0 {
		notifyEvery = defaultNotifyEvery
	}

	r := s.cfg.Robot
	s.mu.Lock()
	r.Reset()
	s.paused = false
	s.stopped = false
	s.metrics = newMetrics(s.cfg.Name, r.Variant)
	runID := s.metrics.RunID
	s.mu.Unlock()

	logger.Info("simulation started",
		zap.String("run_id", runID),
		zap.String("variant", r.Variant.String()),
		zap.String("profile", s.cfg.Profile.Name()),
		zap.Int("steps", len(cmds)),
		zap.Float64("time_step_s", dt))

	status := StatusCompleted
	lastNotify := time.Now()
	var lastForces core.StepForces
	for i, cmd := range cmds {
		if s.gate(ctx) {
			status = StatusStopped
			break
		}

		s.mu.Lock()
		pitch, roll := s.cfg.Terrain.At(i, len(cmds))
		r.SetTilt(pitch, roll)
		dynamics.Advance(&r.State, cmd.V, cmd.Omega, dt)
		forces := dynamics.Solve(r, s.cfg.Resistance)
		r.History.Append(r.State, forces)
		s.metrics.observe(r.State, forces, dt)
		state := r.State
		s.mu.Unlock()

		lastForces = forces
		if s.cfg.Observer != nil && time.Since(lastNotify) >= notifyEvery {
			lastNotify = time.Now()
			s.cfg.Observer(Progress{Step: i + 1, Total: len(cmds), State: state, Forces: forces})
		}
		if s.cfg.Realtime {
			time.Sleep(time.Duration(dt * float64(time.Second)))
		}
	}

	s.mu.Lock()
	s.metrics.finish(status, r)
	m := s.metrics
	s.mu.Unlock()

	if s.cfg.Observer != nil {
		s.cfg.Observer(Progress{Step: m.Steps, Total: len(cmds), State: r.State, Forces: lastForces})
	}

	logger.Info("simulation finished",
		zap.String("run_id", runID),
		zap.String("status", m.Status),
		zap.Int("steps", m.Steps),
		zap.Float64("distance_m", m.Distance),
		zap.Float64("energy_j", m.Energy),
		zap.Int("saturated_steps", m.SaturatedSteps))

	return &m, nil
}

// gate blocks while the run is paused and reports whether it should halt.
func (s *Simulator) gate(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return true
		default:
		}

		s.mu.Lock()
		stopped, paused := s.stopped, s.paused
		s.mu.Unlock()

		if stopped {
			return true
		}
		if !paused {
			return false
		}
		time.Sleep(pausePoll)
	}
}
