// Package motion builds the open-loop setpoint and terrain schedules a
// simulation run follows. Schedules are fully materialized up front so a
// run is reproducible from its scenario alone.
package motion

import (
	"github.com/elektrokombinacija/wmr-sim/internal/core"
)

// Command is one velocity setpoint held for a single timestep.
type Command struct {
	V     float64 // linear setpoint, m/s
	Omega float64 // angular setpoint, rad/s
}

// Profile yields the complete command schedule for a run at a given timestep.
type Profile interface {
	Name() string
	Commands(dt float64) []Command
}

// RampProfile scales both setpoints linearly up to the targets, holds them,
// then scales back down. Phase durations snap to whole timesteps.
type RampProfile struct {
	TargetV     float64
	TargetOmega float64
	AccelTime   float64
	ConstTime   float64
	DecelTime   float64
}

func (p RampProfile) Name() string { return core.ModeRamp }

// Commands emits the three phases back to back. The ramp-up starts from a
// zero factor and the ramp-down ends one step short of zero, so a run
// always finishes with a nonzero setpoint.
func (p RampProfile) Commands(dt float64) []Command {
	up := steps(p.AccelTime, dt)
	hold := steps(p.ConstTime, dt)
	down := steps(p.DecelTime, dt)

	cmds := make([]Command, 0, up+hold+down)
	for i := 0; i < up; i++ {
		f := float64(i) / float64(up)
		cmds = append(cmds, Command{V: p.TargetV * f, Omega: p.TargetOmega * f})
	}
	for i := 0; i < hold; i++ {
		cmds = append(cmds, Command{V: p.TargetV, Omega: p.TargetOmega})
	}
	for i := 0; i < down; i++ {
		f := 1 - float64(i)/float64(down)
		cmds = append(cmds, Command{V: p.TargetV * f, Omega: p.TargetOmega * f})
	}
	return cmds
}

// FixedProfile holds constant setpoints for the whole run.
type FixedProfile struct {
	V        float64
	Omega    float64
	Duration float64
}

func (p FixedProfile) Name() string { return core.ModeFixed }

func (p FixedProfile) Commands(dt float64) []Command {
	cmds := make([]Command, steps(p.Duration, dt))
	for i := range cmds {
		cmds[i] = Command{V: p.V, Omega: p.Omega}
	}
	return cmds
}

// steps converts a phase duration to whole timesteps, truncating the
// remainder.
func steps(duration, dt float64) int {
	if dt <= 0 {
		return 0
	}
	return int(duration / dt)
}
