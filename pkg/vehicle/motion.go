package vehicle

import (
	"math"
)

// Controls is the per-frame view of the four drive controls
type Controls struct {
	Forward   bool
	Reverse   bool
	TurnLeft  bool
	TurnRight bool
}

// Model advances a vehicle from held controls
type Model struct {
	State  State
	Params Params
}

// NewModel creates a model at the given state
func NewModel(state State, params Params) *Model {
	return &Model{State: state, Params: params}
}

// Advance applies one frame of input and returns the new state.
// Forward beats reverse; both turn keys may apply in the same frame.
func (m *Model) Advance(c Controls, dt float64) State {
	p := m.Params
	s := &m.State

	steps := 1.0
	if p.FrameRateIndependent && p.ReferenceHz > 0 {
		steps = dt * p.ReferenceHz
	}

	switch {
	case c.Forward:
		s.Speed = math.Min(s.Speed+p.Acceleration*steps, p.MaxSpeed)
	case c.Reverse:
		s.Speed = math.Max(s.Speed-p.Acceleration*steps, -p.MaxSpeed/2)
	default:
		s.Speed *= math.Pow(p.Damping, steps)
	}
	s.Speed = clamp(s.Speed, -p.MaxSpeed/2, p.MaxSpeed)

	if c.TurnLeft {
		s.Yaw += p.TurnSpeed * steps
	}
	if c.TurnRight {
		s.Yaw -= p.TurnSpeed * steps
	}

	s.Position[0] += math.Sin(s.Yaw) * s.Speed * steps
	s.Position[2] += math.Cos(s.Yaw) * s.Speed * steps

	return *s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
