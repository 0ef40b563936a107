package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the vehicle pose and speed, mutated once per frame
type State struct {
	Position mgl64.Vec3 `json:"position"`
	Yaw      float64    `json:"yaw"`   // radians about the vertical axis
	Speed    float64    `json:"speed"` // world units per frame
}

// Forward returns the unit heading in the horizontal plane
func (s State) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(s.Yaw), 0, math.Cos(s.Yaw)}
}

// Params tune the motion model. All rates are per frame.
type Params struct {
	MaxSpeed     float64
	Acceleration float64
	TurnSpeed    float64
	Damping      float64 // speed multiplier on frames with no drive key held

	// When FrameRateIndependent is set, per-frame rates are rescaled by
	// dt*ReferenceHz so motion no longer depends on the display refresh rate.
	FrameRateIndependent bool
	ReferenceHz          float64
}

// DefaultParams returns the stock handling
func DefaultParams() Params {
	return Params{
		MaxSpeed:     0.1,
		Acceleration: 0.02,
		TurnSpeed:    0.05,
		Damping:      0.95,
		ReferenceHz:  60,
	}
}

// StartState is where the vehicle sits when it spawns
func StartState() State {
	return State{
		Position: mgl64.Vec3{0, 0, 5},
		Yaw:      math.Pi,
	}
}
