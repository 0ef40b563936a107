package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/citydrive/pkg/vehicle"
)

// Chase keeps the camera behind and above a vehicle
type Chase struct {
	Back      float64 // distance behind the vehicle
	Height    float64 // height above the vehicle
	Smoothing float64 // fraction of the remaining distance closed per frame

	FrameRateIndependent bool
	ReferenceHz          float64
}

// DefaultChase returns the stock follow settings
func DefaultChase() Chase {
	return Chase{
		Back:        8,
		Height:      4,
		Smoothing:   0.1,
		ReferenceHz: 60,
	}
}

// Desired is where the camera wants to sit for a given vehicle pose
func (ch Chase) Desired(v vehicle.State) mgl64.Vec3 {
	offset := mgl64.Vec3{
		-math.Sin(v.Yaw) * ch.Back,
		ch.Height,
		-math.Cos(v.Yaw) * ch.Back,
	}
	return v.Position.Add(offset)
}

// Factor is the interpolation weight used for a frame of length dt
func (ch Chase) Factor(dt float64) float64 {
	if !ch.FrameRateIndependent || ch.ReferenceHz <= 0 {
		return ch.Smoothing
	}
	return 1 - math.Pow(1-ch.Smoothing, dt*ch.ReferenceHz)
}

// Advance moves the camera part of the way toward its desired position
// and aims it straight at the vehicle.
func (ch Chase) Advance(v vehicle.State, c *Camera, dt float64) {
	desired := ch.Desired(v)
	t := ch.Factor(dt)
	c.Position = c.Position.Add(desired.Sub(c.Position).Mul(t))
	c.Target = v.Position
}
