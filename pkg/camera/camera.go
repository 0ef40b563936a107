package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera with a look-at target
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FovY     float64 // degrees
	Near     float64
	Far      float64
	Aspect   float64

	width, height int
}

// New creates the initial camera, looking down -Z from behind the start line
func New(width, height int) *Camera {
	c := &Camera{
		Position: mgl64.Vec3{0, 6, 20},
		Target:   mgl64.Vec3{0, 6, 19},
		FovY:     75,
		Near:     0.1,
		Far:      1000,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport. It reports whether the size changed.
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == c.width && height == c.height {
		return false
	}
	c.width, c.height = width, height
	c.Aspect = float64(width) / float64(height)
	return true
}

// Viewport returns the last size passed to Resize
func (c *Camera) Viewport() (int, int) {
	return c.width, c.height
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the current aspect
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
