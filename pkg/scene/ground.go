package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// NewGround builds a flat square in the XZ plane split into tiles*tiles
// quads, so the renderer can drop the parts behind the camera.
func NewGround(size float64, tiles int, c color.RGBA) *Node {
	if tiles < 1 {
		tiles = 1
	}
	step := size / float64(tiles)
	half := size / 2

	mesh := &Mesh{Triangles: make([]Triangle, 0, tiles*tiles*2)}
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			x0 := -half + float64(i)*step
			z0 := -half + float64(j)*step
			x1, z1 := x0+step, z0+step

			a := mgl64.Vec3{x0, 0, z0}
			b := mgl64.Vec3{x1, 0, z0}
			cc := mgl64.Vec3{x1, 0, z1}
			d := mgl64.Vec3{x0, 0, z1}
			mesh.Triangles = append(mesh.Triangles,
				Triangle{A: a, B: d, C: cc, Color: c},
				Triangle{A: a, B: cc, C: b, Color: c},
			)
		}
	}
	return NewNode("ground", KindGround, mesh)
}
