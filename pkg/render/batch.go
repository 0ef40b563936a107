package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/citydrive/pkg/scene"
)

// Light is an ambient term plus one directional light
type Light struct {
	Ambient     float64
	Directional float64
	Direction   mgl64.Vec3 // points from the surface toward the light
}

// DefaultLight matches a bright midday sun
func DefaultLight() Light {
	return Light{
		Ambient:     0.7,
		Directional: 1,
		Direction:   mgl64.Vec3{10, 20, 10}.Normalize(),
	}
}

// Shade lights a base colour for a face with the given world normal
func Shade(c color.RGBA, normal mgl64.Vec3, l Light) color.RGBA {
	intensity := l.Ambient
	if n := normal.Len(); n > 0 {
		intensity += l.Directional * math.Max(0, normal.Mul(1/n).Dot(l.Direction))
	}
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*intensity+0.5))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// Project maps a world point to screen pixels. depth is the clip-space w,
// i.e. distance along the view axis. ok is false for points behind near.
func Project(viewProj mgl64.Mat4, p mgl64.Vec3, width, height int, near float64) (screen mgl64.Vec2, depth float64, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= near {
		return mgl64.Vec2{}, w, false
	}
	return toScreen(clip, width, height), w, true
}

func toScreen(clip mgl64.Vec4, width, height int) mgl64.Vec2 {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * float64(width),
		(1 - ndcY) / 2 * float64(height),
	}
}

// clipNear cuts a clip-space polygon against the plane w = near
// (Sutherland-Hodgman) and appends the kept part to out. Winding is
// preserved. A triangle comes back with 0, 3 or 4 vertices.
func clipNear(in []mgl64.Vec4, near float64, out []mgl64.Vec4) []mgl64.Vec4 {
	out = out[:0]
	for i, cur := range in {
		prev := in[(i+len(in)-1)%len(in)]
		curIn, prevIn := cur.W() >= near, prev.W() >= near
		if curIn != prevIn {
			t := (near - prev.W()) / (cur.W() - prev.W())
			out = append(out, prev.Add(cur.Sub(prev).Mul(t)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// Face is a projected, shaded triangle ready to draw
type Face struct {
	Points [3]mgl64.Vec2
	Depth  float64
	Color  color.RGBA
}

// Batch collects faces for one frame
type Batch struct {
	Light Light
	faces []Face

	poly, clipped []mgl64.Vec4
}

// Reset empties the batch keeping its storage
func (b *Batch) Reset() {
	b.faces = b.faces[:0]
}

// Len returns the number of queued faces
func (b *Batch) Len() int {
	return len(b.faces)
}

// View is the camera data needed to project faces
type View struct {
	ViewProj mgl64.Mat4
	Eye      mgl64.Vec3
	Width    int
	Height   int
	Near     float64
}

// AddNode projects every visible triangle of a node. Ground is drawn from
// both sides, other meshes only from the front. Triangles crossing the
// near plane are cut to the part in front of it.
func (b *Batch) AddNode(n *scene.Node, v View) {
	if n == nil || n.Mesh == nil {
		return
	}
	model := n.Model()
	doubleSided := n.Kind == scene.KindGround

	for _, tri := range n.Mesh.Triangles {
		a := model.Mul4x1(tri.A.Vec4(1)).Vec3()
		bb := model.Mul4x1(tri.B.Vec4(1)).Vec3()
		c := model.Mul4x1(tri.C.Vec4(1)).Vec3()

		normal := bb.Sub(a).Cross(c.Sub(a))
		if normal.Dot(v.Eye.Sub(a)) <= 0 {
			if !doubleSided {
				continue
			}
			normal = normal.Mul(-1)
		}

		b.poly = append(b.poly[:0],
			v.ViewProj.Mul4x1(a.Vec4(1)),
			v.ViewProj.Mul4x1(bb.Vec4(1)),
			v.ViewProj.Mul4x1(c.Vec4(1)),
		)
		b.clipped = clipNear(b.poly, v.Near, b.clipped)
		if len(b.clipped) < 3 {
			continue
		}

		shade := Shade(tri.Color, normal, b.Light)
		first := b.clipped[0]
		p0 := toScreen(first, v.Width, v.Height)
		for i := 1; i+1 < len(b.clipped); i++ {
			q1, q2 := b.clipped[i], b.clipped[i+1]
			p1 := toScreen(q1, v.Width, v.Height)
			p2 := toScreen(q2, v.Width, v.Height)
			if offscreen(p0, p1, p2, v.Width, v.Height) {
				continue
			}
			b.faces = append(b.faces, Face{
				Points: [3]mgl64.Vec2{p0, p1, p2},
				Depth:  (first.W() + q1.W() + q2.W()) / 3,
				Color:  shade,
			})
		}
	}
}

// Sorted returns the faces far to near, for painter's-order drawing
func (b *Batch) Sorted() []Face {
	sort.SliceStable(b.faces, func(i, j int) bool {
		return b.faces[i].Depth > b.faces[j].Depth
	})
	return b.faces
}

func offscreen(a, b, c mgl64.Vec2, width, height int) bool {
	w, h := float64(width), float64(height)
	switch {
	case a.X() < 0 && b.X() < 0 && c.X() < 0:
		return true
	case a.X() > w && b.X() > w && c.X() > w:
		return true
	case a.Y() < 0 && b.Y() < 0 && c.Y() < 0:
		return true
	case a.Y() > h && b.Y() > h && c.Y() > h:
		return true
	}
	return false
}
