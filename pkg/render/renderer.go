package render

import (
	"image"
	"image/color"

	"github.com/golangdaddy/citydrive/pkg/camera"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxVertices keeps a draw call addressable with uint16 indices
const maxVertices = 65535 - 3

// Renderer draws a scene with a painter's-algorithm software pipeline
// on top of ebiten.DrawTriangles
type Renderer struct {
	batch    Batch
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer with the given light
func NewRenderer(light Light) *Renderer {
	return &Renderer{batch: Batch{Light: light}}
}

// Faces returns how many faces the last frame drew
func (r *Renderer) Faces() int {
	return r.batch.Len()
}

// Render clears to the sky colour and draws every node from the camera
func (r *Renderer) Render(screen *ebiten.Image, s *scene.Scene, cam *camera.Camera) {
	screen.Fill(s.Sky)

	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := View{
		ViewProj: cam.ViewProjection(),
		Eye:      cam.Position,
		Width:    w,
		Height:   h,
		Near:     cam.Near,
	}

	r.batch.Reset()
	for _, n := range s.Nodes() {
		r.batch.AddNode(n, view)
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, f := range r.batch.Sorted() {
		if len(r.vertices)+3 > maxVertices {
			r.flush(screen)
		}
		cr := float32(f.Color.R) / 255
		cg := float32(f.Color.G) / 255
		cb := float32(f.Color.B) / 255
		ca := float32(f.Color.A) / 255
		base := uint16(len(r.vertices))
		for _, p := range f.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p.X()),
				DstY:   float32(p.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush(screen)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
