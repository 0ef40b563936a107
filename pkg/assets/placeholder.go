package assets

import (
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Box describes a placeholder model: a box standing on y=0 with a
// differently coloured top face
type Box struct {
	Name   string
	Width  float64
	Height float64
	Depth  float64
	Body   color.RGBA
	Top    color.RGBA
}

// PlaceholderBoxes are stand-ins for the stock building and vehicle models
var PlaceholderBoxes = []Box{
	{Name: "building-a", Width: 1, Height: 1.6, Depth: 1, Body: color.RGBA{190, 170, 150, 255}, Top: color.RGBA{90, 90, 100, 255}},
	{Name: "building-b", Width: 1.2, Height: 2.4, Depth: 1, Body: color.RGBA{160, 180, 200, 255}, Top: color.RGBA{70, 70, 80, 255}},
	{Name: "building-c", Width: 0.9, Height: 1.2, Depth: 1.3, Body: color.RGBA{210, 200, 170, 255}, Top: color.RGBA{120, 60, 50, 255}},
	{Name: "building-f", Width: 1.1, Height: 3.2, Depth: 1.1, Body: color.RGBA{150, 150, 160, 255}, Top: color.RGBA{60, 60, 60, 255}},
	{Name: "ambulance", Width: 2, Height: 2, Depth: 4.5, Body: color.RGBA{240, 240, 240, 255}, Top: color.RGBA{220, 30, 30, 255}},
}

// WriteBox writes the .mtl and .obj pair for a box into root
func WriteBox(fsys afero.Fs, root string, b Box) error {
	if err := fsys.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}
	mtlPath := path.Join(root, b.Name+".mtl")
	if err := afero.WriteFile(fsys, mtlPath, []byte(boxMTL(b)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", mtlPath, err)
	}
	objPath := path.Join(root, b.Name+".obj")
	if err := afero.WriteFile(fsys, objPath, []byte(boxOBJ(b)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", objPath, err)
	}
	return nil
}

func boxMTL(b Box) string {
	var sb strings.Builder
	writeMaterial(&sb, "body", b.Body)
	writeMaterial(&sb, "top", b.Top)
	return sb.String()
}

func writeMaterial(sb *strings.Builder, name string, c color.RGBA) {
	fmt.Fprintf(sb, "newmtl %s\n", name)
	fmt.Fprintf(sb, "Ka %.4f %.4f %.4f\n", float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	fmt.Fprintf(sb, "Kd %.4f %.4f %.4f\n", float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	sb.WriteString("Ks 0 0 0\nd 1\nillum 1\n\n")
}

// boxOBJ emits a box centred on x/z. Faces wind counter-clockwise seen
// from outside.
func boxOBJ(b Box) string {
	x0, x1 := -b.Width/2, b.Width/2
	z0, z1 := -b.Depth/2, b.Depth/2
	h := b.Height

	var sb strings.Builder
	fmt.Fprintf(&sb, "mtllib %s.mtl\no %s\n", b.Name, b.Name)
	for _, v := range [][3]float64{
		{x0, 0, z0}, {x1, 0, z0}, {x1, 0, z1}, {x0, 0, z1},
		{x0, h, z0}, {x1, h, z0}, {x1, h, z1}, {x0, h, z1},
	} {
		fmt.Fprintf(&sb, "v %.4f %.4f %.4f\n", v[0], v[1], v[2])
	}
	sb.WriteString("usemtl body\n")
	sb.WriteString("f 1 2 3 4\n")
	sb.WriteString("f 1 5 6 2\n")
	sb.WriteString("f 4 3 7 8\n")
	sb.WriteString("f 1 4 8 5\n")
	sb.WriteString("f 2 6 7 3\n")
	sb.WriteString("usemtl top\n")
	sb.WriteString("f 5 8 7 6\n")
	return sb.String()
}
