package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	SkyColor    = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	GroundColor = color.RGBA{0x33, 0x99, 0x33, 0xff}
)

// Kind identifies what a node is in the scene
type Kind int

const (
	KindGround Kind = iota
	KindBuilding
	KindVehicle
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindBuilding:
		return "building"
	case KindVehicle:
		return "vehicle"
	}
	return "unknown"
}

// Triangle is one flat-coloured face in model space
type Triangle struct {
	A, B, C mgl64.Vec3
	Color   color.RGBA
}

// Mesh is a triangle soup shared between nodes
type Mesh struct {
	Triangles []Triangle
}

// Node is a positioned, scaled and yawed mesh instance
type Node struct {
	Name     string
	Kind     Kind
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Yaw      float64
	Mesh     *Mesh
}

// NewNode creates a node at unit scale
func NewNode(name string, kind Kind, mesh *Mesh) *Node {
	return &Node{
		Name:  name,
		Kind:  kind,
		Scale: mgl64.Vec3{1, 1, 1},
		Mesh:  mesh,
	}
}

// SetUniformScale sets all three scale axes
func (n *Node) SetUniformScale(s float64) {
	n.Scale = mgl64.Vec3{s, s, s}
}

// Model returns the model-to-world matrix (translate * yaw * scale)
func (n *Node) Model() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl64.HomogRotate3DY(n.Yaw)
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// Scene is everything the renderer draws
type Scene struct {
	Sky       color.RGBA
	Ground    *Node
	Buildings []*Node
	Vehicle   *Node
}

// New creates a scene with a sky colour and ground
func New(sky color.RGBA, ground *Node) *Scene {
	return &Scene{
		Sky:    sky,
		Ground: ground,
	}
}

// Nodes returns every drawable node
func (s *Scene) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s.Buildings)+2)
	if s.Ground != nil {
		nodes = append(nodes, s.Ground)
	}
	nodes = append(nodes, s.Buildings...)
	if s.Vehicle != nil {
		nodes = append(nodes, s.Vehicle)
	}
	return nodes
}

// ScaleBuildings multiplies the scale of every building loaded so far.
// It returns how many buildings were scaled.
func (s *Scene) ScaleBuildings(factor float64) int {
	for _, b := range s.Buildings {
		b.Scale = b.Scale.Mul(factor)
	}
	return len(s.Buildings)
}
