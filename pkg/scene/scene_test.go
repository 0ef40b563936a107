package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func building(scale float64) *Node {
	n := NewNode("building-a", KindBuilding, &Mesh{})
	n.SetUniformScale(scale)
	return n
}

func TestScaleBuildings_UpThenDown(t *testing.T) {
	s := New(color.RGBA{}, nil)
	for _, sc := range []float64{1.5, 2.25, 2.9} {
		s.Apply(Spawn{Node: building(sc)})
	}

	assert.Equal(t, 3, s.ScaleBuildings(1.1))
	assert.InDelta(t, 1.5*1.1, s.Buildings[0].Scale.X(), 1e-12)
	assert.InDelta(t, 2.25*1.1, s.Buildings[1].Scale.Y(), 1e-12)
	assert.InDelta(t, 2.9*1.1, s.Buildings[2].Scale.Z(), 1e-12)

	s.ScaleBuildings(1 / 1.1)
	assert.InDelta(t, 1.5, s.Buildings[0].Scale.X(), 1e-12)
	assert.InDelta(t, 2.25, s.Buildings[1].Scale.X(), 1e-12)
	assert.InDelta(t, 2.9, s.Buildings[2].Scale.X(), 1e-12)
}

func TestScaleBuildings_LaterLoadsUnaffected(t *testing.T) {
	s := New(color.RGBA{}, nil)
	assert.Equal(t, 0, s.ScaleBuildings(1.1))

	s.Apply(Spawn{Node: building(2)})
	s.ScaleBuildings(1.1)
	s.Apply(Spawn{Node: building(2)})

	assert.InDelta(t, 2.2, s.Buildings[0].Scale.X(), 1e-12)
	assert.Equal(t, 2.0, s.Buildings[1].Scale.X())
}

func TestApply_FirstVehicleWins(t *testing.T) {
	s := New(color.RGBA{}, nil)
	first := NewNode("ambulance", KindVehicle, nil)
	second := NewNode("ambulance", KindVehicle, nil)

	assert.True(t, s.Apply(Spawn{Node: first}))
	assert.False(t, s.Apply(Spawn{Node: second}))
	assert.Same(t, first, s.Vehicle)
	assert.False(t, s.Apply(Spawn{}))
}

func TestDrain_NonBlocking(t *testing.T) {
	s := New(color.RGBA{}, nil)
	ch := make(chan Spawn, 4)

	assert.Empty(t, s.Drain(ch))

	ch <- Spawn{Node: building(1)}
	ch <- Spawn{Node: NewNode("ambulance", KindVehicle, nil)}
	added := s.Drain(ch)
	require.Len(t, added, 2)
	assert.Len(t, s.Buildings, 1)
	assert.NotNil(t, s.Vehicle)

	close(ch)
	assert.Empty(t, s.Drain(ch))
}

func TestNode_Model(t *testing.T) {
	n := NewNode("ambulance", KindVehicle, nil)
	n.Position = mgl64.Vec3{0, 0, 5}
	n.SetUniformScale(0.4)
	n.Yaw = 0

	p := n.Model().Mul4x1(mgl64.Vec4{0, 0, 1, 1}).Vec3()
	assert.InDelta(t, 0, p.Sub(mgl64.Vec3{0, 0, 5.4}).Len(), 1e-12)

	// a quarter turn maps local +z onto +x
	n.Yaw = mgl64.DegToRad(90)
	p = n.Model().Mul4x1(mgl64.Vec4{0, 0, 1, 1}).Vec3()
	assert.InDelta(t, 0, p.Sub(mgl64.Vec3{0.4, 0, 5}).Len(), 1e-12)
}

func TestNewGround(t *testing.T) {
	g := NewGround(200, 10, color.RGBA{0x33, 0x99, 0x33, 0xff})
	assert.Equal(t, KindGround, g.Kind)
	assert.Len(t, g.Mesh.Triangles, 200)

	for _, tri := range g.Mesh.Triangles {
		n := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
		assert.Greater(t, n.Y(), 0.0, "ground faces up")
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "building", KindBuilding.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
