package vehicle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const frame = 1.0 / 60

func newTestModel() *Model {
	return NewModel(State{}, DefaultParams())
}

func TestAdvance_ForwardAcceleratesToMax(t *testing.T) {
	m := newTestModel()
	fwd := Controls{Forward: true}

	z := 0.0
	prev := 0.0
	for i := 1; i <= 5; i++ {
		s := m.Advance(fwd, frame)
		assert.Greater(t, s.Speed, prev)
		assert.InDelta(t, 0.02*float64(i), s.Speed, 1e-12)
		z += s.Speed
		assert.InDelta(t, z, s.Position.Z(), 1e-12)
		assert.Equal(t, 0.0, s.Position.X())
		assert.Equal(t, 0.0, s.Position.Y())
		prev = s.Speed
	}
	assert.InDelta(t, 0.1, m.State.Speed, 1e-12)

	for i := 0; i < 10; i++ {
		s := m.Advance(fwd, frame)
		assert.Equal(t, 0.1, s.Speed)
	}
}

func TestAdvance_ReverseCappedAtHalf(t *testing.T) {
	m := newTestModel()
	rev := Controls{Reverse: true}

	prev := 0.0
	for i := 0; i < 2; i++ {
		s := m.Advance(rev, frame)
		assert.Less(t, s.Speed, prev)
		prev = s.Speed
	}
	for i := 0; i < 10; i++ {
		m.Advance(rev, frame)
	}
	assert.Equal(t, -0.05, m.State.Speed)
}

func TestAdvance_ForwardBeatsReverse(t *testing.T) {
	m := newTestModel()
	s := m.Advance(Controls{Forward: true, Reverse: true}, frame)
	assert.InDelta(t, 0.02, s.Speed, 1e-12)
}

func TestAdvance_CoastDecaysGeometrically(t *testing.T) {
	for _, start := range []float64{0.1, -0.05} {
		m := NewModel(State{Speed: start}, DefaultParams())
		prev := start
		for i := 0; i < 50; i++ {
			s := m.Advance(Controls{}, frame)
			assert.InDelta(t, prev*0.95, s.Speed, 1e-15)
			assert.Equal(t, math.Signbit(start), math.Signbit(s.Speed))
			prev = s.Speed
		}
	}
}

func TestAdvance_ZeroSpeedKeepsPosition(t *testing.T) {
	pos := mgl64.Vec3{3, 0, -7}
	m := NewModel(State{Position: pos}, DefaultParams())

	s := m.Advance(Controls{TurnLeft: true}, frame)
	assert.Equal(t, pos, s.Position)
	assert.InDelta(t, 0.05, s.Yaw, 1e-12)
}

func TestAdvance_BothTurnKeysCancel(t *testing.T) {
	m := NewModel(State{Yaw: 1}, DefaultParams())
	s := m.Advance(Controls{TurnLeft: true, TurnRight: true}, frame)
	assert.InDelta(t, 1.0, s.Yaw, 1e-12)
}

func TestAdvance_MovesAlongHeading(t *testing.T) {
	m := NewModel(StartState(), DefaultParams())
	s := m.Advance(Controls{Forward: true}, frame)
	// yaw pi points down -z
	assert.InDelta(t, 5-0.02, s.Position.Z(), 1e-12)
	assert.InDelta(t, 0, s.Position.X(), 1e-12)
	assert.InDelta(t, 0, s.Forward().Sub(mgl64.Vec3{0, 0, -1}).Len(), 1e-12)
}

func TestAdvance_SpeedStaysInRange(t *testing.T) {
	p := DefaultParams()
	m := NewModel(State{Speed: 5}, p)
	s := m.Advance(Controls{}, frame)
	assert.LessOrEqual(t, s.Speed, p.MaxSpeed)

	m = NewModel(State{Speed: -5}, p)
	s = m.Advance(Controls{}, frame)
	assert.GreaterOrEqual(t, s.Speed, -p.MaxSpeed/2)
}

func TestAdvance_FrameRateIndependent(t *testing.T) {
	p := DefaultParams()
	p.FrameRateIndependent = true

	// one reference frame matches the per-frame model
	a := NewModel(State{Speed: 0.08}, DefaultParams())
	b := NewModel(State{Speed: 0.08}, p)
	sa := a.Advance(Controls{TurnLeft: true}, frame)
	sb := b.Advance(Controls{TurnLeft: true}, frame)
	assert.InDelta(t, sa.Speed, sb.Speed, 1e-12)
	assert.InDelta(t, sa.Yaw, sb.Yaw, 1e-12)

	// two half frames decay as much as one full frame
	c := NewModel(State{Speed: 0.08}, p)
	c.Advance(Controls{}, frame/2)
	sc := c.Advance(Controls{}, frame/2)
	assert.InDelta(t, 0.08*0.95, sc.Speed, 1e-12)

	// the per-frame model ignores dt
	d := NewModel(State{Speed: 0.08}, DefaultParams())
	sd := d.Advance(Controls{}, 1)
	assert.InDelta(t, 0.08*0.95, sd.Speed, 1e-15)
}
