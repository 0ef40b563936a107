package input

import (
	"testing"

	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_UnknownKeyNotHeld(t *testing.T) {
	s := NewState()
	assert.False(t, s.IsHeld(ebiten.KeyQ))

	var zero State
	assert.False(t, zero.IsHeld(ebiten.KeyW))
	zero.SetKeyHeld(ebiten.KeyW, true)
	assert.True(t, zero.IsHeld(ebiten.KeyW))
}

func TestState_SetKeyHeld(t *testing.T) {
	s := NewState()
	s.SetKeyHeld(ebiten.KeyW, true)
	assert.True(t, s.IsHeld(ebiten.KeyW))

	s.SetKeyHeld(ebiten.KeyW, false)
	assert.False(t, s.IsHeld(ebiten.KeyW))
}

func TestBindings_Resolve(t *testing.T) {
	s := NewState()
	s.SetKeyHeld(ebiten.KeyW, true)
	s.SetKeyHeld(ebiten.KeyA, true)
	s.SetKeyHeld(ebiten.KeyD, true)
	s.SetKeyHeld(ebiten.KeyX, true)

	c := DefaultBindings().Resolve(s)
	assert.Equal(t, vehicle.Controls{Forward: true, TurnLeft: true, TurnRight: true}, c)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("w")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyW, k)

	k, err = ParseKey("ArrowUp")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyArrowUp, k)

	_, err = ParseKey("NotAKey")
	require.Error(t, err)
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings("ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyArrowLeft, b.TurnLeft)

	_, err = ParseBindings("W", "S", "bogus", "D")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turn left")
}

func TestScript_Poll(t *testing.T) {
	sc, err := NewScript([]string{"W", "", "A"})
	require.NoError(t, err)

	s := NewState()
	sc.Poll(s)
	assert.True(t, s.IsHeld(ebiten.KeyW))
	assert.True(t, s.IsHeld(ebiten.KeyA))
	assert.False(t, s.IsHeld(ebiten.KeyS))

	_, err = NewScript([]string{"nope"})
	require.Error(t, err)
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestApplyEdges_OnlyBoundKeys(t *testing.T) {
	s := NewState()
	bound := DefaultBindings().Keys()

	// X and Space are pressed too but are not bound
	applyEdges(s, bound, keySet(ebiten.KeyW, ebiten.KeyX, ebiten.KeySpace), keySet())
	assert.True(t, s.IsHeld(ebiten.KeyW))
	assert.False(t, s.IsHeld(ebiten.KeyX))
	assert.False(t, s.IsHeld(ebiten.KeySpace))
	assert.Len(t, s.held, 1)

	// held keys stay held across ticks with no edges
	applyEdges(s, bound, keySet(), keySet())
	assert.True(t, s.IsHeld(ebiten.KeyW))

	applyEdges(s, bound, keySet(ebiten.KeyD), keySet(ebiten.KeyW, ebiten.KeyX))
	assert.False(t, s.IsHeld(ebiten.KeyW))
	assert.True(t, s.IsHeld(ebiten.KeyD))
	assert.False(t, s.IsHeld(ebiten.KeyX))
	assert.Len(t, s.held, 2)
}
