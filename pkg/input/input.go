package input

import (
	"fmt"
	"strings"

	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
)

// State records which keys are currently held.
// It is written at the keyboard boundary and read once per frame.
type State struct {
	held map[ebiten.Key]bool
}

// NewState creates an empty input state
func NewState() *State {
	return &State{held: make(map[ebiten.Key]bool)}
}

// SetKeyHeld marks a key as held or released
func (s *State) SetKeyHeld(key ebiten.Key, held bool) {
	if s.held == nil {
		s.held = make(map[ebiten.Key]bool)
	}
	s.held[key] = held
}

// IsHeld reports whether a key is held. Keys never seen read as released.
func (s *State) IsHeld(key ebiten.Key) bool {
	return s.held[key]
}

// Bindings maps drive controls to keys
type Bindings struct {
	Forward   ebiten.Key
	Reverse   ebiten.Key
	TurnLeft  ebiten.Key
	TurnRight ebiten.Key
}

// DefaultBindings returns the WASD layout
func DefaultBindings() Bindings {
	return Bindings{
		Forward:   ebiten.KeyW,
		Reverse:   ebiten.KeyS,
		TurnLeft:  ebiten.KeyA,
		TurnRight: ebiten.KeyD,
	}
}

// Keys returns the bound keys in forward, reverse, left, right order
func (b Bindings) Keys() []ebiten.Key {
	return []ebiten.Key{b.Forward, b.Reverse, b.TurnLeft, b.TurnRight}
}

// Resolve reads the bound keys out of the state
func (b Bindings) Resolve(s *State) vehicle.Controls {
	return vehicle.Controls{
		Forward:   s.IsHeld(b.Forward),
		Reverse:   s.IsHeld(b.Reverse),
		TurnLeft:  s.IsHeld(b.TurnLeft),
		TurnRight: s.IsHeld(b.TurnRight),
	}
}

// ParseKey resolves an ebiten key name such as "W" or "ArrowUp" (case-insensitive)
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// ParseBindings builds bindings from four key names
func ParseBindings(forward, reverse, left, right string) (Bindings, error) {
	var b Bindings
	var err error
	if b.Forward, err = ParseKey(forward); err != nil {
		return b, fmt.Errorf("forward: %w", err)
	}
	if b.Reverse, err = ParseKey(reverse); err != nil {
		return b, fmt.Errorf("reverse: %w", err)
	}
	if b.TurnLeft, err = ParseKey(left); err != nil {
		return b, fmt.Errorf("turn left: %w", err)
	}
	if b.TurnRight, err = ParseKey(right); err != nil {
		return b, fmt.Errorf("turn right: %w", err)
	}
	return b, nil
}
