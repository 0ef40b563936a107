package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source feeds key events into a State. It runs on the update goroutine,
// before the frame reads the state.
type Source interface {
	Poll(s *State)
}

// Keyboard forwards press and release events for the bound keys only
type Keyboard struct {
	keys []ebiten.Key
}

// NewKeyboard creates a keyboard source watching the given bindings
func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{keys: b.Keys()}
}

// Poll applies this tick's key-down and key-up events
func (k *Keyboard) Poll(s *State) {
	applyEdges(s, k.keys, inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
}

// applyEdges copies press and release edges for keys into s. Keys not
// listed never reach the state.
func applyEdges(s *State, keys []ebiten.Key, pressed, released func(ebiten.Key) bool) {
	for _, key := range keys {
		if pressed(key) {
			s.SetKeyHeld(key, true)
		}
		if released(key) {
			s.SetKeyHeld(key, false)
		}
	}
}

// Script holds a fixed set of keys down, for headless runs
type Script struct {
	Held []ebiten.Key
}

// NewScript parses key names into a script
func NewScript(names []string) (*Script, error) {
	sc := &Script{}
	for _, n := range names {
		if n == "" {
			continue
		}
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		sc.Held = append(sc.Held, k)
	}
	return sc, nil
}

// Poll marks every scripted key as held
func (sc *Script) Poll(s *State) {
	for _, k := range sc.Held {
		s.SetKeyHeld(k, true)
	}
}
