package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// UnitsPerSecond converts a per-frame speed at 60 ticks/s for display
const UnitsPerSecond = 60.0

// Status is what the HUD shows each frame
type Status struct {
	Speed        float64
	Buildings    int
	VehicleReady bool
	Hint         string // shown once the vehicle is ready
}

// Lines formats the HUD text
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("SPEED %5.1f", s.Speed*UnitsPerSecond),
		fmt.Sprintf("BUILDINGS %d", s.Buildings),
	}
	if !s.VehicleReady {
		lines = append(lines, "Loading vehicle...")
	} else if s.Hint != "" {
		lines = append(lines, s.Hint)
	}
	return lines
}

// DrawHUD draws the status lines in the bottom-left corner
func DrawHUD(screen *ebiten.Image, s Status) {
	height := screen.Bounds().Dy()
	lines := s.Lines()
	y := float64(height) - float64(len(lines))*20 - 12
	for i, line := range lines {
		clr := color.RGBA{255, 255, 255, 255}
		if i == 0 {
			clr = speedColor(s.Speed * UnitsPerSecond)
		}
		drawTextAt(screen, line, 16, y+float64(i)*20, 1, clr)
	}
}

// speedColor goes green, yellow, red as the car speeds up
func speedColor(speed float64) color.RGBA {
	switch {
	case speed < 3:
		return color.RGBA{100, 255, 100, 255}
	case speed < 5:
		return color.RGBA{255, 255, 100, 255}
	default:
		return color.RGBA{255, 100, 100, 255}
	}
}
