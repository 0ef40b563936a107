package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonWidth   = 140
	buttonHeight  = 36
	buttonMargin  = 16
	buttonSpacing = 10
)

// Button is a clickable label that rescales buildings by Factor
type Button struct {
	Label  string
	Factor float64
	X, Y   float64
	W, H   float64
}

// Contains reports whether a screen point falls inside the button
func (b Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Panel is the pair of building scale buttons
type Panel struct {
	Buttons []Button

	hover  int
	bg     *ebiten.Image
	bgOver *ebiten.Image
}

// NewPanel creates "Scale up" and "Scale down" buttons for a ratio such as 1.1
func NewPanel(ratio float64) *Panel {
	p := &Panel{
		Buttons: []Button{
			{Label: "Scale up", Factor: ratio, W: buttonWidth, H: buttonHeight},
			{Label: "Scale down", Factor: 1 / ratio, W: buttonWidth, H: buttonHeight},
		},
		hover: -1,
	}
	p.Layout(0, 0)
	return p
}

// Layout pins the buttons to the top-left corner
func (p *Panel) Layout(width, height int) {
	x := float64(buttonMargin)
	for i := range p.Buttons {
		p.Buttons[i].X = x
		p.Buttons[i].Y = buttonMargin
		x += p.Buttons[i].W + buttonSpacing
	}
}

// Click returns the scale factor of the button under (x, y), if any
func (p *Panel) Click(x, y int) (float64, bool) {
	for _, b := range p.Buttons {
		if b.Contains(x, y) {
			return b.Factor, true
		}
	}
	return 0, false
}

// Update tracks the cursor and returns a factor when a button was clicked this tick
func (p *Panel) Update() (float64, bool) {
	x, y := ebiten.CursorPosition()
	p.hover = -1
	for i, b := range p.Buttons {
		if b.Contains(x, y) {
			p.hover = i
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	return p.Click(x, y)
}

// Draw renders the buttons
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.bg == nil {
		border := color.RGBA{80, 80, 100, 255}
		p.bg = newButtonImage(buttonWidth, buttonHeight, color.RGBA{40, 40, 60, 220}, border)
		p.bgOver = newButtonImage(buttonWidth, buttonHeight, color.RGBA{60, 100, 140, 240}, border)
	}

	for i, b := range p.Buttons {
		img, textColor := p.bg, color.Color(color.RGBA{255, 255, 255, 255})
		if i == p.hover {
			img, textColor = p.bgOver, color.RGBA{200, 240, 255, 255}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(img, op)
		drawCenteredText(screen, b.Label, b.X+b.W/2, b.Y+b.H/2, 1, textColor)
	}
}
