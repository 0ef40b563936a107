package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var face = text.NewGoXFace(bitmapfont.Face)

// newButtonImage renders a filled box with a 2px border
func newButtonImage(width, height int, bgColor, borderColor color.Color) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(bgColor)

	borderWidth := 2
	// Top and bottom borders
	for i := 0; i < width; i++ {
		for j := 0; j < borderWidth; j++ {
			img.Set(i, j, borderColor)
			img.Set(i, height-1-j, borderColor)
		}
	}
	// Left and right borders
	for i := 0; i < height; i++ {
		for j := 0; j < borderWidth; j++ {
			img.Set(j, i, borderColor)
			img.Set(width-1-j, i, borderColor)
		}
	}
	return img
}

// drawCenteredText draws text centred on (centerX, centerY).
// The bitmap font is 16px tall at scale 1.
func drawCenteredText(screen *ebiten.Image, str string, centerX, centerY, scale float64, clr color.Color) {
	textWidth := text.Advance(str, face) * scale
	textX := centerX - textWidth/2
	textY := centerY - 8*scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws left-aligned text with its top-left corner at (x, y)
func drawTextAt(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
