package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Progress counts finished model loads, failed ones included
type Progress struct {
	Done  int
	Total int
}

// Fraction is how far loading has got, in [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	f := float64(p.Done) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Complete reports whether every load has finished
func (p Progress) Complete() bool {
	return p.Done >= p.Total
}

// Label is the text shown over the bar
func (p Progress) Label() string {
	return fmt.Sprintf("Loading models %d/%d", p.Done, p.Total)
}

const (
	progressWidth  = 300
	progressHeight = 14
)

var progressFrame, progressFill *ebiten.Image

// DrawProgress draws a loading bar along the bottom centre of the screen.
// Nothing is drawn once loading is complete.
func DrawProgress(screen *ebiten.Image, p Progress) {
	if p.Complete() {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	x := float64(width)/2 - progressWidth/2
	y := float64(height) - 40

	if progressFrame == nil {
		progressFrame = newButtonImage(progressWidth, progressHeight, color.RGBA{40, 40, 60, 220}, color.RGBA{80, 80, 100, 255})
		progressFill = ebiten.NewImage(1, 1)
		progressFill.Fill(color.RGBA{255, 200, 50, 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(progressFrame, op)

	if fill := (progressWidth - 4) * p.Fraction(); fill > 0 {
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fill, progressHeight-4)
		op.GeoM.Translate(x+2, y+2)
		screen.DrawImage(progressFill, op)
	}

	drawCenteredText(screen, p.Label(), float64(width)/2, y-14, 1, color.RGBA{255, 255, 255, 255})
}
