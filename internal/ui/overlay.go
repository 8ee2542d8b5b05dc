//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the color legend and key bindings on top of the slab view.
// H toggles it.
type Overlay struct {
	palette []color.RGBA
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay that explains the given palette.
func NewOverlay(palette []color.RGBA) *Overlay {
	o := &Overlay{palette: palette, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the legend box in the top-left corner of the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	rows := legendRows(o.palette)
	height := overlayPadding*2 + (len(rows)+len(keyHelp))*overlayLine
	o.fillRect(screen, overlayMargin, overlayMargin, overlayWidth, height, color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	x := overlayMargin + overlayPadding
	y := overlayMargin + overlayPadding
	for _, row := range rows {
		o.fillRect(screen, x, y+2, overlaySwatch, overlaySwatch, row.color)
		text.Draw(screen, row.label, face, x+overlaySwatch+6, y+overlaySwatch, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		y += overlayLine
	}
	for _, line := range keyHelp {
		text.Draw(screen, line, face, x, y+overlaySwatch, color.RGBA{R: 170, G: 170, B: 180, A: 255})
		y += overlayLine
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}

const (
	overlayMargin  = 8
	overlayPadding = 8
	overlayWidth   = 170
	overlayLine    = 16
	overlaySwatch  = 11
)
