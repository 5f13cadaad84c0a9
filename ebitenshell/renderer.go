package ebitenshell

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/aerobatica"
)

// screenRenderer implements aerobatica.Renderer on top of an ebiten screen.
// Sprites are drawn 1:1; ebiten clips anything off the screen.
type screenRenderer struct {
	screen *ebiten.Image
	sheet  *Sheet
	op     ebiten.DrawImageOptions
	drawn  int
}

func (r *screenRenderer) DrawSprite(v aerobatica.Variant, src aerobatica.Rect, at aerobatica.Point) {
	if !(aerobatica.Rect{X: at.X, Y: at.Y, W: src.W, H: src.H}).Visible() {
		return
	}
	sub := r.sheet.Page(v).SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(float64(at.X), float64(at.Y))
	r.screen.DrawImage(sub, &r.op)
	r.drawn++
}
