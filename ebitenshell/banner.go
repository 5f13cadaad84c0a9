package ebitenshell

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/aerobatica"
)

const (
	bannerScale    = 6
	bannerTextW    = 64 // pixels of DebugPrint text before scaling
	bannerTextH    = 16
	bannerDrop     = 1.2 // seconds
	bannerFadeIn   = 0.4
	bannerRestingY = (aerobatica.ScreenHeight - bannerTextH*bannerScale) / 2
)

// banner drops the outcome text in from above the screen and fades its
// backdrop in. Call update once per frame with the frame time in seconds.
type banner struct {
	text  string
	y     float32
	alpha float32
	drop  *gween.Tween
	fade  *gween.Tween
	done  bool

	img *ebiten.Image
}

func newBanner(st aerobatica.State) *banner {
	text := "YOU WIN"
	if st == aerobatica.Lost {
		text = "GAME OVER"
	}
	from := float32(-bannerTextH * bannerScale)
	return &banner{
		text: text,
		y:    from,
		drop: gween.New(from, bannerRestingY, bannerDrop, ease.OutBounce),
		fade: gween.New(0, 0.6, bannerFadeIn, ease.Linear),
	}
}

// update advances both tweens and reports whether they have finished.
func (b *banner) update(dt float32) bool {
	if b.done {
		return true
	}
	y, dropped := b.drop.Update(dt)
	a, faded := b.fade.Update(dt)
	b.y, b.alpha = y, a
	b.done = dropped && faded
	return b.done
}

// shade is the 1x1 backdrop pixel, created on first use.
var shade *ebiten.Image

func (b *banner) draw(screen *ebiten.Image) {
	if b.img == nil {
		b.img = ebiten.NewImage(bannerTextW+8, bannerTextH)
		ebitenutil.DebugPrintAt(b.img, b.text, 4, 0)
	}
	if shade == nil {
		shade = ebiten.NewImage(1, 1)
		shade.Fill(color.Black)
	}
	var sop ebiten.DrawImageOptions
	sop.GeoM.Scale(aerobatica.ScreenWidth, aerobatica.ScreenHeight)
	sop.ColorScale.ScaleAlpha(b.alpha)
	screen.DrawImage(shade, &sop)

	w := float64(b.img.Bounds().Dx()) * bannerScale
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate((aerobatica.ScreenWidth-w)/2, float64(b.y))
	screen.DrawImage(b.img, &op)
}
