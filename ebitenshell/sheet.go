package ebitenshell

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // sheet and background decoders
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/aerobatica"
)

// Sheet holds the two sprite-sheet pages: the sheet as authored and its
// horizontal mirror.
type Sheet struct {
	pages [2]*ebiten.Image
}

// Page returns the image for variant v.
func (s *Sheet) Page(v aerobatica.Variant) *ebiten.Image {
	return s.pages[v]
}

// NewSheet uploads normal and derives the mirrored page from it.
func NewSheet(normal image.Image) *Sheet {
	return &Sheet{pages: [2]*ebiten.Image{
		aerobatica.VariantNormal:   ebiten.NewImageFromImage(normal),
		aerobatica.VariantMirrored: ebiten.NewImageFromImage(mirrorImage(normal)),
	}}
}

// LoadSheet decodes a PNG or JPEG sprite sheet. The sheet must be exactly
// aerobatica.SheetWidth by aerobatica.SheetHeight so the region table lines up.
func LoadSheet(path string) (*Sheet, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() != aerobatica.SheetWidth || b.Dy() != aerobatica.SheetHeight {
		return nil, fmt.Errorf("ebitenshell: sprite sheet %s is %dx%d, want %dx%d",
			path, b.Dx(), b.Dy(), aerobatica.SheetWidth, aerobatica.SheetHeight)
	}
	return NewSheet(img), nil
}

// LoadBackground decodes an optional full-screen background image.
func LoadBackground(path string) (*ebiten.Image, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ebitenshell: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ebitenshell: decode %s: %w", path, err)
	}
	return img, nil
}

// PlaceholderSheet paints a flat box at every region of the sprite table so
// the game is playable without art.
func PlaceholderSheet() *Sheet {
	return NewSheet(placeholderImage())
}

var placeholderColors = map[aerobatica.Kind]color.NRGBA{
	aerobatica.KindPlayer:       {R: 80, G: 200, B: 255, A: 255},
	aerobatica.KindVulcanJet:    {R: 255, G: 120, B: 60, A: 255},
	aerobatica.KindMissileJet:   {R: 255, G: 200, B: 40, A: 255},
	aerobatica.KindHelicopter:   {R: 120, G: 220, B: 90, A: 255},
	aerobatica.KindBomber:       {R: 200, G: 60, B: 200, A: 255},
	aerobatica.KindPlayerBullet: {R: 255, G: 255, B: 255, A: 255},
	aerobatica.KindEnemyBullet:  {R: 255, G: 255, B: 255, A: 255},
}

// placeholderImage builds the normal page. Each box carries a darker stripe
// on its right-hand side so the mirrored page visibly faces left.
func placeholderImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, aerobatica.SheetWidth, aerobatica.SheetHeight))
	for k, r := range aerobatica.Regions() {
		c, ok := placeholderColors[k]
		if !ok {
			c = color.NRGBA{R: 255, B: 255, A: 255}
		}
		box := image.Rect(r.Normal.X, r.Normal.Y, r.Normal.Right(), r.Normal.Bottom())
		draw.Draw(img, box, image.NewUniform(c), image.Point{}, draw.Src)

		nose := box
		nose.Min.X = box.Max.X - max(box.Dx()/8, 1)
		dark := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
		draw.Draw(img, nose, image.NewUniform(dark), image.Point{}, draw.Src)
	}
	return img
}

// mirrorImage returns src flipped horizontally.
func mirrorImage(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
