package termshell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/aerobatica"
)

var kindStyles = map[aerobatica.Kind]tcell.Style{
	aerobatica.KindPlayer:       tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	aerobatica.KindVulcanJet:    tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
	aerobatica.KindMissileJet:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	aerobatica.KindHelicopter:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	aerobatica.KindBomber:       tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
	aerobatica.KindPlayerBullet: tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

// regionKinds recovers the kind from a source rectangle. The two bullets
// share a region and are styled alike.
var regionKinds = func() map[aerobatica.Rect]aerobatica.Kind {
	m := make(map[aerobatica.Rect]aerobatica.Kind)
	for k, r := range aerobatica.Regions() {
		if k == aerobatica.KindEnemyBullet {
			continue
		}
		m[r.Normal] = k
		m[r.Mirrored] = k
	}
	return m
}()

// canvas implements aerobatica.Renderer by scaling the playfield onto the
// terminal grid above a one-row status line.
type canvas struct {
	screen     tcell.Screen
	cols, rows int
}

func newCanvas(screen tcell.Screen) *canvas {
	w, h := screen.Size()
	return &canvas{screen: screen, cols: w, rows: max(h-1, 1)}
}

// cell maps a world x or y to a grid column or row.
func cell(v, world, cells int) int {
	return v * cells / world
}

func (c *canvas) DrawSprite(v aerobatica.Variant, src aerobatica.Rect, at aerobatica.Point) {
	r := aerobatica.Rect{X: at.X, Y: at.Y, W: src.W, H: src.H}
	if !r.Visible() {
		return
	}
	glyph := '>'
	if v == aerobatica.VariantMirrored {
		glyph = '<'
	}
	style := kindStyles[regionKinds[src]]

	x0 := max(cell(r.X, aerobatica.ScreenWidth, c.cols), 0)
	y0 := max(cell(r.Y, aerobatica.ScreenHeight, c.rows), 0)
	x1 := min(cell(r.Right()-1, aerobatica.ScreenWidth, c.cols), c.cols-1)
	y1 := min(cell(r.Bottom()-1, aerobatica.ScreenHeight, c.rows), c.rows-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// status writes the bottom line.
func (c *canvas) status(s *aerobatica.Session) {
	st := s.Stats()
	line := fmt.Sprintf(" %s  kills %d  shots %d  tick %d   arrows/wasd move  space fire  q quit",
		s.State(), st.Kills, st.Shots, st.Ticks)
	c.text(0, c.rows, line, tcell.StyleDefault.Reverse(true))
}

// banner centres msg on the playfield.
func (c *canvas) banner(msg string) {
	x := max((c.cols-len(msg))/2, 0)
	c.text(x, c.rows/2, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true).Reverse(true))
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		if x+i >= c.cols {
			return
		}
		c.screen.SetContent(x+i, y, r, nil, style)
	}
}
