package ebitenshell

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Scale multiplies the 1000x700 playfield to get the window size.
	Scale float64
	// TPS is the ebiten update rate. Game state still advances on the
	// session's fixed tick; this only sets how often input is sampled.
	TPS int
	// ShowFPS draws the FPS/TPS counter.
	ShowFPS bool
	// Debug logs frame timings every few seconds.
	Debug bool

	// Sheet supplies the sprites. Nil uses PlaceholderSheet.
	Sheet *Sheet
	// Background is drawn under the sprites. Nil fills with sky blue.
	Background *ebiten.Image
	// Script, when set, is held together with the keyboard.
	Script *aerobatica.Script
	// ScreenshotDir receives F12 and outcome screenshots.
	ScreenshotDir string
	// Logger receives shell events. Nil disables logging.
	Logger *zerolog.Logger
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Aerobatica"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = ebiten.DefaultTPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Sheet == nil {
		c.Sheet = PlaceholderSheet()
	}
	return c
}

// Run opens a window and plays s until it ends and the banner is dismissed,
// or the player quits. It returns the session's final state.
func Run(s *aerobatica.Session, cfg RunConfig) (aerobatica.State, error) {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(aerobatica.ScreenWidth*cfg.Scale), int(aerobatica.ScreenHeight*cfg.Scale))
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(s, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return s.State(), fmt.Errorf("ebitenshell: run game: %w", err)
	}
	return s.State(), nil
}
