// Package ebitenshell hosts an aerobatica session in an Ebitengine window.
package ebitenshell

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica"
)

// holdAfterEnd is how long the outcome banner stays up without a key press.
const holdAfterEnd = 3 * time.Second

// Game implements ebiten.Game for one session.
type Game struct {
	session    *aerobatica.Session
	keys       aerobatica.Keys
	script     *aerobatica.Script
	sheet      *Sheet
	background *ebiten.Image
	showFPS    bool
	debug      bool
	dt         float32

	banner  *banner
	endedAt time.Time
	shots   screenshots
	stats   frameStats
	log     zerolog.Logger
	now     func() time.Time
}

// NewGame wires a session to the window described by cfg.
func NewGame(s *aerobatica.Session, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		session:    s,
		keys:       newKeyboard(),
		script:     cfg.Script,
		sheet:      cfg.Sheet,
		background: cfg.Background,
		showFPS:    cfg.ShowFPS,
		debug:      cfg.Debug,
		dt:         1 / float32(cfg.TPS),
		log:        zerolog.Nop(),
		now:        time.Now,
	}
	if cfg.Logger != nil {
		g.log = cfg.Logger.With().Str("component", "ebitenshell").Logger()
	}
	if g.script != nil {
		g.keys = aerobatica.AnyKeys{g.keys, g.script}
	}
	g.shots = screenshots{dir: cfg.ScreenshotDir, log: g.log, now: g.now}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	start := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.request("manual")
	}
	err := g.step(g.keys, anyKeyJustPressed())
	if g.debug {
		g.stats.addUpdate(time.Since(start))
	}
	return err
}

// step runs one frame of game logic. pressed reports a fresh key press, which
// dismisses the outcome banner once it has settled.
func (g *Game) step(keys aerobatica.Keys, pressed bool) error {
	now := g.now()
	st := g.session.Update(now, keys)
	if g.script != nil {
		g.script.Advance()
	}

	switch st {
	case aerobatica.Running:
		return nil
	case aerobatica.Quit:
		return ebiten.Termination
	}

	if g.banner == nil {
		g.banner = newBanner(st)
		g.endedAt = now
		g.shots.request(st.String())
		g.log.Info().Stringer("outcome", st).Msg("showing outcome banner")
		return nil
	}
	if g.banner.update(g.dt) && (pressed || now.Sub(g.endedAt) >= holdAfterEnd) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()

	if g.background != nil {
		screen.DrawImage(g.background, nil)
	} else {
		screen.Fill(color.NRGBA{R: 90, G: 150, B: 220, A: 255})
	}

	r := screenRenderer{screen: screen, sheet: g.sheet}
	g.session.Draw(&r)

	if g.banner != nil {
		g.banner.draw(screen)
	}
	if g.showFPS {
		drawFPS(screen)
	}
	g.shots.flush(screen)

	if g.debug && g.stats.addDraw(time.Since(start), r.drawn) {
		g.stats.report(g.log, g.session.Stats())
	}
}

// Layout implements ebiten.Game. The playfield has a fixed logical size and
// ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return aerobatica.ScreenWidth, aerobatica.ScreenHeight
}

func anyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
