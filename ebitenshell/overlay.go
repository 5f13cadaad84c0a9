package ebitenshell

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica"
)

// statsWindow is how many frames frameStats aggregates before reporting.
const statsWindow = 300

// frameStats accumulates update and draw timings for the debug log.
type frameStats struct {
	frames     int
	updateTime time.Duration
	drawTime   time.Duration
	sprites    int
}

func (f *frameStats) addUpdate(d time.Duration) { f.updateTime += d }

// addDraw records one drawn frame and reports whether a window is complete.
func (f *frameStats) addDraw(d time.Duration, sprites int) bool {
	f.frames++
	f.drawTime += d
	f.sprites += sprites
	return f.frames >= statsWindow
}

// report logs the averages of the current window and resets it.
func (f *frameStats) report(log zerolog.Logger, st aerobatica.Stats) {
	if f.frames == 0 {
		return
	}
	n := time.Duration(f.frames)
	log.Debug().
		Dur("update", f.updateTime/n).
		Dur("draw", f.drawTime/n).
		Float64("sprites", float64(f.sprites)/float64(f.frames)).
		Uint64("ticks", st.Ticks).
		Uint64("shots", st.Shots).
		Uint64("kills", st.Kills).
		Msg("frame stats")
	*f = frameStats{}
}

// drawFPS prints the measured FPS and TPS in the top-left corner.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
