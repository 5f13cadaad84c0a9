// Package termshell plays an aerobatica session in a terminal.
package termshell

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/aerobatica"
)

// Options configures Run. The zero value is usable.
type Options struct {
	// Screen is the terminal to draw on. Nil opens the real terminal.
	Screen tcell.Screen
	// FrameInterval is the redraw and input-sampling period.
	FrameInterval time.Duration
	// Linger is how long the outcome banner stays up before Run returns.
	Linger time.Duration
	// Script, when set, is held together with the keyboard.
	Script *aerobatica.Script
	// Logger receives shell events. It must not write to the terminal.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.FrameInterval <= 0 {
		o.FrameInterval = 16 * time.Millisecond
	}
	if o.Linger <= 0 {
		o.Linger = 2 * time.Second
	}
	return o
}

// Run plays s until it ends, the player quits, or ctx is cancelled. The
// terminal is always restored before Run returns.
func Run(ctx context.Context, s *aerobatica.Session, opts Options) (aerobatica.State, error) {
	opts = opts.withDefaults()
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "termshell").Logger()
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return s.State(), fmt.Errorf("termshell: new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return s.State(), fmt.Errorf("termshell: init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(opts.FrameInterval)
	defer ticker.Stop()

	latch := newKeyLatch(keyHold)
	var endedAt time.Time

	for {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Msg("cancelled")
			return s.State(), ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := keyFor(ev.Key(), ev.Rune()); ok {
					latch.press(k, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			var keys aerobatica.Keys = latch.snapshot(now)
			if opts.Script != nil {
				keys = aerobatica.AnyKeys{keys, opts.Script}
			}
			st := s.Update(now, keys)
			if opts.Script != nil {
				opts.Script.Advance()
			}

			screen.Clear()
			c := newCanvas(screen)
			s.Draw(c)
			c.status(s)
			switch st {
			case aerobatica.Won:
				c.banner(" YOU WIN ")
			case aerobatica.Lost:
				c.banner(" GAME OVER ")
			}
			screen.Show()

			if st == aerobatica.Quit {
				return st, nil
			}
			if st.Terminal() {
				if endedAt.IsZero() {
					endedAt = now
					log.Info().Stringer("outcome", st).Msg("session ended")
				} else if now.Sub(endedAt) >= opts.Linger {
					return st, nil
				}
			}
		}
	}
}
