package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/aerobatica"
)

// Effect names one of the synthesized sounds.
type Effect int

const (
	EffectShot      Effect = iota // short square blip
	EffectEnemyDown               // noise burst
	EffectVictory                 // rising arpeggio
	EffectDefeat                  // falling saw tones

	effectCount
)

var effectNames = [effectCount]string{"shot", "enemy-down", "victory", "defeat"}

func (e Effect) String() string {
	if e >= 0 && e < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// EffectFor maps a session event to its sound. ok is false for silent events.
func EffectFor(kind aerobatica.EventKind) (e Effect, ok bool) {
	switch kind {
	case aerobatica.EventShot:
		return EffectShot, true
	case aerobatica.EventEnemyDown:
		return EffectEnemyDown, true
	case aerobatica.EventVictory:
		return EffectVictory, true
	case aerobatica.EventDefeat:
		return EffectDefeat, true
	}
	return 0, false
}

type note struct {
	freq float64
	d    time.Duration
}

func notes(rate beep.SampleRate, wave Wave, ns ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(ns))
	for i, n := range ns {
		parts[i] = Fade(Tone(n.freq, n.d, wave, rate), n.d, 5*time.Millisecond, n.d/3, rate)
	}
	return beep.Seq(parts...)
}

// Build synthesizes e at the given rate and linear volume.
func Build(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectShot:
		s = notes(rate, WaveSquare, note{1320, 60 * time.Millisecond})
	case EffectEnemyDown:
		d := 250 * time.Millisecond
		s = Fade(Tone(0, d, WaveNoise, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate)
	case EffectVictory:
		s = notes(rate, WaveSquare,
			note{523.25, 120 * time.Millisecond},
			note{659.25, 120 * time.Millisecond},
			note{783.99, 120 * time.Millisecond},
			note{1046.50, 360 * time.Millisecond},
		)
	case EffectDefeat:
		s = notes(rate, WaveSaw,
			note{392.00, 200 * time.Millisecond},
			note{311.13, 200 * time.Millisecond},
			note{196.00, 500 * time.Millisecond},
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
