// Package sound plays synthesized effects for session events.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/aerobatica"
)

// SampleRate is the output rate used by Init.
const SampleRate beep.SampleRate = 44100

// Player receives finished effect streams.
type Player interface {
	Play(s ...beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Board turns session events into sounds. Until Init succeeds (or a Player is
// attached with SetPlayer) it stays silent.
type Board struct {
	volume float64
	rate   beep.SampleRate
	out    Player
	device bool
}

// NewBoard returns a silent board with the given linear volume in [0, 1].
func NewBoard(volume float64) *Board {
	return &Board{volume: volume, rate: SampleRate}
}

// Init opens the default audio device with a 100ms buffer.
func (b *Board) Init() error {
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	b.out = speakerPlayer{}
	b.device = true
	return nil
}

// SetPlayer routes effects to p instead of the audio device.
func (b *Board) SetPlayer(p Player) {
	b.out = p
}

// Listen subscribes the board to the events of s.
func (b *Board) Listen(s *aerobatica.Session) aerobatica.Handle {
	return s.OnEvent(b.handle)
}

func (b *Board) handle(ev aerobatica.Event) {
	e, ok := EffectFor(ev.Kind)
	if !ok {
		return
	}
	b.Play(e)
}

// Play starts effect e. It never blocks on playback.
func (b *Board) Play(e Effect) {
	if b.out == nil || b.volume <= 0 {
		return
	}
	if s := Build(e, b.rate, b.volume); s != nil {
		b.out.Play(s)
	}
}

// Close releases the audio device if Init opened it.
func (b *Board) Close() {
	if b.device {
		speaker.Close()
		b.device = false
	}
	b.out = nil
}
