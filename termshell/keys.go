package termshell

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/aerobatica"
)

// keyHold is how long a key counts as held after its last press event.
// Terminals only report presses and auto-repeat, never releases.
const keyHold = 150 * time.Millisecond

// keyFor maps a terminal key to a logical key.
func keyFor(k tcell.Key, r rune) (aerobatica.Key, bool) {
	switch k {
	case tcell.KeyLeft:
		return aerobatica.KeyLeft, true
	case tcell.KeyRight:
		return aerobatica.KeyRight, true
	case tcell.KeyUp:
		return aerobatica.KeyUp, true
	case tcell.KeyDown:
		return aerobatica.KeyDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return aerobatica.KeyQuit, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return aerobatica.KeyFire, true
		case 'a', 'A':
			return aerobatica.KeyLeft, true
		case 'd', 'D':
			return aerobatica.KeyRight, true
		case 'w', 'W':
			return aerobatica.KeyUp, true
		case 's', 'S':
			return aerobatica.KeyDown, true
		case 'q', 'Q':
			return aerobatica.KeyQuit, true
		}
	}
	return 0, false
}

// keyLatch turns press events into held keys.
type keyLatch struct {
	hold    time.Duration
	pressed map[aerobatica.Key]time.Time
}

func newKeyLatch(hold time.Duration) *keyLatch {
	return &keyLatch{hold: hold, pressed: make(map[aerobatica.Key]time.Time)}
}

func (l *keyLatch) press(k aerobatica.Key, at time.Time) {
	l.pressed[k] = at
}

// snapshot returns the keys pressed within the hold window before now.
func (l *keyLatch) snapshot(now time.Time) aerobatica.KeySet {
	var ks aerobatica.KeySet
	for k, at := range l.pressed {
		if now.Sub(at) < l.hold {
			ks = ks.With(k)
		}
	}
	return ks
}
