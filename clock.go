package aerobatica

import "time"

// TickInterval is the fixed period between game-state updates. Input and
// drawing may run more often than this.
const TickInterval = 30 * time.Millisecond

// tickGate lets an update through once at least interval has elapsed since
// the previous one. The first observed time only starts the clock.
type tickGate struct {
	interval time.Duration
	last     time.Time
	started  bool
}

func (g *tickGate) ready(now time.Time) bool {
	if !g.started {
		g.last = now
		g.started = true
		return false
	}
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}
