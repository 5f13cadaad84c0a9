package aerobatica

import (
	"time"

	"github.com/rs/zerolog"
)

// State is the lifecycle state of a session.
type State uint8

const (
	Running State = iota
	Won           // the bomber was destroyed
	Lost          // the player was hit
	Quit          // the player asked to leave
)

var stateNames = [...]string{
	Running: "running",
	Won:     "won",
	Lost:    "lost",
	Quit:    "quit",
}

func (st State) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}
	return "unknown"
}

// Terminal reports whether no further game-state mutation will happen.
func (st State) Terminal() bool {
	return st != Running
}

// Options configures a new Session.
type Options struct {
	// Logger receives debug and info events. Nil disables logging.
	Logger *zerolog.Logger

	// EnemyFire lets the Vulcan jet and missile jet shoot while they are
	// the active enemy. Off by default.
	EnemyFire bool
}

// Stats counts what happened during a session.
type Stats struct {
	Ticks      uint64 // gated game-state updates
	Shots      uint64 // player bullets fired
	EnemyShots uint64 // enemy projectiles launched
	Kills      uint64 // enemy aircraft destroyed, rams included
}

// Session owns all entity state for one game and runs the frame loop.
// It is not safe for concurrent use.
type Session struct {
	entities     [kindCount]Entity
	state        State
	gate         tickGate
	enemiesArmed bool
	log          zerolog.Logger
	listeners    listenerRegistry
	stats        Stats
}

// NewSession creates a session with every entity at its starting position.
func NewSession(opts Options) *Session {
	s := &Session{
		gate:         tickGate{interval: TickInterval},
		enemiesArmed: opts.EnemyFire,
		log:          zerolog.Nop(),
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "session").Logger()
	}
	for k := range s.entities {
		s.entities[k] = roster[k].entity()
	}
	return s
}

// Entity returns the entity of kind k. The pointer stays valid for the
// lifetime of the session.
func (s *Session) Entity(k Kind) *Entity {
	return &s.entities[k]
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Tick runs one game-state update: victory check, loss check, enemy
// movement, optional enemy fire, projectile movement, then scoring. It does
// nothing once the session has ended.
func (s *Session) Tick() State {
	if s.state != Running {
		return s.state
	}
	s.stats.Ticks++

	if s.entities[KindBomber].Destroyed {
		s.end(Won, EventVictory, KindBomber)
		return s.state
	}

	if culprit, hit := s.checkLoss(); hit {
		if culprit.IsAircraft() {
			s.stats.Kills++
			s.emit(EventEnemyDown, culprit)
		}
		s.emit(EventPlayerDown, culprit)
		s.end(Lost, EventDefeat, culprit)
		return s.state
	}

	s.moveEnemies()
	if s.enemiesArmed {
		s.enemyFire()
	}
	s.moveWeaponry()

	if k, hit := s.checkScoring(); hit {
		s.stats.Kills++
		s.log.Debug().Stringer("enemy", k).Uint64("tick", s.stats.Ticks).Msg("enemy destroyed")
		s.emit(EventEnemyDown, k)
	}
	return s.state
}

// Update runs a game-state tick when TickInterval has elapsed since the
// previous one, then applies input. Input is still applied on the call that
// ends the session so the final frame reflects it; after that Update does
// nothing.
func (s *Session) Update(now time.Time, keys Keys) State {
	if s.state != Running {
		return s.state
	}
	if s.gate.ready(now) {
		s.Tick()
	}
	if s.applyInput(keys) && s.state == Running {
		s.state = Quit
		s.log.Info().Uint64("tick", s.stats.Ticks).Msg("session quit")
		s.emit(EventQuit, KindPlayer)
	}
	return s.state
}

// Frame is Update followed by Draw, for hosts that do not split the two.
func (s *Session) Frame(now time.Time, keys Keys, r Renderer) State {
	st := s.Update(now, keys)
	s.Draw(r)
	return st
}

// end moves the session into a terminal state and notifies listeners once.
func (s *Session) end(st State, ev EventKind, subject Kind) {
	s.state = st
	s.log.Info().
		Stringer("outcome", st).
		Stringer("cause", subject).
		Uint64("ticks", s.stats.Ticks).
		Uint64("shots", s.stats.Shots).
		Uint64("kills", s.stats.Kills).
		Msg("session ended")
	s.emit(ev, subject)
}
