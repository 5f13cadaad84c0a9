package aerobatica

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventShot       EventKind = iota // the player fired
	EventEnemyShot                   // an enemy fired; Subject is the projectile
	EventEnemyDown                   // Subject was shot down or rammed
	EventPlayerDown                  // the player was hit; Subject is the culprit
	EventVictory                     // the bomber is down; fires once
	EventDefeat                      // the player is down; fires once
	EventQuit                        // the player pressed Quit
)

var eventNames = [...]string{
	EventShot:       "shot",
	EventEnemyShot:  "enemy-shot",
	EventEnemyDown:  "enemy-down",
	EventPlayerDown: "player-down",
	EventVictory:    "victory",
	EventDefeat:     "defeat",
	EventQuit:       "quit",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is delivered synchronously to every registered listener.
type Event struct {
	Kind    EventKind
	Subject Kind
	Tick    uint64 // gated tick count when the event fired
}

type listener struct {
	id uint32
	fn func(Event)
}

type listenerRegistry struct {
	fns    []listener
	nextID uint32
}

// Handle allows removing a listener registered with Session.OnEvent.
type Handle struct {
	id  uint32
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires.
func (h Handle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.fns
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.reg.fns = s[:len(s)-1]
			return
		}
	}
}

// OnEvent registers fn to receive session events in registration order.
func (s *Session) OnEvent(fn func(Event)) Handle {
	s.listeners.nextID++
	id := s.listeners.nextID
	s.listeners.fns = append(s.listeners.fns, listener{id: id, fn: fn})
	return Handle{id: id, reg: &s.listeners}
}

func (s *Session) emit(kind EventKind, subject Kind) {
	if len(s.listeners.fns) == 0 {
		return
	}
	ev := Event{Kind: kind, Subject: subject, Tick: s.stats.Ticks}
	// Listeners may remove themselves; iterate over a snapshot.
	fns := append([]listener(nil), s.listeners.fns...)
	for _, l := range fns {
		l.fn(ev)
	}
}
