package aerobatica

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns t0 shifted by ms milliseconds.
func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

// recordEvents collects every event the session emits.
func recordEvents(s *Session) *[]Event {
	var evs []Event
	s.OnEvent(func(ev Event) { evs = append(evs, ev) })
	return &evs
}

func eventKinds(evs []Event) []EventKind {
	out := make([]EventKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func sameKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Construction ---

func TestNewSessionStartingState(t *testing.T) {
	s := NewSession(Options{})
	if s.State() != Running {
		t.Fatalf("State() = %v, want running", s.State())
	}
	for k := Kind(0); k < kindCount; k++ {
		e := s.Entity(k)
		if e.Pos != SpawnPoint(k) {
			t.Errorf("%v at %v, want %v", k, e.Pos, SpawnPoint(k))
		}
		if e.Destroyed {
			t.Errorf("%v starts destroyed", k)
		}
	}
	if !s.Entity(KindPlayer).Onscreen {
		t.Error("player should start onscreen")
	}
	if s.Entity(KindPlayerBullet).Onscreen {
		t.Error("player bullet should start idle")
	}
}

func TestStateTerminal(t *testing.T) {
	tests := []struct {
		st   State
		want bool
	}{
		{Running, false},
		{Won, true},
		{Lost, true},
		{Quit, true},
	}
	for _, tt := range tests {
		if got := tt.st.Terminal(); got != tt.want {
			t.Errorf("%v.Terminal() = %v, want %v", tt.st, got, tt.want)
		}
	}
}

// --- Tick gating ---

func TestUpdateTickGate(t *testing.T) {
	tests := []struct {
		ms        int
		wantTicks uint64
	}{
		{0, 0},
		{29, 0},
		{30, 1},
		{45, 1},
		{59, 1},
		{60, 2},
		{200, 3},
	}
	s := NewSession(Options{})
	for _, tt := range tests {
		s.Update(at(tt.ms), KeySet(0))
		if got := s.Stats().Ticks; got != tt.wantTicks {
			t.Errorf("after Update at %dms Ticks = %d, want %d", tt.ms, got, tt.wantTicks)
		}
	}
}

func TestInputRunsEveryFrame(t *testing.T) {
	s := NewSession(Options{})
	right := NewKeySet(KeyRight)
	for ms := 0; ms < 30; ms += 10 {
		s.Update(at(ms), right)
	}
	if s.Stats().Ticks != 0 {
		t.Fatalf("Ticks = %d, want 0", s.Stats().Ticks)
	}
	if got := s.Entity(KindPlayer).Pos.X; got != 115 {
		t.Errorf("player x = %d after three frames, want 115", got)
	}
}

// --- Victory ---

func TestVictoryFiresOnce(t *testing.T) {
	s := NewSession(Options{})
	evs := recordEvents(s)

	for i := 0; i < 5; i++ {
		if st := s.Tick(); st != Running {
			t.Fatalf("tick %d: State = %v before the bomber is destroyed", i, st)
		}
	}

	wreck(s, KindBomber)
	if st := s.Tick(); st != Won {
		t.Fatalf("Tick() = %v, want won", st)
	}
	s.Tick()
	s.Tick()

	var victories int
	for _, ev := range *evs {
		if ev.Kind == EventVictory {
			victories++
			if ev.Tick != 6 {
				t.Errorf("victory at tick %d, want 6", ev.Tick)
			}
		}
	}
	if victories != 1 {
		t.Errorf("victory fired %d times, want 1", victories)
	}
	if s.Stats().Ticks != 6 {
		t.Errorf("Ticks = %d, want 6: ended sessions do not tick", s.Stats().Ticks)
	}
}

func TestVictoryTickSkipsMovement(t *testing.T) {
	s := NewSession(Options{})
	wreck(s, KindBomber)
	before := s.Entity(KindVulcanJet).Pos

	s.Tick()

	if got := s.Entity(KindVulcanJet).Pos; got != before {
		t.Errorf("vulcan jet moved to %v on the victory tick", got)
	}
}

// --- Shooting ---

func TestShootDownVulcanJet(t *testing.T) {
	s := NewSession(Options{})
	evs := recordEvents(s)
	v := s.Entity(KindVulcanJet)
	v.Pos = Point{700, 370}
	v.Onscreen = true

	s.applyInput(NewKeySet(KeyFire))
	for i := 0; i < 10 && s.Stats().Kills == 0; i++ {
		s.Tick()
	}

	if s.Stats().Kills != 1 {
		t.Fatal("vulcan jet never shot down")
	}
	if !v.Destroyed || v.Pos.X != ParkX {
		t.Errorf("vulcan jet destroyed=%v x=%d, want destroyed and parked", v.Destroyed, v.Pos.X)
	}
	want := []EventKind{EventShot, EventEnemyDown}
	if got := eventKinds(*evs); !sameKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if (*evs)[1].Subject != KindVulcanJet {
		t.Errorf("enemy-down subject = %v, want vulcan-jet", (*evs)[1].Subject)
	}
	if k, _ := s.ActiveEnemy(); k != KindMissileJet {
		t.Errorf("ActiveEnemy() = %v, want missile-jet", k)
	}
	if s.State() != Running {
		t.Errorf("State() = %v, want running", s.State())
	}
}

// --- Defeat ---

func TestLossEndsSession(t *testing.T) {
	s := NewSession(Options{})
	evs := recordEvents(s)
	place(s, KindEnemyBullet)

	s.Update(at(0), KeySet(0))
	if st := s.Update(at(30), KeySet(0)); st != Lost {
		t.Fatalf("Update() = %v, want lost", st)
	}
	want := []EventKind{EventPlayerDown, EventDefeat}
	if got := eventKinds(*evs); !sameKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}

	p := s.Entity(KindPlayer)
	before := p.Pos
	s.Update(at(60), NewKeySet(KeyRight, KeyFire))
	s.Update(at(90), NewKeySet(KeyRight))
	if p.Pos != before {
		t.Errorf("player moved to %v after the session ended", p.Pos)
	}
	if s.Entity(KindPlayerBullet).Onscreen {
		t.Error("fire accepted after the session ended")
	}
	if len(*evs) != 2 {
		t.Errorf("%d events after the end, want 2", len(*evs))
	}
}

func TestRamCountsKill(t *testing.T) {
	s := NewSession(Options{})
	evs := recordEvents(s)
	place(s, KindHelicopter)

	if st := s.Tick(); st != Lost {
		t.Fatalf("Tick() = %v, want lost", st)
	}
	want := []EventKind{EventEnemyDown, EventPlayerDown, EventDefeat}
	if got := eventKinds(*evs); !sameKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if s.Stats().Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.Stats().Kills)
	}
}

// --- Quit ---

func TestQuit(t *testing.T) {
	s := NewSession(Options{})
	evs := recordEvents(s)

	if st := s.Update(at(0), NewKeySet(KeyQuit)); st != Quit {
		t.Fatalf("Update() = %v, want quit", st)
	}
	if got := eventKinds(*evs); !sameKinds(got, []EventKind{EventQuit}) {
		t.Errorf("events = %v, want [quit]", got)
	}
	s.Update(at(30), NewKeySet(KeyQuit))
	if len(*evs) != 1 {
		t.Errorf("quit fired %d times", len(*evs))
	}
}

func TestQuitAfterLossKeepsLoss(t *testing.T) {
	s := NewSession(Options{})
	place(s, KindMissile)
	s.Update(at(0), KeySet(0))
	if st := s.Update(at(30), NewKeySet(KeyQuit)); st != Lost {
		t.Errorf("Update() = %v, want lost", st)
	}
}

// --- Transition frame ---

func TestTransitionFrameAppliesInput(t *testing.T) {
	s := NewSession(Options{})
	wreck(s, KindBomber)
	right := NewKeySet(KeyRight)

	s.Update(at(0), KeySet(0))
	if st := s.Update(at(30), right); st != Won {
		t.Fatalf("Update() = %v, want won", st)
	}
	p := s.Entity(KindPlayer)
	if p.Pos.X != 105 {
		t.Errorf("player x = %d on the final frame, want 105", p.Pos.X)
	}
	s.Update(at(40), right)
	if p.Pos.X != 105 {
		t.Errorf("player x = %d after the session ended, want 105", p.Pos.X)
	}
}

// --- Frame ---

func TestFrameDraws(t *testing.T) {
	s := NewSession(Options{})
	var r recorder
	if st := s.Frame(at(0), KeySet(0), &r); st != Running {
		t.Fatalf("Frame() = %v, want running", st)
	}
	if len(r.calls) != len(drawOrder) {
		t.Errorf("Frame drew %d sprites, want %d", len(r.calls), len(drawOrder))
	}

	wreck(s, KindBomber)
	s.Frame(at(30), KeySet(0), &r)
	if s.State() != Won {
		t.Fatalf("State() = %v, want won", s.State())
	}
	r.calls = nil
	s.Frame(at(60), KeySet(0), &r)
	if len(r.calls) == 0 {
		t.Error("ended sessions should still draw")
	}
}

// --- Logging ---

func TestSessionLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	s := NewSession(Options{Logger: &logger})
	wreck(s, KindBomber)

	s.Tick()

	out := buf.String()
	for _, want := range []string{`"component":"session"`, `"outcome":"won"`, `"message":"session ended"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestSessionNilLoggerIsSilent(t *testing.T) {
	s := NewSession(Options{})
	wreck(s, KindBomber)
	s.Tick() // must not panic
	if s.State() != Won {
		t.Errorf("State() = %v, want won", s.State())
	}
}
