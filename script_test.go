package aerobatica

import "testing"

func mustScript(t *testing.T, src string) *Script {
	t.Helper()
	sc, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	return sc
}

// --- LoadScript ---

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"invalid json", `{"steps": [`},
		{"no steps", `{"steps": []}`},
		{"unknown key", `{"steps": [{"keys": ["jump"], "frames": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestScriptFrames(t *testing.T) {
	sc := mustScript(t, `{"steps": [{"keys": ["fire"], "frames": 3}, {"keys": []}, {"keys": ["up"], "frames": -2}]}`)
	if got := sc.Frames(); got != 5 {
		t.Errorf("Frames() = %d, want 5", got)
	}
}

// --- Playback ---

func TestScriptPlayback(t *testing.T) {
	sc := mustScript(t, `{"steps": [{"keys": ["right", "fire"], "frames": 2}, {"keys": ["up"], "frames": 1}]}`)

	want := []KeySet{
		NewKeySet(KeyRight, KeyFire),
		NewKeySet(KeyRight, KeyFire),
		NewKeySet(KeyUp),
		0,
		0,
	}
	for i, ks := range want {
		if got := Snapshot(sc); got != ks {
			t.Errorf("frame %d: keys = %08b, want %08b", i, got, ks)
		}
		sc.Advance()
	}
	if !sc.Done() {
		t.Error("Done() = false after the last step")
	}
}

func TestScriptLoop(t *testing.T) {
	sc := mustScript(t, `{"steps": [{"keys": ["left"]}, {"keys": ["down"]}], "loop": true}`)
	for i := 0; i < 6; i++ {
		want := KeyLeft
		if i%2 == 1 {
			want = KeyDown
		}
		if !sc.IsKeyDown(want) {
			t.Errorf("frame %d: %v not held", i, want)
		}
		sc.Advance()
	}
	if sc.Done() {
		t.Error("looping script reported Done")
	}
}

func TestScriptDrivesSession(t *testing.T) {
	sc := mustScript(t, `{"steps": [{"keys": ["right"], "frames": 3}, {"keys": ["fire"]}]}`)
	s := NewSession(Options{})

	for i := 0; !sc.Done(); i++ {
		s.Update(at(i), sc)
		sc.Advance()
	}

	if got := s.Entity(KindPlayer).Pos.X; got != 115 {
		t.Errorf("player x = %d, want 115", got)
	}
	if s.Stats().Shots != 1 {
		t.Errorf("Shots = %d, want 1", s.Stats().Shots)
	}
}
