package aerobatica

import (
	"encoding/json"
	"fmt"
)

// scriptStep holds a set of keys for a number of frames.
type scriptStep struct {
	Keys   []string `json:"keys"`
	Frames int      `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
	Loop  bool         `json:"loop,omitempty"`
}

type compiledStep struct {
	keys   KeySet
	frames int
}

// Script replays a recorded key sequence frame by frame. It implements Keys,
// so a host can hand it to Session.Update in place of a keyboard.
//
//	{"steps": [{"keys": ["right", "fire"], "frames": 10}, {"keys": [], "frames": 5}]}
//
// A step with no frames lasts one frame. With "loop" set the script starts
// over after its last step; otherwise it holds no keys once finished.
type Script struct {
	steps  []compiledStep
	cursor int
	frame  int
	loop   bool
	done   bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("aerobatica: parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("aerobatica: parse input script: no steps")
	}
	sc := &Script{loop: f.Loop, steps: make([]compiledStep, 0, len(f.Steps))}
	for i, st := range f.Steps {
		var ks KeySet
		for _, name := range st.Keys {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("aerobatica: parse input script: step %d: %w", i, err)
			}
			ks = ks.With(k)
		}
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		sc.steps = append(sc.steps, compiledStep{keys: ks, frames: frames})
	}
	return sc, nil
}

// IsKeyDown implements Keys for the current frame.
func (sc *Script) IsKeyDown(k Key) bool {
	if sc.done {
		return false
	}
	return sc.steps[sc.cursor].keys.IsKeyDown(k)
}

// Advance moves the script forward by one frame.
func (sc *Script) Advance() {
	if sc.done {
		return
	}
	sc.frame++
	if sc.frame < sc.steps[sc.cursor].frames {
		return
	}
	sc.frame = 0
	sc.cursor++
	if sc.cursor < len(sc.steps) {
		return
	}
	if sc.loop {
		sc.cursor = 0
		return
	}
	sc.cursor = len(sc.steps) - 1
	sc.done = true
}

// Done reports whether a non-looping script has played every step.
func (sc *Script) Done() bool {
	return sc.done
}

// Frames returns the length of one pass through the script in frames.
func (sc *Script) Frames() int {
	n := 0
	for _, st := range sc.steps {
		n += st.frames
	}
	return n
}
