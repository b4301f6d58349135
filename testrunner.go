package arbor

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float32 `json:"x,omitempty"`
	Y       float32 `json:"y,omitempty"`
	Code    int32   `json:"code,omitempty"`
	Text    string  `json:"text,omitempty"`
	Command uint32  `json:"command,omitempty"`
	Node    *int    `json:"node,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true, "click": true, "press": true, "release": true,
	"key": true, "text": true, "command": true, "focus": true, "wait": true,
}

// TestRunner sequences injected input, focus changes and screenshots across
// frames for automated testing of a UI.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// Screenshot is called for "screenshot" steps. When nil those steps
	// are skipped.
	Screenshot func(label string)
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "focus", "node": 3},
//		{"action": "key", "code": 13},
//		{"action": "text", "text": "hi"},
//		{"action": "click", "x": 10, "y": 20},
//		{"action": "command", "command": 7},
//		{"action": "wait", "frames": 2},
//		{"action": "screenshot", "label": "after"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "focus" && st.Node == nil {
			return nil, fmt.Errorf("parse test script: step %d: focus needs a node", i)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Injected events are consumed by
// u.ProcessInjected, one per frame; the runner waits for them to drain
// before moving to the next step.
func (r *TestRunner) Step(u *UI) {
	if r.done {
		return
	}
	if u.PendingInjected() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if r.Screenshot != nil {
			r.Screenshot(st.Label)
		}
	case "click":
		u.InjectClick(st.X, st.Y)
	case "press":
		u.InjectPress(st.X, st.Y)
	case "release":
		u.InjectRelease(st.X, st.Y)
	case "key":
		u.InjectKey(KeyEvent{Key: VKey(st.Code)})
	case "text":
		u.InjectText(st.Text)
	case "command":
		u.InjectCommand(st.Command)
	case "focus":
		u.SetFocus(ID(*st.Node))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && u.PendingInjected() == 0 {
		r.done = true
	}
}

// RunHeadless drives u frame by frame into p until the script is done and
// returns the number of frames rendered. Each frame is painted before the
// next step runs, so injected pointer events hit the laid-out tree.
func (r *TestRunner) RunHeadless(u *UI, p Painter) int {
	frames := 0
	for {
		u.Frame(p)
		frames++
		if r.Done() {
			return frames
		}
		r.Step(u)
		u.ProcessInjected()
	}
}
