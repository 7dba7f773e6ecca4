package adventure

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Key    Key    `yaml:"key,omitempty"`
	Ticks  int    `yaml:"ticks,omitempty"`
}

// inputScriptFile is the top-level YAML structure of an input script.
type inputScriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// InputScript replays key presses, releases and waits across ticks so a
// session can be reproduced without a keyboard. Attach to an Engine via
// SetInputScript.
//
//	steps:
//	  - {action: hold, key: up}
//	  - {action: wait, ticks: 24}
//	  - {action: release, key: up}
//	  - {action: close}
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a YAML (or JSON) input script.
func LoadInputScript(data []byte) (*InputScript, error) {
	var file inputScriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "hold", "release":
			if st.Key == "" {
				return nil, fmt.Errorf("parse input script: step %d: %s needs a key", i, st.Action)
			}
		case "wait", "close":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *InputScript) Done() bool {
	return r.done
}

// step advances the script by one tick. Consecutive hold/release steps are
// applied in the same tick; wait and close end the tick's batch.
func (r *InputScript) step(in *Input) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
loop:
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		switch st.Action {
		case "hold":
			in.Press(st.Key)
		case "release":
			in.Release(st.Key)
		case "wait":
			if st.Ticks > 0 {
				r.waitCount = st.Ticks - 1 // this tick counts as one
			}
			break loop
		case "close":
			in.RequestClose()
			break loop
		}
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
