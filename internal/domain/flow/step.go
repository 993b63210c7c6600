package flow

import (
	"fmt"
	"strings"
)

// Well-known step ids. The flow document is the source of truth for ordering
// and count; these constants only name the answers the content generator reads.
const (
	StepObjective  = "objective"
	StepPlatform   = "platform"
	StepAudience   = "audience"
	StepTone       = "tone"
	StepContent    = "content"
	StepAdditional = "additional"
	StepGenerate   = "generate"
)

// SkipSentinel is the option label on the "additional" step that stores an
// empty answer instead of the label text.
const SkipSentinel = "Pular essa etapa"

// Step is one question/prompt unit in the questionnaire sequence.
type Step struct {
	ID          string   `yaml:"id"`
	Type        string   `yaml:"type"`
	Content     string   `yaml:"content"`
	Options     []string `yaml:"options,omitempty"`
	MultiSelect bool     `yaml:"multi_select,omitempty"`
}

// Flow is the fixed ordered questionnaire. Immutable after load.
type Flow struct {
	steps []Step
}

// Steps returns a copy of the ordered step definitions.
func (f *Flow) Steps() []Step {
	out := make([]Step, len(f.steps))
	copy(out, f.steps)
	return out
}

// Len returns the number of steps, including the generate trigger.
func (f *Flow) Len() int {
	return len(f.steps)
}

// Step returns the step at index i.
func (f *Flow) Step(i int) Step {
	return f.steps[i]
}

// IsTrigger reports whether the step at index i is the final generate trigger.
// Answers to the trigger step are not recorded.
func (f *Flow) IsTrigger(i int) bool {
	return i == len(f.steps)-1
}

func validate(steps []Step) error {
	if len(steps) < 2 {
		return fmt.Errorf("flow needs at least one question and a trigger step, got %d steps", len(steps))
	}

	seen := make(map[string]bool, len(steps))
	multiSelects := 0
	for i, step := range steps {
		id := strings.TrimSpace(step.ID)
		if id == "" {
			return fmt.Errorf("step %d has an empty id", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate step id %q", id)
		}
		seen[id] = true
		if step.MultiSelect {
			multiSelects++
			if len(step.Options) == 0 {
				return fmt.Errorf("multi-select step %q has no options", id)
			}
		}
	}
	if multiSelects > 1 {
		return fmt.Errorf("flow defines %d multi-select steps, want at most 1", multiSelects)
	}
	return nil
}
