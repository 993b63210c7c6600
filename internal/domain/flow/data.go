package flow

import (
	"strings"
	"unicode"
)

// Data is the answer record of one questionnaire run: step id → answer.
// Keys are exactly the step ids that have been answered.
type Data map[string]string

// Clone returns an independent copy, used to hand a frozen snapshot to the
// content generator.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func (d Data) Objective() string  { return d[StepObjective] }
func (d Data) Platform() string   { return d[StepPlatform] }
func (d Data) Audience() string   { return d[StepAudience] }
func (d Data) Tone() string       { return d[StepTone] }
func (d Data) Content() string    { return d[StepContent] }
func (d Data) Additional() string { return d[StepAdditional] }

// PlatformKey returns the platform answer with option emojis stripped, the
// canonical key for the platform spec tables ("📸 Instagram" → "Instagram").
func (d Data) PlatformKey() string {
	return StripEmoji(d.Platform())
}

// ObjectiveKey returns the objective answer with option emojis stripped.
func (d Data) ObjectiveKey() string {
	return StripEmoji(d.Objective())
}

// StripEmoji removes emoji and pictographic runes from a label and trims the
// result. Accented Latin letters are kept.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x2600 || r == 0xFE0F || r == 0x200D {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimFunc(b.String(), unicode.IsSpace)
}
