package participant

import (
	"context"

	"werewolf-engine/internal/prompt"
)

// DecideFunc backs a Func Participant.
type DecideFunc func(ctx context.Context, systemPrompt, userPrompt, hint string, choices *prompt.ChoiceSpec) (string, error)

// Func adapts a plain function to Participant, for tests that need to
// assert a specific sequence of decisions or exercise the retry path with a
// scripted bad answer followed by a good one.
type Func struct {
	decide DecideFunc
}

// NewFunc wraps fn as a Participant.
func NewFunc(fn DecideFunc) *Func {
	return &Func{decide: fn}
}

func (f *Func) Decide(ctx context.Context, systemPrompt, userPrompt, hint string, choices *prompt.ChoiceSpec) (string, error) {
	return f.decide(ctx, systemPrompt, userPrompt, hint, choices)
}

// Sequence returns a Func that returns each answer in order, then repeats
// the final answer for any calls beyond the sequence's length.
func Sequence(answers ...string) *Func {
	i := 0
	return NewFunc(func(_ context.Context, _, _, _ string, _ *prompt.ChoiceSpec) (string, error) {
		if i >= len(answers) {
			return answers[len(answers)-1], nil
		}
		a := answers[i]
		i++
		return a, nil
	})
}
