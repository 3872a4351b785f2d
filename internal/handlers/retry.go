package handlers

import (
	"context"
	"fmt"

	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// maxRetries bounds the parse-retry loop of §4.4 ("retrying up to 3× on
// invalid parse"). On exhaustion the caller applies the subphase's
// documented default — this package never returns an error for a
// participant parse failure (§7: "recoverable; not a validator violation").
const maxRetries = 3

// ask queries p up to maxRetries times for an answer matching spec,
// returning the accepted raw answer and ok=true, or ok=false once retries
// are exhausted so the caller can apply its default.
func ask(ctx context.Context, p participant.Participant, systemPrompt, stateContext string, spec prompt.ChoiceSpec) (string, bool) {
	hint := ""
	for attempt := 0; attempt < maxRetries; attempt++ {
		dp := prompt.RenderDecision(spec, hint)
		userPrompt := stateContext + dp.LLM
		answer, err := p.Decide(ctx, systemPrompt, userPrompt, hint, &spec)
		if err != nil {
			hint = fmt.Sprintf("your previous response errored (%v); please answer again", err)
			continue
		}
		if acceptable(spec, answer) {
			return answer, true
		}
		hint = fmt.Sprintf("%q is not one of the valid options; please answer again", answer)
	}
	return "", false
}

// askText queries p for a free-text answer, retrying on an empty response
// (§4.4: "for text, any non-empty string is accepted; an empty result
// triggers retry").
func askText(ctx context.Context, p participant.Participant, systemPrompt, stateContext, question string) (string, bool) {
	spec := prompt.ChoiceSpec{Kind: prompt.ChoiceKindText, Prompt: question}
	return ask(ctx, p, systemPrompt, stateContext, spec)
}

func acceptable(spec prompt.ChoiceSpec, answer string) bool {
	if spec.Kind == prompt.ChoiceKindText {
		return answer != ""
	}
	if spec.AllowNone && answer == prompt.NoneValue {
		return true
	}
	for _, opt := range spec.Options {
		if opt.Value == answer {
			return true
		}
	}
	return false
}

// findOption returns the option in spec whose Value matches answer.
func findOption(spec prompt.ChoiceSpec, answer string) (prompt.Option, bool) {
	for _, opt := range spec.Options {
		if opt.Value == answer {
			return opt, true
		}
	}
	return prompt.Option{}, false
}
