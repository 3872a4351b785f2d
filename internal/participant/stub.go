package participant

import (
	"context"

	"werewolf-engine/internal/prompt"
)

// Stub is a deterministic Participant that always picks the first available
// option (or the none sentinel, if AllowNone and no options exist). It never
// fails to parse, so it is used by the deterministic stress harness and by
// tests that only care about control flow, not specific decisions (§5's
// determinism guarantee: identical seed + identical participant responses
// must reproduce a byte-identical log, and Stub's responses are themselves
// deterministic run to run).
type Stub struct {
	// TextAnswer is returned for free-text decisions (ChoiceKindText or a
	// nil ChoiceSpec). Defaults to "no comment" if left empty.
	TextAnswer string
}

// NewStub returns a Stub with the default text answer.
func NewStub() *Stub {
	return &Stub{TextAnswer: "no comment"}
}

func (s *Stub) Decide(_ context.Context, _, _ string, _ string, choices *prompt.ChoiceSpec) (string, error) {
	if choices == nil || choices.Kind == prompt.ChoiceKindText {
		if s.TextAnswer != "" {
			return s.TextAnswer, nil
		}
		return "no comment", nil
	}
	if len(choices.Options) > 0 {
		return choices.Options[0].Value, nil
	}
	if choices.AllowNone {
		return prompt.NoneValue, nil
	}
	return "", nil
}
