// Package participant implements the §6 Participant capability: the single
// decide() operation the engine calls on every suspension point, plus three
// concrete implementations (stub, func-backed, Kafka-backed).
package participant

import (
	"context"

	"werewolf-engine/internal/prompt"
)

// Participant is the external decision-making capability (§6). The engine
// requires exactly one Participant per seat, registered at controller
// construction; Participants are referenced but never owned by the engine
// (§3 "Ownership").
type Participant interface {
	// Decide presents system/user prompts and an optional ChoiceSpec, and
	// returns the participant's raw answer. When choices is non-nil, the
	// caller validates the returned string against it and retries on a bad
	// parse (§4.4); when choices is nil, any non-empty string is accepted.
	Decide(ctx context.Context, systemPrompt, userPrompt string, hint string, choices *prompt.ChoiceSpec) (string, error)
}
