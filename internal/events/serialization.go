package events

import (
	"encoding/json"
	"fmt"
)

// envelope wraps a GameEvent with its stable type tag for the wire. The
// type lives outside the event structs themselves (unlike the teacher's
// embedded BaseEvent.Type) because GameEvent is a closed sum dispatched by
// Go's type system, not by a string field read back out of the struct.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Marshal encodes any GameEvent into its self-describing wire form.
func Marshal(event GameEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	return json.Marshal(envelope{Type: event.eventType(), Payload: payload})
}

// Unmarshal decodes a wire-form event back into its concrete GameEvent type,
// routing on the envelope's type tag — the single entry point for turning
// Kafka message bytes (or a replayed log) into strongly-typed events.
func Unmarshal(data []byte) (GameEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("events: parse envelope: %w", err)
	}

	switch env.Type {
	case typeGameStart:
		var e GameStart
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeWerewolfKill:
		var e WerewolfKill
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeWitchAction:
		var e WitchAction
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeGuardAction:
		var e GuardAction
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeSeerAction:
		var e SeerAction
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeNightOutcome:
		var e NightOutcome
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeSheriffNomination:
		var e SheriffNomination
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeSheriffOptOut:
		var e SheriffOptOut
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeSpeech:
		var e Speech
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeSheriffOutcome:
		var e SheriffOutcome
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeVote:
		var e Vote
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeBanishment:
		var e Banishment
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeDeathEvent:
		var e DeathEvent
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	case typeGameOver:
		var e GameOver
		if err := unmarshalPayload(env.Payload, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("events: unknown event type %q", env.Type)
	}
}

func unmarshalPayload[T any](payload json.RawMessage, out *T) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("events: unmarshal payload: %w", err)
	}
	return nil
}
