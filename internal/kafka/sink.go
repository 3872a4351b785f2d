package kafka

import (
	"context"
	"encoding/json"
	"fmt"
)

// EventSink publishes a finalized phase log to the engine events topic, one
// message per call. It is the concrete realization of the engine's Event
// Sink contract (§6): every PhaseLog the controller finishes, and the
// terminal GameOver, is published here as the single source of truth
// external observers (TUI, replay tooling) read from.
type EventSink struct {
	producer Producer
	topic    string
	gameID   string
}

// NewEventSink builds a sink that publishes to topic, keyed by gameID so
// all of one game's events land on the same partition and preserve order.
func NewEventSink(producer Producer, topic, gameID string) *EventSink {
	return &EventSink{producer: producer, topic: topic, gameID: gameID}
}

// Publish marshals payload as JSON and publishes it under the sink's game
// key. payload is typically an events.PhaseLog or events.GameOver.
func (s *EventSink) Publish(ctx context.Context, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("kafka: encode event payload: %w", err)
	}
	return s.producer.Publish(ctx, Message{
		Topic: s.topic,
		Key:   GameKey(s.gameID),
		Value: value,
	})
}
