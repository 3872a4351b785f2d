package participant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"werewolf-engine/internal/kafka"
	"werewolf-engine/internal/prompt"
)

// decisionRequest is published to the player-actions-request side of the
// wire; decisionResponse is read back correlated by RequestID. This gives
// the KafkaParticipant of §4.15 a concrete request/response protocol over
// the same Producer/Consumer interfaces the engine uses for its event sink
// (adapted from the teacher's internal/kafka).
type decisionRequest struct {
	RequestID    string             `json:"request_id"`
	Seat         int                `json:"seat"`
	SystemPrompt string             `json:"system_prompt"`
	UserPrompt   string             `json:"user_prompt"`
	Hint         string             `json:"hint,omitempty"`
	Choices      *prompt.ChoiceSpec `json:"choices,omitempty"`
}

type decisionResponse struct {
	RequestID string `json:"request_id"`
	Answer    string `json:"answer"`
}

// Kafka is a Participant that asks a remote process for decisions over a
// pair of Kafka topics, correlating request/response pairs by RequestID.
// It satisfies §6's Participant contract over the wire, giving a remote
// human/LLM agent process a concrete transport (out of scope for the
// engine's rule logic, but its transport is in scope per SPEC_FULL §4.15).
type Kafka struct {
	producer  kafka.Producer
	requestTopic string
	gameID    string
	seat      int

	mu      sync.Mutex
	pending map[string]chan decisionResponse
}

// NewKafka constructs a Kafka participant for one seat. Callers must also
// route incoming response messages on the game's response topic into
// HandleResponse (typically from the same Consume loop that feeds the
// engine's Kafka-sourced player actions).
func NewKafka(producer kafka.Producer, requestTopic, gameID string, seat int) *Kafka {
	return &Kafka{
		producer:     producer,
		requestTopic: requestTopic,
		gameID:       gameID,
		seat:         seat,
		pending:      make(map[string]chan decisionResponse),
	}
}

func (k *Kafka) Decide(ctx context.Context, systemPrompt, userPrompt, hint string, choices *prompt.ChoiceSpec) (string, error) {
	reqID := fmt.Sprintf("%s-seat%d-%d", k.gameID, k.seat, len(k.pending))

	req := decisionRequest{
		RequestID:    reqID,
		Seat:         k.seat,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Hint:         hint,
		Choices:      choices,
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("participant: encode decision request: %w", err)
	}

	respCh := make(chan decisionResponse, 1)
	k.mu.Lock()
	k.pending[reqID] = respCh
	k.mu.Unlock()
	defer func() {
		k.mu.Lock()
		delete(k.pending, reqID)
		k.mu.Unlock()
	}()

	if err := k.producer.Publish(ctx, kafka.Message{
		Topic: k.requestTopic,
		Key:   kafka.GameKey(k.gameID),
		Value: payload,
	}); err != nil {
		return "", fmt.Errorf("participant: publish decision request: %w", err)
	}

	select {
	case resp := <-respCh:
		return resp.Answer, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// HandleResponse delivers a response message to the waiting Decide call, if
// any is still pending. Unknown or late request IDs are silently dropped —
// the original Decide call has either already timed out or never asked.
func (k *Kafka) HandleResponse(data []byte) error {
	var resp decisionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("participant: decode decision response: %w", err)
	}

	k.mu.Lock()
	ch, ok := k.pending[resp.RequestID]
	k.mu.Unlock()
	if !ok {
		return nil
	}

	select {
	case ch <- resp:
	default:
	}
	return nil
}

// Router fans a single consumer loop's incoming messages out to every
// seat's Kafka participant. A message's RequestID embeds the seat it
// belongs to (see Decide), but HandleResponse already no-ops on a RequestID
// it doesn't own, so broadcasting to all participants is safe and needs no
// routing metadata on the wire beyond what Decide already sends.
type Router struct {
	participants []*Kafka
}

// NewRouter builds a Router over one game's seat participants. Its
// HandleMessage method satisfies kafka.HandlerFunc, so it can be passed
// directly to a kafka.Consumer's Consume call.
func NewRouter(participants []*Kafka) *Router {
	return &Router{participants: participants}
}

// HandleMessage implements kafka.HandlerFunc: it delivers msg.Value to
// every participant's HandleResponse, stopping at the first hard decode
// error (a malformed message, not an unclaimed RequestID).
func (r *Router) HandleMessage(_ context.Context, msg kafka.Message) error {
	for _, p := range r.participants {
		if err := p.HandleResponse(msg.Value); err != nil {
			return err
		}
	}
	return nil
}
