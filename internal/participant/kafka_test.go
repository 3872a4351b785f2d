package participant

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"werewolf-engine/internal/kafka"
)

type fakeProducer struct {
	published []kafka.Message
}

func (f *fakeProducer) Publish(_ context.Context, msg kafka.Message) error {
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func TestKafkaDecidePublishesRequestAndWaitsForResponse(t *testing.T) {
	producer := &fakeProducer{}
	p := NewKafka(producer, "requests", "game-1", 3)

	done := make(chan struct{})
	var answer string
	var err error
	go func() {
		answer, err = p.Decide(context.Background(), "sys", "usr", "", nil)
		close(done)
	}()

	// Wait for the request to be published, then simulate the remote reply.
	deadline := time.After(time.Second)
	for len(producer.published) == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for published request")
		default:
		}
	}

	var req decisionRequest
	if err := json.Unmarshal(producer.published[0].Value, &req); err != nil {
		t.Fatalf("failed to decode published request: %v", err)
	}

	resp := decisionResponse{RequestID: req.RequestID, Answer: "seat:2"}
	respBytes, _ := json.Marshal(resp)
	if err := p.HandleResponse(respBytes); err != nil {
		t.Fatalf("HandleResponse failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Decide to return")
	}

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "seat:2" {
		t.Errorf("got %q, expected %q", answer, "seat:2")
	}
}

func TestKafkaDecideRespectsContextCancellation(t *testing.T) {
	producer := &fakeProducer{}
	p := NewKafka(producer, "requests", "game-1", 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Decide(ctx, "", "", "", nil)
	if err == nil {
		t.Fatal("expected context deadline error")
	}
}

func TestKafkaHandleResponseIgnoresUnknownRequestID(t *testing.T) {
	p := NewKafka(&fakeProducer{}, "requests", "game-1", 0)

	resp := decisionResponse{RequestID: "no-such-request", Answer: "x"}
	data, _ := json.Marshal(resp)
	if err := p.HandleResponse(data); err != nil {
		t.Fatalf("expected no error for unknown request id, got %v", err)
	}
}

func TestRouterDeliversOnlyToOwningParticipant(t *testing.T) {
	producer := &fakeProducer{}
	seat3 := NewKafka(producer, "requests", "game-1", 3)
	seat7 := NewKafka(producer, "requests", "game-1", 7)
	router := NewRouter([]*Kafka{seat3, seat7})

	done := make(chan struct{})
	var answer string
	var decideErr error
	go func() {
		answer, decideErr = seat3.Decide(context.Background(), "sys", "usr", "", nil)
		close(done)
	}()

	deadline := time.After(time.Second)
	for len(producer.published) == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for published request")
		default:
		}
	}

	var req decisionRequest
	if err := json.Unmarshal(producer.published[0].Value, &req); err != nil {
		t.Fatalf("failed to decode published request: %v", err)
	}

	resp := decisionResponse{RequestID: req.RequestID, Answer: "seat:3"}
	respBytes, _ := json.Marshal(resp)
	if err := router.HandleMessage(context.Background(), kafka.Message{Value: respBytes}); err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Decide to return")
	}

	if decideErr != nil {
		t.Fatalf("unexpected error: %v", decideErr)
	}
	if answer != "seat:3" {
		t.Errorf("got %q, expected %q", answer, "seat:3")
	}

	// seat7 never asked, so the broadcast to it must have been a silent no-op.
	if _, pending := seat7.pending[req.RequestID]; pending {
		t.Error("seat7 should not have a pending request for seat3's RequestID")
	}
}
