package participant

import (
	"context"
	"testing"

	"werewolf-engine/internal/prompt"
)

func TestSequenceReturnsAnswersInOrder(t *testing.T) {
	p := Sequence("first", "second", "third")
	ctx := context.Background()

	for _, want := range []string{"first", "second", "third"} {
		got, err := p.Decide(ctx, "", "", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, expected %q", got, want)
		}
	}
}

func TestSequenceRepeatsFinalAnswer(t *testing.T) {
	p := Sequence("only")
	ctx := context.Background()

	p.Decide(ctx, "", "", "", nil)
	got, _ := p.Decide(ctx, "", "", "", nil)
	if got != "only" {
		t.Errorf("expected final answer repeated, got %q", got)
	}
}

func TestFuncDelegatesToWrappedFunction(t *testing.T) {
	called := false
	p := NewFunc(func(_ context.Context, _, _, _ string, _ *prompt.ChoiceSpec) (string, error) {
		called = true
		return "answered", nil
	})

	answer, err := p.Decide(context.Background(), "sys", "usr", "hint", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected the wrapped function to be invoked")
	}
	if answer != "answered" {
		t.Errorf("got %q, expected %q", answer, "answered")
	}
}
