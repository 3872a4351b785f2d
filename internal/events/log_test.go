package events

import "testing"

func TestEventCollectorAppendsSubPhaseToOpenPhase(t *testing.T) {
	c := NewEventCollector()
	c.OpenPhase(PhaseNight, 1)

	if err := c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseWerewolfAction}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := c.Finalize()
	if len(log.Phases) != 1 {
		t.Fatalf("expected the open phase to surface via Finalize, got %d phases", len(log.Phases))
	}
	if len(log.Phases[0].Subphases) != 1 {
		t.Fatalf("expected one subphase, got %d", len(log.Phases[0].Subphases))
	}
}

func TestEventCollectorAppendSubPhaseWithoutOpenPhaseErrors(t *testing.T) {
	c := NewEventCollector()
	if err := c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseVoting}); err == nil {
		t.Error("expected error appending subphase with no open phase")
	}
}

func TestEventCollectorClosesPreviousPhaseOnOpen(t *testing.T) {
	c := NewEventCollector()
	c.OpenPhase(PhaseNight, 1)
	c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseWerewolfAction})
	c.OpenPhase(PhaseDay, 1)
	c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseDiscussion})

	log := c.Finalize()
	if len(log.Phases) != 2 {
		t.Fatalf("expected 2 closed phases, got %d", len(log.Phases))
	}
	if log.Phases[0].Phase != PhaseNight || log.Phases[1].Phase != PhaseDay {
		t.Errorf("phases out of order: %+v", log.Phases)
	}
}

func TestEventCollectorGameStartOnlyOnce(t *testing.T) {
	c := NewEventCollector()
	if err := c.SetGameStart(GameStart{PlayerCount: 12}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetGameStart(GameStart{PlayerCount: 12}); err == nil {
		t.Error("expected error setting game_start twice")
	}
}

func TestEventCollectorGameOverClosesOpenPhase(t *testing.T) {
	c := NewEventCollector()
	c.OpenPhase(PhaseDay, 1)
	c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseVoting})

	if err := c.SetGameOver(GameOver{Condition: VictoryConditionVillager}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log := c.Finalize()
	if log.GameOver == nil {
		t.Fatal("expected game_over to be recorded")
	}
	if len(log.Phases) != 1 {
		t.Fatalf("expected the in-progress phase closed into the log, got %d phases", len(log.Phases))
	}
}

func TestEventCollectorOpenPhaseLogReflectsUnclosedPhase(t *testing.T) {
	c := NewEventCollector()
	if got := c.OpenPhaseLog(); got.Phase != PhaseUnknown {
		t.Errorf("expected a zero PhaseLog with nothing open, got %+v", got)
	}

	c.OpenPhase(PhaseNight, 1)
	c.AppendSubPhase(SubPhaseLog{MicroPhase: SubPhaseWerewolfAction})

	got := c.OpenPhaseLog()
	if got.Phase != PhaseNight || got.Number != 1 {
		t.Fatalf("expected the open night phase, got %+v", got)
	}
	if len(got.Subphases) != 1 {
		t.Fatalf("expected 1 subphase, got %d", len(got.Subphases))
	}

	c.OpenPhase(PhaseDay, 1)
	if got := c.OpenPhaseLog(); got.Phase != PhaseDay || len(got.Subphases) != 0 {
		t.Errorf("expected a fresh empty day phase after OpenPhase, got %+v", got)
	}
}

func TestEventCollectorGameOverOnlyOnce(t *testing.T) {
	c := NewEventCollector()
	if err := c.SetGameOver(GameOver{Condition: VictoryConditionTie}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetGameOver(GameOver{Condition: VictoryConditionTie}); err == nil {
		t.Error("expected error setting game_over twice")
	}
}
