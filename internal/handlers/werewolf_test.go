package handlers

import (
	"context"
	"testing"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
)

func TestRunWerewolfActionEmitsKillFromLowestLivingWerewolf(t *testing.T) {
	state := newTestState(standardRoles())
	hctx := NewContext(state, nil)
	store := domain.NewNightActionStore()

	log := RunWerewolfAction(context.Background(), hctx, allStub(), store)

	if log.MicroPhase != events.SubPhaseWerewolfAction {
		t.Fatalf("got micro phase %v", log.MicroPhase)
	}
	if len(log.Events) != 1 {
		t.Fatalf("expected exactly one WerewolfKill event, got %d", len(log.Events))
	}
	kill, ok := log.Events[0].(events.WerewolfKill)
	if !ok {
		t.Fatalf("expected WerewolfKill, got %T", log.Events[0])
	}
	if kill.Actor == nil || *kill.Actor != 0 {
		t.Errorf("expected representative seat 0, got %v", kill.Actor)
	}
	if kill.Target == nil {
		t.Fatal("expected a kill target")
	}
	if store.KillTarget == nil || *store.KillTarget != *kill.Target {
		t.Errorf("store.KillTarget should mirror the emitted target")
	}
}

func TestRunWerewolfActionTargetNeverAWerewolf(t *testing.T) {
	state := newTestState(standardRoles())
	hctx := NewContext(state, nil)
	store := domain.NewNightActionStore()

	log := RunWerewolfAction(context.Background(), hctx, allStub(), store)
	kill := log.Events[0].(events.WerewolfKill)

	if kill.Target != nil && hctx.Roles[*kill.Target] == domain.RoleWerewolf {
		t.Error("werewolves must never target a fellow werewolf")
	}
}

func TestRunWerewolfActionEmptyWhenNoLivingWerewolves(t *testing.T) {
	state := newTestState(standardRoles())
	delete(state.Living, 0)
	delete(state.Living, 1)
	delete(state.Living, 2)
	delete(state.Living, 3)
	hctx := NewContext(state, nil)
	store := domain.NewNightActionStore()

	log := RunWerewolfAction(context.Background(), hctx, allStub(), store)
	if len(log.Events) != 0 {
		t.Errorf("expected no events with no living werewolves, got %d", len(log.Events))
	}
	if log.MicroPhase != events.SubPhaseWerewolfAction {
		t.Error("empty log must still be tagged with the right micro phase")
	}
}

func TestRunWerewolfActionPrefersHumanPreferredRepresentative(t *testing.T) {
	state := newTestState(standardRoles())
	hctx := NewContext(state, nil)
	store := domain.NewNightActionStore()

	participants := allStub()
	participants[2] = &humanStub{Stub: *participant.NewStub()}

	log := RunWerewolfAction(context.Background(), hctx, participants, store)
	kill := log.Events[0].(events.WerewolfKill)
	if *kill.Actor != 2 {
		t.Errorf("expected the human-preferred seat 2 to be the representative, got %d", *kill.Actor)
	}
}

type humanStub struct {
	participant.Stub
}

func (h *humanStub) Human() bool { return true }
