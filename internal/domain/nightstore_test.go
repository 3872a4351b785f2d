package domain

import "testing"

func TestNewNightActionStoreIsEmpty(t *testing.T) {
	s := NewNightActionStore()

	if s.AntidoteUsed || s.PoisonUsed {
		t.Error("fresh store should have no potions used")
	}
	if s.PrevGuardTarget != nil {
		t.Error("fresh store should have no previous guard target")
	}
	if len(s.SeerChecks) != 0 {
		t.Error("fresh store should have no seer checks")
	}
}

func TestFreshNightCarriesPersistentFields(t *testing.T) {
	s := NewNightActionStore()
	s.AntidoteUsed = true
	s.PrevGuardTarget = SeatPtr(3)
	s.RecordSeerCheck(2)

	s.KillTarget = SeatPtr(4)
	s.GuardTarget = SeatPtr(3)

	next := s.FreshNight()

	if !next.AntidoteUsed {
		t.Error("antidote_used should persist across nights")
	}
	if next.PoisonUsed {
		t.Error("poison_used should remain false")
	}
	if next.PrevGuardTarget == nil || *next.PrevGuardTarget != 3 {
		t.Fatalf("expected prev_guard_target=3, got %v", next.PrevGuardTarget)
	}
	if !next.HasChecked(2) {
		t.Error("seer checks should persist across nights")
	}

	if next.KillTarget != nil || next.GuardTarget != nil {
		t.Error("ephemeral fields should be cleared for the fresh night")
	}
}

func TestFreshNightDoesNotAliasSeerChecks(t *testing.T) {
	s := NewNightActionStore()
	s.RecordSeerCheck(1)

	next := s.FreshNight()
	next.RecordSeerCheck(9)

	if s.HasChecked(9) {
		t.Error("mutating the fresh store's seer checks should not affect the original")
	}
}

func TestHasCheckedReportsRecordedSeats(t *testing.T) {
	s := NewNightActionStore()
	if s.HasChecked(0) {
		t.Error("fresh store should report no checks")
	}
	s.RecordSeerCheck(0)
	if !s.HasChecked(0) {
		t.Error("expected seat 0 to be recorded as checked")
	}
}
