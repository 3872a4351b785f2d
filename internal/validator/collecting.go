package validator

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
)

// Collecting is the online validator (§4.13): it runs the A–N rule
// registry at each hook and records every violation. It never raises and
// never alters control flow — games run to completion regardless of what
// it records.
type Collecting struct {
	MaxDay     int
	violations []Violation
}

// NewCollecting returns a Collecting validator bounded by maxDay (C.15).
func NewCollecting(maxDay int) *Collecting {
	if maxDay <= 0 {
		maxDay = domain.MaxDay
	}
	return &Collecting{MaxDay: maxDay}
}

func (c *Collecting) record(vs []Violation) {
	c.violations = append(c.violations, vs...)
}

func (c *Collecting) OnGameStart(_ context.Context, _ events.GameStart, state *domain.GameState) {
	c.record(checkGameStart(state))
}

func (c *Collecting) OnPhaseStart(_ context.Context, _ events.Phase, day int, _ *domain.GameState) {
	c.record(checkPhaseOrder(day, c.MaxDay))
}

func (c *Collecting) OnPhaseEnd(_ context.Context, _ events.Phase, _ int, state *domain.GameState) {
	c.record(checkStateConsistency(state))
}

func (c *Collecting) OnSubPhaseStart(context.Context, events.SubPhase, *domain.GameState) {}

func (c *Collecting) OnSubPhaseEnd(_ context.Context, log events.SubPhaseLog, state *domain.GameState) {
	c.record(checkSubPhase(log, state))
}

func (c *Collecting) OnEventApplied(context.Context, events.GameEvent, *domain.GameState) {}

func (c *Collecting) OnDeathChainComplete(_ context.Context, result DeathChainResult, state *domain.GameState) {
	c.record(checkDeathChain(result, state))
}

func (c *Collecting) OnVictoryCheck(_ context.Context, over bool, winner domain.Winner, state *domain.GameState) {
	c.record(checkVictory(over, winner, state))
}

func (c *Collecting) OnGameOver(_ context.Context, _ events.GameOver, state *domain.GameState) {
	c.record(checkStateConsistency(state))
}

func (c *Collecting) Violations() []Violation {
	return append([]Violation(nil), c.violations...)
}

var _ Validator = (*Collecting)(nil)
