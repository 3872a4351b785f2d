package validator

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
)

// NoOp is the zero-overhead production validator (§4.13): every hook is a
// no-op, specialized away by the compiler at each call site's inlining.
type NoOp struct{}

func (NoOp) OnGameStart(context.Context, events.GameStart, *domain.GameState)             {}
func (NoOp) OnPhaseStart(context.Context, events.Phase, int, *domain.GameState)            {}
func (NoOp) OnPhaseEnd(context.Context, events.Phase, int, *domain.GameState)              {}
func (NoOp) OnSubPhaseStart(context.Context, events.SubPhase, *domain.GameState)           {}
func (NoOp) OnSubPhaseEnd(context.Context, events.SubPhaseLog, *domain.GameState)          {}
func (NoOp) OnEventApplied(context.Context, events.GameEvent, *domain.GameState)           {}
func (NoOp) OnDeathChainComplete(context.Context, DeathChainResult, *domain.GameState)     {}
func (NoOp) OnVictoryCheck(context.Context, bool, domain.Winner, *domain.GameState)        {}
func (NoOp) OnGameOver(context.Context, events.GameOver, *domain.GameState)                {}
func (NoOp) Violations() []Violation                                                      { return nil }

var _ Validator = NoOp{}
