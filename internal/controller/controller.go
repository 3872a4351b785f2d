package controller

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/scheduler"
)

// Result is the outcome of a completed playthrough.
type Result struct {
	Log      events.EventLog
	GameOver events.GameOver
	// ForcedEnd is true when play stopped because Day exceeded MaxDay
	// without a natural victory (§4.12), rather than from IsGameOver.
	ForcedEnd bool
}

// Run drives the game to completion: RunNight, then RunDay, alternating
// until a victory condition fires or MaxDay is exceeded. Each finished
// phase's subphases are replayed through g.Validator's OnSubPhaseEnd hook
// before the next OpenPhase call closes it (via EventCollector.OpenPhaseLog,
// since scheduler.RunNight/RunDay don't expose the collector they write
// into).
func Run(ctx context.Context, g *Game) Result {
	for {
		night := scheduler.RunNight(ctx, g.State, g.Names, g.Store, g.Participants, g.Collector)
		g.finishOpenPhase(ctx)
		g.Store = night.Store

		day := scheduler.RunDay(ctx, g.State, g.Names, night, g.Participants, g.Collector)
		g.finishOpenPhase(ctx)

		over, winner := g.State.IsGameOver()
		g.Validator.OnVictoryCheck(ctx, over, winner, g.State)

		if day.Over {
			g.Collector.SetGameOver(day.GameOver)
			g.Validator.OnGameOver(ctx, day.GameOver, g.State)
			g.publish(ctx, day.GameOver)
			return Result{Log: g.Collector.Finalize(), GameOver: day.GameOver}
		}

		g.State.Day++
		if g.State.Day > g.MaxDay {
			forced := forcedGameOver(g.State)
			g.Collector.SetGameOver(forced)
			g.Validator.OnGameOver(ctx, forced, g.State)
			g.publish(ctx, forced)
			return Result{Log: g.Collector.Finalize(), GameOver: forced, ForcedEnd: true}
		}
	}
}

// finishOpenPhase drives OnSubPhaseEnd for every subphase of the phase the
// scheduler just finished, using the current state snapshot, and publishes
// the phase to the event sink if one is attached. Callers call this
// immediately after RunNight/RunDay return, before the next phase's
// OpenPhase call closes it into EventLog.Phases.
func (g *Game) finishOpenPhase(ctx context.Context) {
	log := g.Collector.OpenPhaseLog()
	g.Validator.OnPhaseStart(ctx, log.Phase, log.Number, g.State)
	for _, sub := range log.Subphases {
		g.Validator.OnSubPhaseEnd(ctx, sub, g.State)
	}
	g.Validator.OnPhaseEnd(ctx, log.Phase, log.Number, g.State)
	g.publish(ctx, log)
}

// publish sends payload to the attached sink, if any. Publish errors are
// not fatal to the game itself (§7: the sink is an external observer, not
// part of the rule engine's correctness); they are discarded here and are
// not reported anywhere.
func (g *Game) publish(ctx context.Context, payload any) {
	if g.Sink == nil {
		return
	}
	_ = g.Sink.Publish(ctx, payload)
}

// forcedGameOver builds a tie GameOver for the §4.12 "exceeded MaxDay"
// boundary, since domain.GameState.IsGameOver only reports victory by
// faction elimination, never by day count.
func forcedGameOver(state *domain.GameState) events.GameOver {
	return events.GameOver{
		Base:           events.Base{Day: state.Day, Phase: events.PhaseDay},
		Winner:         nil,
		Condition:      events.VictoryConditionTie,
		FinalTurnCount: state.Day,
	}
}
