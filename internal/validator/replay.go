package validator

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
)

// Replay reconstructs GameState from a finalized EventLog and applies the
// same A–N rule registry independently of whatever ran online (§4.13: "a
// post-game validator reconstructs state by replaying the emitted log and
// applies the same rule set independently"). It returns the violations the
// replay observed; callers compare these against the online validator's
// Violations() modulo the non-coverage documented in rules.go (F.3 is not
// checked by this package; internal/handlers/guard.go enforces it).
func Replay(ctx context.Context, log events.EventLog, maxDay int) []Violation {
	if log.GameStart == nil {
		return nil
	}
	state := stateFromGameStart(*log.GameStart)
	v := NewCollecting(maxDay)

	v.OnGameStart(ctx, *log.GameStart, state)

	for _, phaseLog := range log.Phases {
		state.Day = phaseLog.Number
		v.OnPhaseStart(ctx, phaseLog.Phase, phaseLog.Number, state)
		for _, sub := range phaseLog.Subphases {
			applySubPhase(state, sub)
			v.OnSubPhaseEnd(ctx, sub, state)
		}
		v.OnPhaseEnd(ctx, phaseLog.Phase, phaseLog.Number, state)
	}

	if log.GameOver != nil {
		over, winner := state.IsGameOver()
		v.OnVictoryCheck(ctx, over, winner, state)
		v.OnGameOver(ctx, *log.GameOver, state)
	}

	return v.Violations()
}

func stateFromGameStart(start events.GameStart) *domain.GameState {
	state := &domain.GameState{
		Day:     1,
		Players: make(map[domain.Seat]*domain.Player, len(start.RolesSecret)),
		Living:  make(map[domain.Seat]struct{}, len(start.RolesSecret)),
		Dead:    make(map[domain.Seat]struct{}),
	}
	for seat, role := range start.RolesSecret {
		state.Players[seat] = &domain.Player{Seat: seat, Role: role, Alive: true}
		state.Living[seat] = struct{}{}
	}
	return state
}

// applySubPhase folds the side effects a live controller would have
// applied to state while this subphase's events were produced: night
// deaths, death-resolution/banishment-resolution deaths (with hunter shot
// and badge transfer), and a Day-1 sheriff election outcome.
func applySubPhase(state *domain.GameState, sub events.SubPhaseLog) {
	switch sub.MicroPhase {
	case events.SubPhaseNightResolution:
		for _, e := range sub.Events {
			if outcome, ok := e.(events.NightOutcome); ok {
				applyBareDeaths(state, outcome.Deaths)
			}
		}
	case events.SubPhaseDeathResolution, events.SubPhaseBanishmentResolution:
		applyDeathEvents(state, sub.Events)
	case events.SubPhaseSheriffElection:
		for _, e := range sub.Events {
			if outcome, ok := e.(events.SheriffOutcome); ok && outcome.Winner != nil {
				state.SetSheriffDay1(*outcome.Winner)
			}
		}
	}
}

func applyBareDeaths(state *domain.GameState, deaths map[domain.Seat]domain.DeathCause) {
	apps := make([]domain.DeathApplication, 0, len(deaths))
	for seat := range deaths {
		apps = append(apps, domain.DeathApplication{Seat: seat})
	}
	state.ApplyDeaths(apps)
}

func applyDeathEvents(state *domain.GameState, evs []events.GameEvent) {
	apps := make([]domain.DeathApplication, 0, len(evs))
	for _, e := range evs {
		d, ok := e.(events.DeathEvent)
		if !ok {
			continue
		}
		apps = append(apps, domain.DeathApplication{
			Seat:              *d.Actor,
			BadgeTransferTo:   d.BadgeTransferTo,
			HunterShootTarget: d.HunterShootTarget,
		})
	}
	state.ApplyDeaths(apps)
}
