// Package scheduler drives the two-layer phase structure of §4.2/§4.6: a
// fixed night scheduler and a day scheduler with a conditional Day-1
// sheriff flow, both built on top of internal/handlers and the collector
// exclusively owned by the controller (§3 "Ownership").
package scheduler

import (
	"context"
	"sort"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/handlers"
	"werewolf-engine/internal/participant"
)

// NightResult carries everything the day scheduler needs that isn't
// recoverable from GameState alone: the seat that held the badge before
// night deaths were applied (needed for Day 1's DeathResolution to still
// recognize a sheriff who died overnight — killSeat clears GameState's
// Sheriff field the instant a death is applied, per §4.9).
type NightResult struct {
	Store               *domain.NightActionStore
	Deaths              map[domain.Seat]domain.DeathCause
	SheriffBeforeDeaths *domain.Seat
}

// RunNight drives one full night (§4.2): WerewolfAction → WitchAction →
// GuardAction → SeerAction → NightResolution against a fresh store built
// from prevStore's persistent snapshot. The resolver's deaths are applied
// to state immediately (bare seat only — no hunter shot or badge transfer
// yet; those sub-queries happen in the following day's DeathResolution,
// §4.7), and the store is snapshotted for the next night.
func RunNight(ctx context.Context, state *domain.GameState, names map[domain.Seat]string, prevStore *domain.NightActionStore, participants map[domain.Seat]participant.Participant, collector *events.EventCollector) NightResult {
	store := prevStore.FreshNight()
	hctx := handlers.NewContext(state, names)

	collector.OpenPhase(events.PhaseNight, state.Day)

	collector.AppendSubPhase(handlers.RunWerewolfAction(ctx, hctx, participants, store))
	collector.AppendSubPhase(handlers.RunWitchAction(ctx, hctx, participants, store))
	collector.AppendSubPhase(handlers.RunGuardAction(ctx, hctx, participants, store))
	collector.AppendSubPhase(handlers.RunSeerAction(ctx, hctx, participants, store))

	deaths := domain.ResolveNight(state, store)
	outcome := events.NightOutcome{
		Base:   events.Base{Day: state.Day, Phase: events.PhaseNight, MicroPhase: events.SubPhaseNightResolution},
		Deaths: deaths,
	}
	collector.AppendSubPhase(events.SubPhaseLog{MicroPhase: events.SubPhaseNightResolution, Events: []events.GameEvent{outcome}})

	sheriffBefore := state.Sheriff
	applyBareDeaths(state, deaths)

	store.PrevGuardTarget = store.GuardTarget
	return NightResult{Store: store, Deaths: deaths, SheriffBeforeDeaths: sheriffBefore}
}

// applyBareDeaths marks each dying seat dead with no hunter shot or badge
// transfer — those fields are only known after the Day scheduler's
// DeathResolution handler runs its sub-queries.
func applyBareDeaths(state *domain.GameState, deaths map[domain.Seat]domain.DeathCause) {
	seats := make([]domain.Seat, 0, len(deaths))
	for s := range deaths {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i] < seats[j] })

	apps := make([]domain.DeathApplication, 0, len(seats))
	for _, s := range seats {
		apps = append(apps, domain.DeathApplication{Seat: s})
	}
	state.ApplyDeaths(apps)
}
