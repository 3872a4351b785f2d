package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// HumanPreferred is an optional capability a Participant implementation may
// expose to mark itself as the preferred representative for the collective
// werewolf decision (§4.5: "human preferred; otherwise lowest living
// seat"). None of the stock participants (Stub, Func, Kafka) implement it,
// so the representative defaults to the lowest living werewolf seat.
type HumanPreferred interface {
	Human() bool
}

// RunWerewolfAction queries a single representative werewolf for the
// collective kill decision — one query, not a tally (rule C.16) — and
// records the chosen target as store.KillTarget for the resolver (§4.3).
func RunWerewolfAction(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, store *domain.NightActionStore) events.SubPhaseLog {
	werewolves := hctx.livingWithRole(domain.RoleWerewolf)
	if len(werewolves) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseWerewolfAction}
	}

	rep := representative(werewolves, participants)

	targets := hctx.livingExcept(rep)
	var nonWerewolfTargets []domain.Seat
	for _, s := range targets {
		if hctx.Roles[s] != domain.RoleWerewolf {
			nonWerewolfTargets = append(nonWerewolfTargets, s)
		}
	}

	spec := prompt.SeatChoicesFromSeats("Choose a living seat for your faction to kill tonight, or no kill.", nonWerewolfTargets, hctx.Names, true)
	sys := prompt.SystemPrompt(domain.RoleWerewolf)
	state := prompt.RenderStateContext(prompt.StateContext{
		Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats,
		Sheriff: hctx.Sheriff, Names: hctx.Names, Teammates: hctx.seatsWithRole(domain.RoleWerewolf),
	})

	var target *domain.Seat
	answer, ok := ask(ctx, participants[rep], sys, state, spec)
	if ok && answer != prompt.NoneValue {
		if seat, found := prompt.ParseSeat(spec, answer); found {
			target = domain.SeatPtr(seat)
		}
	}
	store.KillTarget = target

	evt := events.WerewolfKill{
		Base:   events.Base{Day: hctx.Day, Phase: events.PhaseNight, MicroPhase: events.SubPhaseWerewolfAction, Actor: domain.SeatPtr(rep)},
		Target: target,
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseWerewolfAction, Events: []events.GameEvent{evt}}
}

// representative picks the werewolf to query: the first one whose
// Participant reports itself human-preferred, else the lowest living seat.
func representative(werewolves []domain.Seat, participants map[domain.Seat]participant.Participant) domain.Seat {
	for _, seat := range werewolves {
		if hp, ok := participants[seat].(HumanPreferred); ok && hp.Human() {
			return seat
		}
	}
	return werewolves[0]
}
