package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunGuardAction presents the guard with every living seat except last
// night's target (F.3), including self, and records the choice in
// store.GuardTarget for the resolver.
func RunGuardAction(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, store *domain.NightActionStore) events.SubPhaseLog {
	guards := hctx.livingWithRole(domain.RoleGuard)
	if len(guards) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseGuardAction}
	}
	guard := guards[0]

	var exclude []domain.Seat
	if store.PrevGuardTarget != nil {
		exclude = append(exclude, *store.PrevGuardTarget)
	}
	choices := hctx.livingExcept(exclude...)

	spec := prompt.SeatChoicesFromSeats("Choose a living seat to protect tonight (you may protect yourself).", choices, hctx.Names, true)
	sys := prompt.SystemPrompt(domain.RoleGuard)
	state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

	var target *domain.Seat
	answer, ok := ask(ctx, participants[guard], sys, state, spec)
	if ok && answer != prompt.NoneValue {
		if seat, found := prompt.ParseSeat(spec, answer); found {
			target = domain.SeatPtr(seat)
		}
	}
	store.GuardTarget = target

	evt := events.GuardAction{
		Base:   events.Base{Day: hctx.Day, Phase: events.PhaseNight, MicroPhase: events.SubPhaseGuardAction, Actor: domain.SeatPtr(guard)},
		Target: target,
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseGuardAction, Events: []events.GameEvent{evt}}
}
