package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunSeerAction presents the seer with every living seat but itself
// (G.1/G.2); skip is not allowed (G.3), so an exhausted retry falls back
// to the lowest living non-seer seat rather than emitting nothing.
func RunSeerAction(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, store *domain.NightActionStore) events.SubPhaseLog {
	seers := hctx.livingWithRole(domain.RoleSeer)
	if len(seers) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseSeerAction}
	}
	seer := seers[0]

	choices := hctx.livingExcept(seer)
	if len(choices) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseSeerAction}
	}

	spec := prompt.SeatChoicesFromSeats("Choose a living seat to check.", choices, hctx.Names, false)
	sys := prompt.SystemPrompt(domain.RoleSeer)
	state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

	target := choices[0]
	if answer, ok := ask(ctx, participants[seer], sys, state, spec); ok {
		if seat, found := prompt.ParseSeat(spec, answer); found {
			target = seat
		}
	}
	store.RecordSeerCheck(target)

	result := events.SeerResultGood
	if hctx.Roles[target] == domain.RoleWerewolf {
		result = events.SeerResultWerewolf
	}

	evt := events.SeerAction{
		Base:   events.Base{Day: hctx.Day, Phase: events.PhaseNight, MicroPhase: events.SubPhaseSeerAction, Actor: domain.SeatPtr(seer)},
		Target: target,
		Result: result,
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseSeerAction, Events: []events.GameEvent{evt}}
}
