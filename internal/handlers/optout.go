package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunOptOut gives each post-campaign candidate one more chance to drop out
// (§4.6.1.d). Candidates who stay emit nothing; those who drop out emit a
// SheriffOptOut.
func RunOptOut(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, candidates []domain.Seat) events.SubPhaseLog {
	spec := booleanSpec("Do you want to drop out of the sheriff race?")

	var out []events.GameEvent
	for _, seat := range candidates {
		sys := prompt.SystemPrompt(hctx.Roles[seat])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})
		dropOut := false
		if answer, ok := ask(ctx, participants[seat], sys, state, spec); ok {
			dropOut = answer == answerYes
		}
		if dropOut {
			out = append(out, events.SheriffOptOut{Base: events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseOptOut, Actor: domain.SeatPtr(seat)}})
		}
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseOptOut, Events: out}
}

// RemainingAfterOptOut mirrors RemainingAfterCampaign for the OptOut log.
func RemainingAfterOptOut(candidates []domain.Seat, log events.SubPhaseLog) []domain.Seat {
	return RemainingAfterCampaign(candidates, log)
}
