package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunCampaign asks each candidate, in seat order, whether it stays in the
// race; a candidate that stays gives a free-text speech (§4.6.1.c).
// Opt-outs emit no Speech.
func RunCampaign(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, candidates []domain.Seat) events.SubPhaseLog {
	stayOrOptOut := prompt.ChoiceSpec{
		Kind:   prompt.ChoiceKindBoolean,
		Prompt: "Do you want to stay in the sheriff race?",
		Options: []prompt.Option{
			{Value: "stay", Display: "stay in the race"},
			{Value: "opt-out", Display: "drop out"},
		},
	}

	var out []events.GameEvent
	for _, seat := range candidates {
		sys := prompt.SystemPrompt(hctx.Roles[seat])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

		stay := true
		if answer, ok := ask(ctx, participants[seat], sys, state, stayOrOptOut); ok {
			stay = answer == "stay"
		}
		if !stay {
			out = append(out, events.SheriffOptOut{Base: events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseCampaign, Actor: domain.SeatPtr(seat)}})
			continue
		}

		speech, ok := askText(ctx, participants[seat], sys, state, "Give your campaign speech.")
		if !ok {
			speech = "(no comment)"
		}
		out = append(out, events.Speech{
			Base:    events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseCampaign, Actor: domain.SeatPtr(seat)},
			Content: speech,
		})
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseCampaign, Events: out}
}

// RemainingAfterCampaign returns the candidates who did not opt out during
// Campaign, preserving candidates' original order.
func RemainingAfterCampaign(candidates []domain.Seat, log events.SubPhaseLog) []domain.Seat {
	optedOut := make(map[domain.Seat]struct{})
	for _, e := range log.Events {
		if oo, ok := e.(events.SheriffOptOut); ok {
			optedOut[*oo.Actor] = struct{}{}
		}
	}
	var out []domain.Seat
	for _, c := range candidates {
		if _, dropped := optedOut[c]; !dropped {
			out = append(out, c)
		}
	}
	return out
}
