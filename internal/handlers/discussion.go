package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunDiscussion has every living seat speak once, with the sheriff (if any)
// speaking last (§4.6.3). The source's clockwise/counterclockwise direction
// choice is never observable in the emitted log (§9 open question), so it
// is not represented here; the seat order is otherwise ascending.
func RunDiscussion(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant) events.SubPhaseLog {
	order := speakingOrder(hctx)

	var out []events.GameEvent
	for _, seat := range order {
		sys := prompt.SystemPrompt(hctx.Roles[seat])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

		content, ok := askText(ctx, participants[seat], sys, state, "Share your thoughts with the table.")
		if !ok {
			content = "(no comment)"
		}
		out = append(out, events.Speech{
			Base:    events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseDiscussion, Actor: domain.SeatPtr(seat)},
			Content: content,
		})
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseDiscussion, Events: out}
}

func speakingOrder(hctx Context) []domain.Seat {
	order := make([]domain.Seat, 0, len(hctx.LivingSeats))
	var sheriff domain.Seat
	hasSheriff := false
	for _, s := range hctx.LivingSeats {
		if hctx.Sheriff != nil && *hctx.Sheriff == s {
			sheriff, hasSheriff = s, true
			continue
		}
		order = append(order, s)
	}
	if hasSheriff {
		order = append(order, sheriff)
	}
	return order
}
