package handlers

import (
	"context"
	"sort"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunDeathResolution resolves every seat in deaths, seat-ascending, through
// the fixed hunter-shot → badge-transfer → last-words sub-query order of
// §4.7. Night deaths are resolved here, on the following day, so badge
// transfer and speech occur in the public day context.
func RunDeathResolution(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, deaths map[domain.Seat]domain.DeathCause) events.SubPhaseLog {
	seats := make([]domain.Seat, 0, len(deaths))
	for s := range deaths {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i] < seats[j] })

	var out []events.GameEvent
	for _, seat := range seats {
		out = append(out, resolveOneDeath(ctx, hctx, participants, seat, deaths[seat], events.SubPhaseDeathResolution))
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseDeathResolution, Events: out}
}

// resolveOneDeath issues the hunter-shot, badge-transfer, and last-words
// sub-queries for a single dying seat, in that fixed order (§4.7), and
// returns its single DeathEvent. The chained hunter-shot victim receives no
// sub-queries of its own within this subphase (§4.8: depth-1 cap).
func resolveOneDeath(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, seat domain.Seat, cause domain.DeathCause, micro events.SubPhase) events.GameEvent {
	role := hctx.Roles[seat]

	var hunterShot *domain.Seat
	if role == domain.RoleHunter && (cause == domain.DeathCauseWerewolfKill || cause == domain.DeathCauseBanishment) {
		choices := hctx.livingExcept(seat)
		if len(choices) > 0 {
			spec := prompt.SeatChoicesFromSeats("You may shoot one living seat as you die.", choices, hctx.Names, true)
			sys := prompt.SystemPrompt(role)
			state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})
			if answer, ok := ask(ctx, participants[seat], sys, state, spec); ok && answer != prompt.NoneValue {
				if target, found := prompt.ParseSeat(spec, answer); found {
					hunterShot = domain.SeatPtr(target)
				}
			}
		}
	}

	var badgeTransferTo *domain.Seat
	if hctx.Sheriff != nil && *hctx.Sheriff == seat {
		choices := hctx.livingExcept(seat)
		if len(choices) > 0 {
			spec := prompt.SeatChoicesFromSeats("Choose a living seat to receive the sheriff badge, or let it retire.", choices, hctx.Names, true)
			sys := prompt.SystemPrompt(role)
			state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})
			if answer, ok := ask(ctx, participants[seat], sys, state, spec); ok && answer != prompt.NoneValue {
				if target, found := prompt.ParseSeat(spec, answer); found {
					badgeTransferTo = domain.SeatPtr(target)
				}
			}
		}
	}

	var lastWords *string
	if (cause != domain.DeathCauseBanishment && hctx.Day == 1) || cause == domain.DeathCauseBanishment {
		sys := prompt.SystemPrompt(role)
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})
		if words, ok := askText(ctx, participants[seat], sys, state, "You may leave final words."); ok {
			lastWords = &words
		}
	}

	return events.DeathEvent{
		Base:              events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: micro, Actor: domain.SeatPtr(seat)},
		Cause:             cause,
		LastWords:         lastWords,
		HunterShootTarget: hunterShot,
		BadgeTransferTo:   badgeTransferTo,
	}
}
