package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// sheriffVoteWeight and normalVoteWeight implement J.2/H.5: the sheriff's
// vote counts 1.5, every other living voter counts 1.0.
const (
	sheriffVoteWeight = 1.5
	normalVoteWeight  = 1.0
)

// RunVoting has every living seat vote to banish one living seat or
// abstain, weighted by sheriffVoteWeight/normalVoteWeight, and emits the
// resulting Banishment alongside the individual Vote events (J.2/C.14: a
// strict plurality banishes; a tie banishes no one).
func RunVoting(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant) events.SubPhaseLog {
	spec := prompt.SeatChoicesFromSeats("Vote to banish a living seat, or abstain.", hctx.LivingSeats, hctx.Names, true)

	votes := make(map[domain.Seat]float64)
	var voteEvents []events.GameEvent
	for _, voter := range hctx.LivingSeats {
		weight := normalVoteWeight
		if hctx.Sheriff != nil && *hctx.Sheriff == voter {
			weight = sheriffVoteWeight
		}

		sys := prompt.SystemPrompt(hctx.Roles[voter])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

		var target *domain.Seat
		if answer, ok := ask(ctx, participants[voter], sys, state, spec); ok && answer != prompt.NoneValue {
			if seat, found := prompt.ParseSeat(spec, answer); found {
				target = domain.SeatPtr(seat)
				votes[seat] += weight
			}
		}
		voteEvents = append(voteEvents, events.Vote{
			Base:   events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseVoting, Actor: domain.SeatPtr(voter)},
			Target: target,
		})
	}

	banished, tied := strictBanishment(hctx.LivingSeats, votes)
	banishment := events.Banishment{
		Base:        events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseVoting},
		Votes:       votes,
		TiedPlayers: tied,
		Banished:    banished,
	}

	out := append(voteEvents, banishment)
	return events.SubPhaseLog{MicroPhase: events.SubPhaseVoting, Events: out}
}

// strictBanishment returns the seat with strictly the highest weighted
// vote sum, or nil plus the tied seats when two or more seats share the
// lead (only seats with a nonzero tally are eligible).
func strictBanishment(livingSeats []domain.Seat, votes map[domain.Seat]float64) (*domain.Seat, []domain.Seat) {
	best := -1.0
	for _, s := range livingSeats {
		if v := votes[s]; v > best {
			best = v
		}
	}
	if best <= 0 {
		return nil, nil
	}

	var leaders []domain.Seat
	for _, s := range livingSeats {
		if votes[s] == best {
			leaders = append(leaders, s)
		}
	}
	if len(leaders) != 1 {
		return nil, leaders
	}
	return domain.SeatPtr(leaders[0]), nil
}
