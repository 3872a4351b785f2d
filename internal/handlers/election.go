package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunSheriffElection has every living non-candidate vote for one candidate
// or abstain (H.4: candidates do not vote); raw-count majority wins, a tie
// elects no sheriff.
func RunSheriffElection(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, candidates []domain.Seat) events.SubPhaseLog {
	if len(candidates) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseSheriffElection}
	}

	isCandidate := make(map[domain.Seat]struct{}, len(candidates))
	for _, c := range candidates {
		isCandidate[c] = struct{}{}
	}

	spec := prompt.SeatChoicesFromSeats("Vote for one candidate, or abstain.", candidates, hctx.Names, true)

	votes := make(map[domain.Seat]float64, len(candidates))
	var voteEvents []events.GameEvent
	for _, voter := range hctx.LivingSeats {
		if _, candidate := isCandidate[voter]; candidate {
			continue
		}
		sys := prompt.SystemPrompt(hctx.Roles[voter])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

		var target *domain.Seat
		if answer, ok := ask(ctx, participants[voter], sys, state, spec); ok && answer != prompt.NoneValue {
			if seat, found := prompt.ParseSeat(spec, answer); found {
				target = domain.SeatPtr(seat)
				votes[seat]++
			}
		}
		voteEvents = append(voteEvents, events.Vote{
			Base:   events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseSheriffElection, Actor: domain.SeatPtr(voter)},
			Target: target,
		})
	}

	winner := strictWinner(candidates, votes)
	outcome := events.SheriffOutcome{
		Base:       events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseSheriffElection},
		Candidates: candidates,
		Votes:      votes,
		Winner:     winner,
	}

	out := append(voteEvents, outcome)
	return events.SubPhaseLog{MicroPhase: events.SubPhaseSheriffElection, Events: out}
}

// strictWinner returns the candidate with strictly more votes than every
// other candidate, or nil on a tie for the lead.
func strictWinner(candidates []domain.Seat, votes map[domain.Seat]float64) *domain.Seat {
	var best domain.Seat
	bestVotes := -1.0
	tied := false
	for _, c := range candidates {
		v := votes[c]
		switch {
		case v > bestVotes:
			best, bestVotes, tied = c, v, false
		case v == bestVotes:
			tied = true
		}
	}
	if tied || bestVotes <= 0 {
		return nil
	}
	return domain.SeatPtr(best)
}
