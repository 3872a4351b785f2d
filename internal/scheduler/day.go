package scheduler

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/handlers"
	"werewolf-engine/internal/participant"
)

// DayResult reports whether the day's events ended the game. GameOver is
// only meaningful when Over is true.
type DayResult struct {
	Over     bool
	GameOver events.GameOver
}

// RunDay drives one day (§4.6): the Day-1 sheriff flow when applicable,
// DeathResolution for the night's inherited deaths, Discussion, Voting, and
// BanishmentResolution when a banishment occurred. It checks victory after
// every state-mutating step and stops at the first one that ends the game,
// rather than waiting for the nominal step 6 — this is how boundary
// scenario S1 (all werewolves eliminated mid-Day-1) ends the game without
// running Discussion/Voting that no longer matter.
func RunDay(ctx context.Context, state *domain.GameState, names map[domain.Seat]string, night NightResult, participants map[domain.Seat]participant.Participant, collector *events.EventCollector) DayResult {
	collector.OpenPhase(events.PhaseDay, state.Day)

	if state.Day == 1 {
		runSheriffFlow(ctx, state, names, participants, collector)
	}

	if len(night.Deaths) > 0 {
		deathCtx := handlers.NewContext(state, names)
		deathCtx.Sheriff = night.SheriffBeforeDeaths

		log := handlers.RunDeathResolution(ctx, deathCtx, participants, night.Deaths)
		collector.AppendSubPhase(log)
		state.ApplyDeaths(deathApplications(log))

		if over, gameOver := checkVictory(state); over {
			return DayResult{Over: true, GameOver: gameOver}
		}
	}

	discussionCtx := handlers.NewContext(state, names)
	collector.AppendSubPhase(handlers.RunDiscussion(ctx, discussionCtx, participants))

	votingCtx := handlers.NewContext(state, names)
	votingLog := handlers.RunVoting(ctx, votingCtx, participants)
	collector.AppendSubPhase(votingLog)

	banished := banishedSeat(votingLog)
	if banished != nil {
		banishCtx := handlers.NewContext(state, names)
		banishLog := handlers.RunBanishmentResolution(ctx, banishCtx, participants, *banished)
		collector.AppendSubPhase(banishLog)
		state.ApplyDeaths(deathApplications(banishLog))
	}

	if over, gameOver := checkVictory(state); over {
		return DayResult{Over: true, GameOver: gameOver}
	}
	return DayResult{Over: false}
}

// runSheriffFlow drives §4.6.1: Nomination, and only when at least one seat
// is running, Campaign → OptOut → SheriffElection.
func runSheriffFlow(ctx context.Context, state *domain.GameState, names map[domain.Seat]string, participants map[domain.Seat]participant.Participant, collector *events.EventCollector) {
	hctx := handlers.NewContext(state, names)

	nominationLog := handlers.RunNomination(ctx, hctx, participants)
	collector.AppendSubPhase(nominationLog)

	candidates := handlers.Candidates(nominationLog)
	if len(candidates) == 0 {
		return
	}

	campaignLog := handlers.RunCampaign(ctx, hctx, participants, candidates)
	collector.AppendSubPhase(campaignLog)
	remaining := handlers.RemainingAfterCampaign(candidates, campaignLog)

	optOutLog := handlers.RunOptOut(ctx, hctx, participants, remaining)
	collector.AppendSubPhase(optOutLog)
	remaining = handlers.RemainingAfterOptOut(remaining, optOutLog)

	electionLog := handlers.RunSheriffElection(ctx, hctx, participants, remaining)
	collector.AppendSubPhase(electionLog)

	for _, e := range electionLog.Events {
		if outcome, ok := e.(events.SheriffOutcome); ok && outcome.Winner != nil {
			state.SetSheriffDay1(*outcome.Winner)
		}
	}
}

func banishedSeat(log events.SubPhaseLog) *domain.Seat {
	for _, e := range log.Events {
		if b, ok := e.(events.Banishment); ok {
			return b.Banished
		}
	}
	return nil
}
