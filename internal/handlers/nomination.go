package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

const (
	answerYes = "yes"
	answerNo  = "no"
)

// RunNomination asks every seat — living and dead alike — whether it runs
// for sheriff (§4.6.1.a: "every seat ... declares run/not-running"). A
// parse failure defaults to not running, the safe choice.
func RunNomination(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant) events.SubPhaseLog {
	all := append(append([]domain.Seat{}, hctx.LivingSeats...), hctx.DeadSeats...)
	sortSeatsAsc(all)

	spec := booleanSpec("Do you want to run for sheriff?")
	var out []events.GameEvent
	for _, seat := range all {
		sys := prompt.SystemPrompt(hctx.Roles[seat])
		state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

		running := false
		if answer, ok := ask(ctx, participants[seat], sys, state, spec); ok {
			running = answer == answerYes
		}
		out = append(out, events.SheriffNomination{
			Base:    events.Base{Day: hctx.Day, Phase: events.PhaseDay, MicroPhase: events.SubPhaseNomination, Actor: domain.SeatPtr(seat)},
			Running: running,
		})
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseNomination, Events: out}
}

// Candidates returns the running seats from a Nomination SubPhaseLog.
func Candidates(log events.SubPhaseLog) []domain.Seat {
	var out []domain.Seat
	for _, e := range log.Events {
		if nom, ok := e.(events.SheriffNomination); ok && nom.Running {
			out = append(out, *nom.Actor)
		}
	}
	return out
}

func booleanSpec(question string) prompt.ChoiceSpec {
	return prompt.ChoiceSpec{
		Kind:   prompt.ChoiceKindBoolean,
		Prompt: question,
		Options: []prompt.Option{
			{Value: answerYes, Display: "yes"},
			{Value: answerNo, Display: "no"},
		},
	}
}

func sortSeatsAsc(seats []domain.Seat) {
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && seats[j-1] > seats[j]; j-- {
			seats[j-1], seats[j] = seats[j], seats[j-1]
		}
	}
}
