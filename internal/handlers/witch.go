package handlers

import (
	"context"
	"fmt"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/prompt"
)

// RunWitchAction presents the witch with the night's kill target and the
// three filtered actions of §4.5, then updates store's ephemeral target
// and *_used flag on a successful potion use.
func RunWitchAction(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, store *domain.NightActionStore) events.SubPhaseLog {
	witches := hctx.livingWithRole(domain.RoleWitch)
	if len(witches) == 0 {
		return events.SubPhaseLog{MicroPhase: events.SubPhaseWitchAction}
	}
	witch := witches[0]

	var options []prompt.Option
	options = append(options, prompt.Option{Value: "pass", Display: "pass"})

	killTarget := store.KillTarget
	canAntidote := !store.AntidoteUsed && killTarget != nil && *killTarget != witch
	if canAntidote {
		options = append(options, prompt.Option{Value: "antidote", Display: fmt.Sprintf("save seat %d with the antidote", *killTarget), SeatHint: killTarget})
	}

	var poisonSeats []domain.Seat
	if !store.PoisonUsed {
		poisonSeats = hctx.livingExcept(witch)
	}
	for _, s := range poisonSeats {
		seat := s
		options = append(options, prompt.Option{Value: "poison:" + seatToken(seat), Display: fmt.Sprintf("poison seat %d", seat), SeatHint: &seat})
	}

	spec := prompt.ChoiceSpec{Kind: prompt.ChoiceKindAction, Prompt: "Choose your night action.", Options: options}
	sys := prompt.SystemPrompt(domain.RoleWitch)
	state := prompt.RenderStateContext(prompt.StateContext{Day: hctx.Day, LivingSeats: hctx.LivingSeats, DeadSeats: hctx.DeadSeats, Sheriff: hctx.Sheriff, Names: hctx.Names})

	kind := events.WitchActionUnknown
	var target *domain.Seat

	answer, ok := ask(ctx, participants[witch], sys, state, spec)
	if !ok {
		answer = "pass"
	}
	switch {
	case answer == "pass":
		kind = events.WitchActionPass
	case answer == "antidote" && canAntidote:
		kind = events.WitchActionAntidote
		target = killTarget
		store.AntidoteTarget = killTarget
		store.AntidoteUsed = true
	default:
		if opt, found := findOption(spec, answer); found && opt.SeatHint != nil && opt.Value != "antidote" {
			kind = events.WitchActionPoison
			seat := *opt.SeatHint
			target = &seat
			store.PoisonTarget = &seat
			store.PoisonUsed = true
		} else {
			kind = events.WitchActionPass
		}
	}

	evt := events.WitchAction{
		Base:   events.Base{Day: hctx.Day, Phase: events.PhaseNight, MicroPhase: events.SubPhaseWitchAction, Actor: domain.SeatPtr(witch)},
		Kind:   kind,
		Target: target,
	}
	return events.SubPhaseLog{MicroPhase: events.SubPhaseWitchAction, Events: []events.GameEvent{evt}}
}

func seatToken(seat domain.Seat) string {
	return fmt.Sprintf("seat:%d", seat)
}
