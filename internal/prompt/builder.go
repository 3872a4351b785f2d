package prompt

import (
	"fmt"
	"strings"

	"werewolf-engine/internal/domain"
)

// StateContext is the rendered Layer 2 snapshot (§4.10): living/dead seats,
// sheriff, day number, and — for werewolf viewers — teammate seats.
type StateContext struct {
	Day        int
	LivingSeats []domain.Seat
	DeadSeats   []domain.Seat
	Sheriff     *domain.Seat
	Names       map[domain.Seat]string

	// Teammates is non-nil only when the viewer is a werewolf (§4.11:
	// "Teammate roster — Werewolf-role seats only").
	Teammates []domain.Seat
}

// SystemPrompt renders Layer 1: pure role rules, no seat/day-specific data,
// cacheable per role (§4.10).
func SystemPrompt(role domain.Role) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are playing Werewolf as a %s.\n", role)
	switch role {
	case domain.RoleWerewolf:
		b.WriteString("Each night your faction collectively chooses one living non-werewolf seat to kill, or no kill.\n")
	case domain.RoleSeer:
		b.WriteString("Each night you check one living seat other than yourself and learn whether it is a Werewolf.\n")
	case domain.RoleWitch:
		b.WriteString("Each night you may pass, save tonight's kill target with your one-use antidote, or poison another living seat with your one-use poison.\n")
	case domain.RoleGuard:
		b.WriteString("Each night you protect one living seat (including yourself) from the werewolf kill. You may not protect the same seat on two consecutive nights.\n")
	case domain.RoleHunter:
		b.WriteString("If you die by werewolf kill or banishment, you may immediately shoot one living seat, who dies as well.\n")
	case domain.RoleOrdinaryVillager:
		b.WriteString("You have no night action. Use the day phase to find the werewolves.\n")
	}
	b.WriteString("Respond using only the option values presented to you.\n")
	return b.String()
}

// RenderStateContext renders Layer 2 (§4.10).
func RenderStateContext(ctx StateContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d.\n", ctx.Day)
	b.WriteString("Living seats: ")
	b.WriteString(formatSeats(ctx.LivingSeats, ctx.Names))
	b.WriteString("\n")
	if len(ctx.DeadSeats) > 0 {
		b.WriteString("Dead seats: ")
		b.WriteString(formatSeats(ctx.DeadSeats, ctx.Names))
		b.WriteString("\n")
	}
	if ctx.Sheriff != nil {
		fmt.Fprintf(&b, "Sheriff: seat %d\n", *ctx.Sheriff)
	} else {
		b.WriteString("No sheriff is currently elected.\n")
	}
	if ctx.Teammates != nil {
		b.WriteString("Your fellow werewolves: ")
		b.WriteString(formatSeats(ctx.Teammates, ctx.Names))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSeats(seats []domain.Seat, names map[domain.Seat]string) string {
	parts := make([]string, 0, len(seats))
	for _, s := range seats {
		if name := names[s]; name != "" {
			parts = append(parts, fmt.Sprintf("%s(seat %d)", name, s))
		} else {
			parts = append(parts, fmt.Sprintf("seat %d", s))
		}
	}
	return strings.Join(parts, ", ")
}

// DecisionPrompt renders Layer 3 twice from the same ChoiceSpec: once as a
// numbered TUI menu, once as an inline LLM option list (§4.10 — "both
// render the same choice set").
type DecisionPrompt struct {
	TUI string
	LLM string
}

// RenderDecision builds Layer 3. hint, if non-empty, is appended unchanged
// to both renderings — used on retries to describe the prior parse failure
// (§4.10: "Retries re-use Layer 1 unchanged and append a hint").
func RenderDecision(spec ChoiceSpec, hint string) DecisionPrompt {
	var tui, llm strings.Builder

	fmt.Fprintf(&tui, "%s\n", spec.Prompt)
	fmt.Fprintf(&llm, "%s\n", spec.Prompt)

	for i, opt := range spec.Options {
		fmt.Fprintf(&tui, "  %d) %s\n", i+1, opt.Display)
		fmt.Fprintf(&llm, "- %s (respond with %q)\n", opt.Display, opt.Value)
	}
	if spec.AllowNone {
		tui.WriteString("  0) skip\n")
		fmt.Fprintf(&llm, "- skip (respond with %q)\n", NoneValue)
	}

	if hint != "" {
		fmt.Fprintf(&tui, "\n%s\n", hint)
		fmt.Fprintf(&llm, "\n%s\n", hint)
	}

	return DecisionPrompt{TUI: tui.String(), LLM: llm.String()}
}
