package validator

import (
	"fmt"
	"sort"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
)

// checkGameStart runs the B (initialization) rules against the freshly
// assigned state (§3 "role counts match the config for the game's
// lifetime").
func checkGameStart(state *domain.GameState) []Violation {
	var out []Violation
	for role, want := range domain.StandardRoleDistribution() {
		if got := state.RoleCount(role); got != want {
			out = append(out, Violation{
				RuleID: "B.1", Category: CategoryInitialization, Severity: SeverityError,
				Message: fmt.Sprintf("expected %d %s, got %d", want, role, got),
			})
		}
	}
	return out
}

// checkPhaseOrder enforces C.15: the controller must not run past the
// configured day bound.
func checkPhaseOrder(day int, maxDay int) []Violation {
	if day > maxDay {
		return []Violation{{
			RuleID: "C.15", Category: CategoryPhaseOrder, Severity: SeverityError,
			Message: fmt.Sprintf("day %d exceeds max day %d", day, maxDay),
		}}
	}
	return nil
}

// checkSubPhase applies the per-subphase rule groups D–K that are checkable
// from the emitted SubPhaseLog alone.
func checkSubPhase(log events.SubPhaseLog, state *domain.GameState) []Violation {
	switch log.MicroPhase {
	case events.SubPhaseWerewolfAction:
		return checkWerewolfAction(log)
	case events.SubPhaseWitchAction:
		return checkWitchAction(log)
	case events.SubPhaseGuardAction:
		return checkGuardAction(log)
	case events.SubPhaseSeerAction:
		return checkSeerAction(log)
	case events.SubPhaseNomination:
		return checkNomination(log, state)
	case events.SubPhaseSheriffElection:
		return checkSheriffElection(log)
	case events.SubPhaseVoting:
		return checkVoting(log, state)
	case events.SubPhaseDeathResolution, events.SubPhaseBanishmentResolution:
		return checkDeathEvents(log)
	default:
		return nil
	}
}

// checkWerewolfAction enforces C.16: the collective decision is one query,
// not a tally — exactly one WerewolfKill per subphase.
func checkWerewolfAction(log events.SubPhaseLog) []Violation {
	count := 0
	for _, e := range log.Events {
		if _, ok := e.(events.WerewolfKill); ok {
			count++
		}
	}
	if count > 1 {
		return []Violation{{
			RuleID: "C.16", Category: CategoryPhaseOrder, Severity: SeverityError,
			Message: fmt.Sprintf("werewolf action emitted %d kills, expected at most 1", count),
		}}
	}
	return nil
}

// checkWitchAction enforces E.3/E.4 (antidote never targets the witch's own
// seat) and the general self-target shape of the action.
func checkWitchAction(log events.SubPhaseLog) []Violation {
	var out []Violation
	for _, e := range log.Events {
		wa, ok := e.(events.WitchAction)
		if !ok {
			continue
		}
		if wa.Kind == events.WitchActionAntidote && wa.Target != nil && wa.Actor != nil && *wa.Target == *wa.Actor {
			out = append(out, Violation{
				RuleID: "E.3", Category: CategoryWitch, Severity: SeverityError,
				Message: "antidote may not target the witch's own seat",
			})
		}
		if wa.Kind == events.WitchActionPoison && wa.Target != nil && wa.Actor != nil && *wa.Target == *wa.Actor {
			out = append(out, Violation{
				RuleID: "E.5", Category: CategoryWitch, Severity: SeverityError,
				Message: "poison may not target the witch's own seat",
			})
		}
	}
	return out
}

// checkGuardAction enforces the general shape of F (self-target is allowed
// by rule, unlike the witch). F.3 (no repeat guard target) needs the
// NightActionStore's prev_guard_target, which these hooks do not carry —
// documented non-coverage, §4.13 ("some categories are checked only at one
// site"); internal/handlers/guard.go enforces it structurally instead by
// never offering the excluded seat as a choice.
func checkGuardAction(log events.SubPhaseLog) []Violation {
	return nil
}

// checkSeerAction enforces G.1/G.2: the seer never checks its own seat.
func checkSeerAction(log events.SubPhaseLog) []Violation {
	var out []Violation
	for _, e := range log.Events {
		sa, ok := e.(events.SeerAction)
		if !ok {
			continue
		}
		if sa.Actor != nil && sa.Target == *sa.Actor {
			out = append(out, Violation{
				RuleID: "G.1", Category: CategorySeer, Severity: SeverityError,
				Message: "seer checked its own seat",
			})
		}
	}
	return out
}

// checkNomination enforces H.2: a dead seat may nominate, but a dead seat
// running (running=true) is a recorded violation (§9 open question).
func checkNomination(log events.SubPhaseLog, state *domain.GameState) []Violation {
	if state == nil {
		return nil
	}
	var out []Violation
	for _, e := range log.Events {
		nom, ok := e.(events.SheriffNomination)
		if !ok || !nom.Running || nom.Actor == nil {
			continue
		}
		if !state.IsAlive(*nom.Actor) {
			out = append(out, Violation{
				RuleID: "H.2", Category: CategorySheriff, Severity: SeverityWarning,
				Message: fmt.Sprintf("dead seat %d nominated itself as a running candidate", *nom.Actor),
			})
		}
	}
	return out
}

// checkSheriffElection enforces H.4: candidates do not vote.
func checkSheriffElection(log events.SubPhaseLog) []Violation {
	var candidates map[domain.Seat]struct{}
	for _, e := range log.Events {
		if outcome, ok := e.(events.SheriffOutcome); ok {
			candidates = make(map[domain.Seat]struct{}, len(outcome.Candidates))
			for _, c := range outcome.Candidates {
				candidates[c] = struct{}{}
			}
		}
	}
	var out []Violation
	for _, e := range log.Events {
		v, ok := e.(events.Vote)
		if !ok || v.Actor == nil {
			continue
		}
		if _, isCandidate := candidates[*v.Actor]; isCandidate {
			out = append(out, Violation{
				RuleID: "H.4", Category: CategorySheriff, Severity: SeverityError,
				Message: fmt.Sprintf("candidate seat %d cast a vote in its own election", *v.Actor),
			})
		}
	}
	return out
}

// checkVoting enforces J.2/H.5: the sheriff's ballot weighs 1.5, every
// other living seat 1.0, and a strict-majority tie yields no banishment.
func checkVoting(log events.SubPhaseLog, state *domain.GameState) []Violation {
	var out []Violation
	var banishment *events.Banishment
	tally := make(map[domain.Seat]float64)
	for _, e := range log.Events {
		switch ev := e.(type) {
		case events.Vote:
			if ev.Target == nil || ev.Actor == nil {
				continue
			}
			weight := 1.0
			if state != nil && state.Sheriff != nil && *state.Sheriff == *ev.Actor {
				weight = 1.5
			}
			tally[*ev.Target] += weight
		case events.Banishment:
			b := ev
			banishment = &b
		}
	}
	if banishment == nil {
		return out
	}
	for seat, want := range tally {
		if got := banishment.Votes[seat]; got != want {
			out = append(out, Violation{
				RuleID: "J.2", Category: CategoryVoting, Severity: SeverityError,
				Message: fmt.Sprintf("seat %d tallied %.1f weighted votes, banishment recorded %.1f", seat, want, got),
			})
		}
	}
	best, bestVotes, tied := domain.Seat(-1), -1.0, false
	seats := make([]domain.Seat, 0, len(tally))
	for s := range tally {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i] < seats[j] })
	for _, s := range seats {
		v := tally[s]
		switch {
		case v > bestVotes:
			best, bestVotes, tied = s, v, false
		case v == bestVotes:
			tied = true
		}
	}
	if tied || bestVotes <= 0 {
		if banishment.Banished != nil {
			out = append(out, Violation{
				RuleID: "C.14", Category: CategoryVoting, Severity: SeverityError,
				Message: "a tied or empty vote still produced a banishment",
			})
		}
	} else if banishment.Banished == nil || *banishment.Banished != best {
		out = append(out, Violation{
			RuleID: "J.2", Category: CategoryVoting, Severity: SeverityError,
			Message: fmt.Sprintf("strict majority was seat %d, banishment recorded %v", best, banishment.Banished),
		})
	}
	return out
}

// checkDeathEvents enforces K.1 (no hunter shot on a poison death) and I.4
// (last words present whenever the sub-contract requires them). Last words
// recorded where they are not required are not flagged.
func checkDeathEvents(log events.SubPhaseLog) []Violation {
	var out []Violation
	for _, e := range log.Events {
		d, ok := e.(events.DeathEvent)
		if !ok {
			continue
		}
		if d.Cause == domain.DeathCausePoison && d.HunterShootTarget != nil {
			out = append(out, Violation{
				RuleID: "K.1", Category: CategoryHunter, Severity: SeverityError,
				Message: "hunter shot fired on a poison death",
			})
		}
		wantWords := d.Cause == domain.DeathCauseBanishment || (log.MicroPhase == events.SubPhaseDeathResolution && d.Day == 1)
		if wantWords && (d.LastWords == nil || *d.LastWords == "") {
			out = append(out, Violation{
				RuleID: "I.4", Category: CategoryDeath, Severity: SeverityWarning,
				Message: fmt.Sprintf("seat %d expected last words, none recorded", actorOrNegOne(d)),
			})
		}
	}
	return out
}

func actorOrNegOne(d events.DeathEvent) domain.Seat {
	if d.Actor == nil {
		return -1
	}
	return *d.Actor
}

// checkDeathChain enforces the K.4 depth-1 cap of §4.8 on a completed
// hunter-shot chain. Badge handling is not checked here.
func checkDeathChain(result DeathChainResult, state *domain.GameState) []Violation {
	if result.Chained == nil {
		return nil
	}
	if result.Chained.HunterShootTarget != nil {
		return []Violation{{
			RuleID: "K.4", Category: CategoryHunter, Severity: SeverityError,
			Message: "chained death issued a second hunter shot; chain depth exceeds 1",
		}}
	}
	return nil
}

// checkVictory enforces A: the two victory conditions are evaluated after
// every death and must agree with the state's faction counts.
func checkVictory(over bool, winner domain.Winner, state *domain.GameState) []Violation {
	if state == nil {
		return nil
	}
	werewolvesAlive := state.FactionCount(domain.FactionWerewolf) > 0
	villagersAlive := state.FactionCount(domain.FactionVillager) > 0
	godsAlive := state.FactionCount(domain.FactionGod) > 0
	wantOver := !werewolvesAlive || !villagersAlive || !godsAlive
	if over != wantOver {
		return []Violation{{
			RuleID: "A.1", Category: CategoryVictory, Severity: SeverityError,
			Message: fmt.Sprintf("victory check returned over=%v but faction counts imply %v", over, wantOver),
		}}
	}
	return nil
}

// checkStateConsistency wraps domain.GameState.Invariants() (M.1–M.7) into
// Violations.
func checkStateConsistency(state *domain.GameState) []Violation {
	if state == nil {
		return nil
	}
	var out []Violation
	for _, problem := range state.Invariants() {
		out = append(out, Violation{
			RuleID: "M", Category: CategoryStateConsistency, Severity: SeverityError,
			Message: problem,
		})
	}
	return out
}
