package domain

// DeathCause is the reason a seat died (§3).
type DeathCause int

const (
	DeathCauseUnknown DeathCause = iota
	DeathCauseWerewolfKill
	DeathCausePoison
	DeathCauseBanishment
)

func (c DeathCause) String() string {
	switch c {
	case DeathCauseWerewolfKill:
		return "werewolf_kill"
	case DeathCausePoison:
		return "poison"
	case DeathCauseBanishment:
		return "banishment"
	default:
		return "unknown"
	}
}

// ResolveNight is the pure night-action resolver (§4.3). Given the current
// state and the night's store, it returns the set of deaths this night
// produces, keyed by seat. It performs no mutation of state or store.
//
// Algorithm, in order:
//  1. Poison: if poison_target is set and alive, it dies as Poison. Poison
//     ignores the guard.
//  2. Werewolf kill: if kill_target is set and alive, it dies as
//     WerewolfKill unless saved — saved iff antidote_target == kill_target
//     OR guard_target == kill_target (both true still saves).
//  3. If the same seat is both poison_target and kill_target, only Poison
//     is recorded for it.
func ResolveNight(state *GameState, store *NightActionStore) map[Seat]DeathCause {
	deaths := make(map[Seat]DeathCause)

	if store.PoisonTarget != nil && state.IsAlive(*store.PoisonTarget) {
		deaths[*store.PoisonTarget] = DeathCausePoison
	}

	if store.KillTarget != nil && state.IsAlive(*store.KillTarget) {
		target := *store.KillTarget
		if _, alreadyPoisoned := deaths[target]; !alreadyPoisoned {
			saved := (store.AntidoteTarget != nil && *store.AntidoteTarget == target) ||
				(store.GuardTarget != nil && *store.GuardTarget == target)
			if !saved {
				deaths[target] = DeathCauseWerewolfKill
			}
		}
	}

	return deaths
}
