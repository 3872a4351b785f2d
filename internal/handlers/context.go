// Package handlers implements the per-subphase handlers of §4.4–§4.9: one
// function per micro-phase, each building prompt layers, querying the
// relevant participants, and emitting a SubPhaseLog. Handlers never mutate
// GameState directly — they return events and, where the subphase calls for
// it, write to the NightActionStore passed in (§3 "Ownership"). GameState
// mutation happens exclusively in the scheduler via domain.ApplyDeaths.
package handlers

import (
	"sort"

	"werewolf-engine/internal/domain"
)

// Context is the immutable per-call snapshot every handler reads from
// (§4.4: "context is an immutable snapshot of (players, living, dead,
// sheriff, day)"). Roles is included because several handlers need a
// seat's true role (finding the living seer, resolving a seer check,
// detecting a dying Hunter) without reaching into GameState themselves.
type Context struct {
	Day         int
	LivingSeats []domain.Seat
	DeadSeats   []domain.Seat
	Sheriff     *domain.Seat
	Names       map[domain.Seat]string
	Roles       map[domain.Seat]domain.Role
}

// NewContext snapshots state into a Context. Handlers never hold a pointer
// to the live GameState, so later mutation of state cannot change a
// snapshot a handler is already working from.
func NewContext(state *domain.GameState, names map[domain.Seat]string) Context {
	roles := make(map[domain.Seat]domain.Role, len(state.Players))
	for seat, p := range state.Players {
		roles[seat] = p.Role
	}
	return Context{
		Day:         state.Day,
		LivingSeats: state.LivingSeats(),
		DeadSeats:   sortedDead(state),
		Sheriff:     state.Sheriff,
		Names:       names,
		Roles:       roles,
	}
}

func sortedDead(state *domain.GameState) []domain.Seat {
	out := make([]domain.Seat, 0, len(state.Dead))
	for s := range state.Dead {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// isLiving reports whether seat is in c.LivingSeats.
func (c Context) isLiving(seat domain.Seat) bool {
	for _, s := range c.LivingSeats {
		if s == seat {
			return true
		}
	}
	return false
}

// livingWithRole returns every living seat holding role, ascending.
func (c Context) livingWithRole(role domain.Role) []domain.Seat {
	var out []domain.Seat
	for _, s := range c.LivingSeats {
		if c.Roles[s] == role {
			out = append(out, s)
		}
	}
	return out
}

// seatsWithRole returns every seat (living or dead) holding role, ascending
// — used for the werewolf teammate roster, which is not affected by death
// (§4.11: "Teammate roster — Werewolf-role seats only").
func (c Context) seatsWithRole(role domain.Role) []domain.Seat {
	var out []domain.Seat
	for s, r := range c.Roles {
		if r == role {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// livingExcept returns every living seat other than the given ones.
func (c Context) livingExcept(exclude ...domain.Seat) []domain.Seat {
	skip := make(map[domain.Seat]struct{}, len(exclude))
	for _, s := range exclude {
		skip[s] = struct{}{}
	}
	var out []domain.Seat
	for _, s := range c.LivingSeats {
		if _, ok := skip[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func nameOrEmpty(names map[domain.Seat]string, seat domain.Seat) string {
	if names == nil {
		return ""
	}
	return names[seat]
}
