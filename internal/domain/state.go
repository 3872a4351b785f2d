// This file contains the live game state struct and its mutation methods.

package domain

import (
	"fmt"
	"math/rand"

	"github.com/xyproto/randomstring"
)

// GameState is the authoritative, in-memory state of one game (§3): a
// mapping seat -> Player, disjoint living/dead seat sets, the current day
// (1-indexed), and an optional sheriff seat. GameState carries no Phase
// field — phase/subphase bookkeeping lives in the event log and the
// schedulers that drive this state, not in the state itself.
type GameState struct {
	// ID is an opaque log-correlation / Kafka-partition-key token. It has
	// no bearing on any invariant or rule.
	ID string

	Day int

	// Players maps seat -> player. Seats are stable for the whole game.
	Players map[Seat]*Player

	Living map[Seat]struct{}
	Dead   map[Seat]struct{}

	// Sheriff is nil when no seat currently holds the badge.
	Sheriff *Seat
}

// NewGameState builds an empty 12-seat game with all seats alive, no
// roles assigned yet (callers must call AssignRoles), day 1, no sheriff.
func NewGameState(idPrefix string) *GameState {
	g := &GameState{
		ID:      CreateGameID(idPrefix),
		Day:     1,
		Players: make(map[Seat]*Player, SeatCount),
		Living:  make(map[Seat]struct{}, SeatCount),
		Dead:    make(map[Seat]struct{}),
	}
	for s := Seat(0); s < SeatCount; s++ {
		g.Players[s] = &Player{Seat: s, Alive: true}
		g.Living[s] = struct{}{}
	}
	return g
}

// CreateGameID creates a random game ID with the given prefix.
// Format: {prefix}-{random-string}, e.g. "game-a3k9m".
func CreateGameID(prefix string) string {
	const idLength = 5
	return fmt.Sprintf("%s-%s", prefix, randomstring.String(idLength))
}

// AssignRoles shuffles the standard role distribution across the 12 seats
// using rng (seedable for determinism, §5). Names, if provided, are
// assigned in seat order; a short name list is fine — it is cosmetic.
func (g *GameState) AssignRoles(rng *rand.Rand, names []string) {
	roles := RoleMultiset(StandardRoleDistribution())
	rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	for s := Seat(0); s < SeatCount && int(s) < len(roles); s++ {
		g.Players[s].Role = roles[s]
		if int(s) < len(names) {
			g.Players[s].Name = names[s]
		}
	}
}

// --- reading game state --- //

// GetPlayer retrieves a player by seat. Returns nil if the seat is unknown.
func (g *GameState) GetPlayer(seat Seat) *Player {
	return g.Players[seat]
}

// IsAlive reports whether seat is currently alive.
func (g *GameState) IsAlive(seat Seat) bool {
	_, ok := g.Living[seat]
	return ok
}

// LivingSeats returns all currently-living seats, ascending.
func (g *GameState) LivingSeats() []Seat {
	out := make([]Seat, 0, len(g.Living))
	for s := range g.Living {
		out = append(out, s)
	}
	sortSeats(out)
	return out
}

// AllSeats returns every seat in the game, ascending.
func (g *GameState) AllSeats() []Seat {
	out := make([]Seat, 0, len(g.Players))
	for s := range g.Players {
		out = append(out, s)
	}
	sortSeats(out)
	return out
}

func sortSeats(seats []Seat) {
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && seats[j-1] > seats[j]; j-- {
			seats[j-1], seats[j] = seats[j], seats[j-1]
		}
	}
}

// RoleCount returns the number of living players holding role.
func (g *GameState) RoleCount(role Role) int {
	count := 0
	for s := range g.Living {
		if p := g.Players[s]; p != nil && p.Role == role {
			count++
		}
	}
	return count
}

// FactionCount returns the number of living players in faction.
func (g *GameState) FactionCount(faction Faction) int {
	count := 0
	for s := range g.Living {
		if p := g.Players[s]; p != nil && p.Role.Faction() == faction {
			count++
		}
	}
	return count
}

// --- mutating game state --- //

// DeathApplication describes one death to fold into state via ApplyDeaths.
// It mirrors the fields of events.DeathEvent that affect GameState, kept
// free of any dependency on the events package (see package doc).
type DeathApplication struct {
	Seat              Seat
	BadgeTransferTo   *Seat
	HunterShootTarget *Seat
}

// ApplyDeaths folds a batch of deaths into state, per §4.1 / §4.8:
//  1. mark the seat dead (alive := false, living -> dead);
//  2. if BadgeTransferTo is set, the new seat becomes sheriff;
//  3. if HunterShootTarget is set and living, apply one cascading death
//     (no further nested chain — depth is capped at 1, §4.8/§9).
//
// Deaths are applied in the order given; callers that must honor a
// specific surfaced-in-log order (seat-ascending, §4.3) should sort first.
func (g *GameState) ApplyDeaths(deaths []DeathApplication) {
	for _, d := range deaths {
		g.killSeat(d.Seat)

		if d.BadgeTransferTo != nil {
			g.setSheriff(*d.BadgeTransferTo)
		}

		if d.HunterShootTarget != nil && g.IsAlive(*d.HunterShootTarget) {
			g.killSeat(*d.HunterShootTarget)
		}
	}
}

func (g *GameState) killSeat(seat Seat) {
	p := g.Players[seat]
	if p == nil || !p.Alive {
		return
	}
	p.Alive = false
	delete(g.Living, seat)
	g.Dead[seat] = struct{}{}
	if g.Sheriff != nil && *g.Sheriff == seat {
		p.IsSheriff = false
		g.Sheriff = nil
	}
}

func (g *GameState) setSheriff(seat Seat) {
	if g.Sheriff != nil {
		if old := g.Players[*g.Sheriff]; old != nil {
			old.IsSheriff = false
		}
	}
	g.Sheriff = SeatPtr(seat)
	if p := g.Players[seat]; p != nil {
		p.IsSheriff = true
	}
}

// SetSheriffDay1 sets the sheriff exactly once, from the Day-1 election
// (§4.9 — "May be set exactly once on Day 1 via SheriffOutcome.winner").
func (g *GameState) SetSheriffDay1(seat Seat) {
	g.setSheriff(seat)
}

// ClearSheriff permanently retires the badge (§4.7 L.2 — skip on transfer).
func (g *GameState) ClearSheriff() {
	if g.Sheriff != nil {
		if old := g.Players[*g.Sheriff]; old != nil {
			old.IsSheriff = false
		}
	}
	g.Sheriff = nil
}

// Winner is the terminal victory outcome.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerWerewolf
	WinnerVillager
	WinnerTie
)

func (w Winner) String() string {
	switch w {
	case WinnerWerewolf:
		return "Werewolf"
	case WinnerVillager:
		return "Villager"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// IsGameOver evaluates the two independent victory conditions of §4.1 on
// the current (post-mutation) state and returns (over, winner).
func (g *GameState) IsGameOver() (bool, Winner) {
	werewolvesAlive := g.FactionCount(FactionWerewolf) > 0
	villagersAlive := g.FactionCount(FactionVillager) > 0
	godsAlive := g.FactionCount(FactionGod) > 0

	werewolfCondition := !villagersAlive || !godsAlive
	villagerCondition := !werewolvesAlive

	switch {
	case werewolfCondition && villagerCondition:
		return true, WinnerTie
	case werewolfCondition:
		return true, WinnerWerewolf
	case villagerCondition:
		return true, WinnerVillager
	default:
		return false, WinnerNone
	}
}

// Invariants reports every M.1–M.7 breach in the current state (empty
// slice when healthy). It is pure and side-effect free; validators call it
// at their convenience (see internal/validator).
func (g *GameState) Invariants() []string {
	var problems []string

	for seat := range g.Living {
		if _, dead := g.Dead[seat]; dead {
			problems = append(problems, fmt.Sprintf("seat %d is in both living and dead sets", seat))
		}
	}

	all := g.AllSeats()
	for _, s := range all {
		_, living := g.Living[s]
		_, dead := g.Dead[s]
		if living == dead {
			problems = append(problems, fmt.Sprintf("seat %d must be in exactly one of living/dead", s))
		}
		if p := g.Players[s]; p != nil && p.Alive != living {
			problems = append(problems, fmt.Sprintf("seat %d: Alive flag disagrees with living-set membership", s))
		}
	}

	sheriffCount := 0
	for _, s := range all {
		if p := g.Players[s]; p != nil && p.IsSheriff {
			sheriffCount++
			if g.Sheriff == nil || *g.Sheriff != s {
				problems = append(problems, fmt.Sprintf("seat %d marked is_sheriff but GameState.Sheriff disagrees", s))
			}
			if !p.Alive {
				problems = append(problems, fmt.Sprintf("seat %d is sheriff but not alive", s))
			}
		}
	}
	if sheriffCount > 1 {
		problems = append(problems, fmt.Sprintf("%d seats simultaneously marked is_sheriff (at most one allowed)", sheriffCount))
	}
	if g.Sheriff != nil && sheriffCount == 0 {
		problems = append(problems, "GameState.Sheriff set but no seat is marked is_sheriff")
	}

	counts := make(map[Role]int)
	for _, s := range all {
		if p := g.Players[s]; p != nil {
			counts[p.Role]++
		}
	}
	for role, want := range StandardRoleDistribution() {
		if counts[role] != want {
			problems = append(problems, fmt.Sprintf("role %s count is %d, expected %d", role, counts[role], want))
		}
	}

	return problems
}
