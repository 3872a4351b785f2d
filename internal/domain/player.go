// Package domain holds the game's value types: roles, players, state, and
// the pure night-action resolver. Nothing in this package performs I/O; it
// is mutated exclusively through the methods defined here, called by the
// controller and schedulers (see internal/controller, internal/scheduler).
package domain

import "fmt"

// Seat is a stable per-player identifier, 0..11 for the standard config.
type Seat int

// SeatPtr returns a pointer to s, for building Option<seat>-shaped fields
// the way events.DeathEvent and friends need (target absent == nil).
func SeatPtr(s Seat) *Seat {
	return &s
}

// Faction groups roles for victory-condition accounting (§3, §4.1).
type Faction int

const (
	FactionUnknown Faction = iota
	FactionWerewolf
	FactionGod
	FactionVillager
)

func (f Faction) String() string {
	switch f {
	case FactionWerewolf:
		return "werewolf"
	case FactionGod:
		return "god"
	case FactionVillager:
		return "villager"
	default:
		return "unknown"
	}
}

// Role is one of the six roles in the standard 12-player configuration.
type Role int

const (
	RoleUnknown Role = iota
	RoleWerewolf
	RoleSeer
	RoleWitch
	RoleGuard
	RoleHunter
	RoleOrdinaryVillager
)

func (r Role) String() string {
	switch r {
	case RoleWerewolf:
		return "werewolf"
	case RoleSeer:
		return "seer"
	case RoleWitch:
		return "witch"
	case RoleGuard:
		return "guard"
	case RoleHunter:
		return "hunter"
	case RoleOrdinaryVillager:
		return "ordinary_villager"
	default:
		return "unknown"
	}
}

// Faction returns which victory faction this role belongs to.
func (r Role) Faction() Faction {
	switch r {
	case RoleWerewolf:
		return FactionWerewolf
	case RoleSeer, RoleWitch, RoleGuard, RoleHunter:
		return FactionGod
	case RoleOrdinaryVillager:
		return FactionVillager
	default:
		return FactionUnknown
	}
}

// HasNightAction reports whether this role acts during the night phase.
func (r Role) HasNightAction() bool {
	switch r {
	case RoleWerewolf, RoleWitch, RoleGuard, RoleSeer:
		return true
	default:
		return false
	}
}

// Player is the (seat, role, alive, is_sheriff) tuple of §3. Role is
// assigned once at setup; Alive transitions only true→false; IsSheriff
// transitions are constrained by §4.9. Name is cosmetic only.
type Player struct {
	Seat      Seat
	Name      string
	Role      Role
	Alive     bool
	IsSheriff bool
}

func (p *Player) String() string {
	return fmt.Sprintf("seat%d(%s)", p.Seat, p.Role)
}
