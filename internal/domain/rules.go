// constants and calculations to set up a game

package domain

// SeatCount is the fixed seat count for the standard configuration (§3).
const SeatCount = 12

// MaxDay bounds play per §4.12; callers may override via config, this is
// the value used when none is configured.
const MaxDay = 20

// StandardRoleDistribution returns the fixed 12-player role multiset:
// 4 Werewolves, 1 Seer, 1 Witch, 1 Guard, 1 Hunter, 4 Ordinary Villagers.
func StandardRoleDistribution() map[Role]int {
	return map[Role]int{
		RoleWerewolf:         4,
		RoleSeer:             1,
		RoleWitch:            1,
		RoleGuard:            1,
		RoleHunter:           1,
		RoleOrdinaryVillager: 4,
	}
}

// roleOrder fixes an iteration order over the distribution map so that
// RoleMultiset is deterministic — map iteration order is not, and the
// engine's determinism guarantee (§5) depends on the pre-shuffle slice
// being identical across runs.
var roleOrder = []Role{
	RoleWerewolf, RoleSeer, RoleWitch, RoleGuard, RoleHunter, RoleOrdinaryVillager,
}

// RoleMultiset expands a role distribution into a flat slice suitable for
// shuffling, e.g. for AssignRoles. Iteration order is fixed (see roleOrder)
// so the result is deterministic for a given distribution.
func RoleMultiset(distribution map[Role]int) []Role {
	roles := make([]Role, 0, SeatCount)
	for _, role := range roleOrder {
		for i := 0; i < distribution[role]; i++ {
			roles = append(roles, role)
		}
	}
	return roles
}
