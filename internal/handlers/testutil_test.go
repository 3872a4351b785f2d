package handlers

import (
	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/participant"
)

// newTestState builds a 12-seat GameState with the given fixed role
// assignment, all seats alive, no sheriff — tests need deterministic roles,
// not AssignRoles' shuffle.
func newTestState(roles map[domain.Seat]domain.Role) *domain.GameState {
	g := &domain.GameState{
		Players: make(map[domain.Seat]*domain.Player, domain.SeatCount),
		Living:  make(map[domain.Seat]struct{}, domain.SeatCount),
		Dead:    make(map[domain.Seat]struct{}),
		Day:     1,
	}
	for s := domain.Seat(0); s < domain.SeatCount; s++ {
		g.Players[s] = &domain.Player{Seat: s, Alive: true, Role: roles[s]}
		g.Living[s] = struct{}{}
	}
	return g
}

// standardRoles is a fixed 12-seat assignment used across handler tests:
// seat 0-3 werewolves, 4 seer, 5 witch, 6 guard, 7 hunter, 8-11 villagers.
func standardRoles() map[domain.Seat]domain.Role {
	return map[domain.Seat]domain.Role{
		0: domain.RoleWerewolf, 1: domain.RoleWerewolf, 2: domain.RoleWerewolf, 3: domain.RoleWerewolf,
		4: domain.RoleSeer, 5: domain.RoleWitch, 6: domain.RoleGuard, 7: domain.RoleHunter,
		8: domain.RoleOrdinaryVillager, 9: domain.RoleOrdinaryVillager, 10: domain.RoleOrdinaryVillager, 11: domain.RoleOrdinaryVillager,
	}
}

// allStub returns a Participant map where every seat is a fresh Stub.
func allStub() map[domain.Seat]participant.Participant {
	out := make(map[domain.Seat]participant.Participant, domain.SeatCount)
	for s := domain.Seat(0); s < domain.SeatCount; s++ {
		out[s] = participant.NewStub()
	}
	return out
}
