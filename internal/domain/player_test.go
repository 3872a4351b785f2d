package domain

import "testing"

// --- Role Tests --- //

func TestRoleString(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected string
	}{
		{name: "unknown", role: RoleUnknown, expected: "unknown"},
		{name: "werewolf", role: RoleWerewolf, expected: "werewolf"},
		{name: "seer", role: RoleSeer, expected: "seer"},
		{name: "witch", role: RoleWitch, expected: "witch"},
		{name: "guard", role: RoleGuard, expected: "guard"},
		{name: "hunter", role: RoleHunter, expected: "hunter"},
		{name: "ordinary villager", role: RoleOrdinaryVillager, expected: "ordinary_villager"},
		{name: "invalid", role: Role(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.String()
			if result != tt.expected {
				t.Errorf("got %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestRoleFaction(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected Faction
	}{
		{name: "werewolf", role: RoleWerewolf, expected: FactionWerewolf},
		{name: "seer", role: RoleSeer, expected: FactionGod},
		{name: "witch", role: RoleWitch, expected: FactionGod},
		{name: "guard", role: RoleGuard, expected: FactionGod},
		{name: "hunter", role: RoleHunter, expected: FactionGod},
		{name: "ordinary villager", role: RoleOrdinaryVillager, expected: FactionVillager},
		{name: "unknown", role: RoleUnknown, expected: FactionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.Faction()
			if result != tt.expected {
				t.Errorf("got %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestRoleHasNightAction(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{name: "werewolf", role: RoleWerewolf, expected: true},
		{name: "witch", role: RoleWitch, expected: true},
		{name: "guard", role: RoleGuard, expected: true},
		{name: "seer", role: RoleSeer, expected: true},
		{name: "hunter", role: RoleHunter, expected: false},
		{name: "ordinary villager", role: RoleOrdinaryVillager, expected: false},
		{name: "unknown", role: RoleUnknown, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.HasNightAction()
			if result != tt.expected {
				t.Errorf("got %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestFactionString(t *testing.T) {
	tests := []struct {
		name     string
		faction  Faction
		expected string
	}{
		{name: "werewolf", faction: FactionWerewolf, expected: "werewolf"},
		{name: "god", faction: FactionGod, expected: "god"},
		{name: "villager", faction: FactionVillager, expected: "villager"},
		{name: "unknown", faction: FactionUnknown, expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.faction.String()
			if result != tt.expected {
				t.Errorf("got %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestPlayerString(t *testing.T) {
	p := &Player{Seat: 3, Role: RoleSeer}
	if got, want := p.String(), "seat3(seer)"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestSeatPtr(t *testing.T) {
	p := SeatPtr(5)
	if p == nil {
		t.Fatal("expected non-nil pointer")
	}
	if *p != Seat(5) {
		t.Errorf("got %d, expected 5", *p)
	}
}
