package domain

import (
	"math/rand"
	"testing"
)

func TestNewGameStateHasTwelveLivingSeats(t *testing.T) {
	g := NewGameState("test")

	if len(g.Players) != SeatCount {
		t.Fatalf("got %d players, expected %d", len(g.Players), SeatCount)
	}
	if len(g.Living) != SeatCount {
		t.Fatalf("got %d living, expected %d", len(g.Living), SeatCount)
	}
	if len(g.Dead) != 0 {
		t.Fatalf("expected no dead seats, got %d", len(g.Dead))
	}
	if g.Day != 1 {
		t.Errorf("expected day 1, got %d", g.Day)
	}
	if g.Sheriff != nil {
		t.Error("expected no sheriff at setup")
	}
	for s := Seat(0); s < SeatCount; s++ {
		if !g.IsAlive(s) {
			t.Errorf("seat %d should be alive at setup", s)
		}
	}
}

func TestCreateGameIDHasPrefix(t *testing.T) {
	id := CreateGameID("game")
	if len(id) <= len("game-") {
		t.Fatalf("id %q too short to contain prefix and suffix", id)
	}
	if id[:5] != "game-" {
		t.Errorf("id %q does not start with expected prefix", id)
	}
}

func TestAssignRolesIsDeterministicForSameSeed(t *testing.T) {
	g1 := NewGameState("test")
	g1.AssignRoles(rand.New(rand.NewSource(42)), nil)

	g2 := NewGameState("test")
	g2.AssignRoles(rand.New(rand.NewSource(42)), nil)

	for s := Seat(0); s < SeatCount; s++ {
		if g1.Players[s].Role != g2.Players[s].Role {
			t.Fatalf("seat %d: role diverged between identically-seeded runs (%v vs %v)",
				s, g1.Players[s].Role, g2.Players[s].Role)
		}
	}
}

func TestAssignRolesMatchesStandardDistribution(t *testing.T) {
	g := NewGameState("test")
	g.AssignRoles(rand.New(rand.NewSource(1)), nil)

	counts := make(map[Role]int)
	for s := Seat(0); s < SeatCount; s++ {
		counts[g.Players[s].Role]++
	}
	for role, want := range StandardRoleDistribution() {
		if counts[role] != want {
			t.Errorf("%s: got %d, expected %d", role, counts[role], want)
		}
	}
}

func TestAssignRolesAssignsNamesInSeatOrder(t *testing.T) {
	g := NewGameState("test")
	names := []string{"Alice", "Bob"}
	g.AssignRoles(rand.New(rand.NewSource(1)), names)

	if g.Players[0].Name != "Alice" || g.Players[1].Name != "Bob" {
		t.Fatalf("expected names assigned in seat order, got %q, %q",
			g.Players[0].Name, g.Players[1].Name)
	}
	if g.Players[2].Name != "" {
		t.Errorf("seat 2 should have no name assigned, got %q", g.Players[2].Name)
	}
}

func TestApplyDeathsMarksSeatDead(t *testing.T) {
	g := NewGameState("test")
	g.ApplyDeaths([]DeathApplication{{Seat: 0}})

	if g.IsAlive(0) {
		t.Error("seat 0 should be dead")
	}
	if _, ok := g.Dead[0]; !ok {
		t.Error("seat 0 should be in dead set")
	}
}

func TestApplyDeathsTransfersBadge(t *testing.T) {
	g := NewGameState("test")
	g.SetSheriffDay1(0)
	g.ApplyDeaths([]DeathApplication{{Seat: 0, BadgeTransferTo: SeatPtr(5)}})

	if g.Sheriff == nil || *g.Sheriff != 5 {
		t.Fatalf("expected sheriff to transfer to seat 5, got %v", g.Sheriff)
	}
	if !g.Players[5].IsSheriff {
		t.Error("seat 5 should be marked is_sheriff")
	}
	if g.Players[0].IsSheriff {
		t.Error("seat 0 should no longer be marked is_sheriff")
	}
}

func TestApplyDeathsClearsSheriffOnUntransferredDeath(t *testing.T) {
	g := NewGameState("test")
	g.SetSheriffDay1(0)
	g.ApplyDeaths([]DeathApplication{{Seat: 0}})

	if g.Sheriff != nil {
		t.Errorf("expected no sheriff after untransferred death, got %v", g.Sheriff)
	}
}

func TestApplyDeathsAppliesHunterShotOnce(t *testing.T) {
	g := NewGameState("test")
	g.ApplyDeaths([]DeathApplication{
		{Seat: 0, HunterShootTarget: SeatPtr(1)},
	})

	if g.IsAlive(0) || g.IsAlive(1) {
		t.Error("both the hunter and the shot target should be dead")
	}
}

func TestApplyDeathsIgnoresHunterShotOnAlreadyDeadTarget(t *testing.T) {
	g := NewGameState("test")
	g.ApplyDeaths([]DeathApplication{{Seat: 1}})
	g.ApplyDeaths([]DeathApplication{{Seat: 0, HunterShootTarget: SeatPtr(1)}})

	if g.IsAlive(0) || g.IsAlive(1) {
		t.Error("both seats should remain dead")
	}
}

func TestIsGameOverVillagerWins(t *testing.T) {
	g := NewGameState("test")
	for s := Seat(0); s < SeatCount; s++ {
		g.Players[s].Role = RoleOrdinaryVillager
	}
	g.Players[0].Role = RoleWerewolf
	g.Players[1].Role = RoleSeer
	g.ApplyDeaths([]DeathApplication{{Seat: 0}})

	over, winner := g.IsGameOver()
	if !over || winner != WinnerVillager {
		t.Fatalf("got over=%v winner=%v, expected Villager win", over, winner)
	}
}

func TestIsGameOverWerewolfWinsWhenGodsGone(t *testing.T) {
	g := NewGameState("test")
	for s := Seat(0); s < SeatCount; s++ {
		g.Players[s].Role = RoleWerewolf
	}
	g.Players[0].Role = RoleSeer
	g.ApplyDeaths([]DeathApplication{{Seat: 0}})

	over, winner := g.IsGameOver()
	if !over || winner != WinnerWerewolf {
		t.Fatalf("got over=%v winner=%v, expected Werewolf win", over, winner)
	}
}

func TestIsGameOverTieOnSimultaneousVictory(t *testing.T) {
	g := NewGameState("test")
	for s := Seat(0); s < SeatCount; s++ {
		g.Players[s].Role = RoleOrdinaryVillager
	}
	g.Players[0].Role = RoleWerewolf
	for s := Seat(0); s < SeatCount; s++ {
		if s == 1 {
			continue
		}
		g.ApplyDeaths([]DeathApplication{{Seat: s}})
	}
	g.ApplyDeaths([]DeathApplication{{Seat: 1}})

	over, winner := g.IsGameOver()
	if !over || winner != WinnerTie {
		t.Fatalf("got over=%v winner=%v, expected tie", over, winner)
	}
}

func TestIsGameOverFalseMidGame(t *testing.T) {
	g := NewGameState("test")
	g.AssignRoles(rand.New(rand.NewSource(7)), nil)

	over, winner := g.IsGameOver()
	if over {
		t.Fatalf("fresh game should not be over, got winner=%v", winner)
	}
}

func TestInvariantsCleanOnFreshState(t *testing.T) {
	g := NewGameState("test")
	g.AssignRoles(rand.New(rand.NewSource(3)), nil)

	if problems := g.Invariants(); len(problems) != 0 {
		t.Fatalf("expected no invariant violations, got %v", problems)
	}
}

func TestInvariantsFlagsMultipleSheriffs(t *testing.T) {
	g := NewGameState("test")
	g.AssignRoles(rand.New(rand.NewSource(3)), nil)
	g.Players[0].IsSheriff = true
	g.Players[1].IsSheriff = true

	problems := g.Invariants()
	if len(problems) == 0 {
		t.Fatal("expected invariant violations for two simultaneous sheriffs")
	}
}

func TestInvariantsFlagsRoleCountMismatch(t *testing.T) {
	g := NewGameState("test")
	g.AssignRoles(rand.New(rand.NewSource(3)), nil)
	g.Players[0].Role = RoleWerewolf
	g.Players[1].Role = RoleWerewolf
	g.Players[2].Role = RoleWerewolf
	g.Players[3].Role = RoleWerewolf
	g.Players[4].Role = RoleWerewolf

	problems := g.Invariants()
	if len(problems) == 0 {
		t.Fatal("expected invariant violation for role-count mismatch")
	}
}

func TestLivingSeatsIsSorted(t *testing.T) {
	g := NewGameState("test")
	g.ApplyDeaths([]DeathApplication{{Seat: 5}, {Seat: 0}})

	seats := g.LivingSeats()
	for i := 1; i < len(seats); i++ {
		if seats[i-1] > seats[i] {
			t.Fatalf("living seats not sorted: %v", seats)
		}
	}
	if len(seats) != SeatCount-2 {
		t.Fatalf("got %d living seats, expected %d", len(seats), SeatCount-2)
	}
}
