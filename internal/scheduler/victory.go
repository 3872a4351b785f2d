package scheduler

import (
	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
)

// checkVictory evaluates §4.1's victory conditions on the current state and,
// if the game is over, builds the GameOver event for it (§3, §4.12).
func checkVictory(state *domain.GameState) (over bool, gameOver events.GameOver) {
	isOver, winner := state.IsGameOver()
	if !isOver {
		return false, events.GameOver{}
	}
	return true, events.GameOver{
		Base:           events.Base{Day: state.Day, Phase: events.PhaseDay},
		Winner:         winnerString(winner),
		Condition:      victoryCondition(winner),
		FinalTurnCount: state.Day,
	}
}

func winnerString(w domain.Winner) *string {
	switch w {
	case domain.WinnerWerewolf:
		s := "Werewolf"
		return &s
	case domain.WinnerVillager:
		s := "Villager"
		return &s
	default:
		return nil
	}
}

func victoryCondition(w domain.Winner) events.VictoryCondition {
	switch w {
	case domain.WinnerWerewolf:
		return events.VictoryConditionWerewolf
	case domain.WinnerVillager:
		return events.VictoryConditionVillager
	case domain.WinnerTie:
		return events.VictoryConditionTie
	default:
		return events.VictoryConditionUnknown
	}
}

// deathApplications converts the DeathEvents a death-resolution handler
// emitted into the DeathApplication batch domain.GameState.ApplyDeaths
// expects, preserving emission order (already seat-ascending, §4.3).
func deathApplications(log events.SubPhaseLog) []domain.DeathApplication {
	apps := make([]domain.DeathApplication, 0, len(log.Events))
	for _, e := range log.Events {
		d, ok := e.(events.DeathEvent)
		if !ok {
			continue
		}
		apps = append(apps, domain.DeathApplication{
			Seat:              *d.Actor,
			BadgeTransferTo:   d.BadgeTransferTo,
			HunterShootTarget: d.HunterShootTarget,
		})
	}
	return apps
}
