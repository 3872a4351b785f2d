package events

import "werewolf-engine/internal/domain"

// PublicView returns the version of event that belongs in every
// participant's shared history, per the §4.11 filter table. The second
// return value is false for events that never appear in any prompt (the
// acting-player-only and seer-only categories — see VisibleToActor and
// SeerResultVisible) so callers can skip them outright.
func PublicView(event GameEvent) (GameEvent, bool) {
	switch e := event.(type) {
	case GameStart:
		// Strip roles_secret; only player_count is public.
		return GameStart{Base: e.Base, PlayerCount: e.PlayerCount}, true

	case Speech, SheriffNomination, SheriffOptOut, SheriffOutcome:
		return event, true

	case DeathEvent:
		// cause is stripped — I.2/I.3 forbid revealing cause or role.
		return DeathEvent{
			Base:              e.Base,
			LastWords:         e.LastWords,
			HunterShootTarget: e.HunterShootTarget,
			BadgeTransferTo:   e.BadgeTransferTo,
		}, true

	case NightOutcome:
		// Only the dead seats are public; causes are stripped.
		seats := make([]domain.Seat, 0, len(e.Deaths))
		for seat := range e.Deaths {
			seats = append(seats, seat)
		}
		return publicNightOutcome{Base: e.Base, DeadSeats: seats}, true

	case Vote:
		// Hidden during voting; appears in the log but not in later prompts.
		return nil, false

	case WerewolfKill, WitchAction, GuardAction, SeerAction:
		// Visible only to the acting participant — see VisibleToActor.
		return nil, false

	case GameOver:
		return event, true

	default:
		return nil, false
	}
}

// publicNightOutcome is the stripped-cause shape of NightOutcome shown to
// all participants on the following day (§4.11).
type publicNightOutcome struct {
	Base
	DeadSeats []domain.Seat `json:"dead_seats"`
}

func (publicNightOutcome) eventType() string { return "night_outcome_public" }

// VisibleToActor reports whether event is one of the night-action events
// (§4.11: "the acting player only") and, if so, whether viewer is that
// actor.
func VisibleToActor(event GameEvent, viewer domain.Seat) bool {
	switch e := event.(type) {
	case WerewolfKill:
		return e.Actor != nil && *e.Actor == viewer
	case WitchAction:
		return e.Actor != nil && *e.Actor == viewer
	case GuardAction:
		return e.Actor != nil && *e.Actor == viewer
	case SeerAction:
		return e.Actor != nil && *e.Actor == viewer
	default:
		return false
	}
}

// TeammateRosterVisible reports whether viewer (by role) may see the
// werewolf teammate roster (§4.11: "Werewolf-role seats only").
func TeammateRosterVisible(viewerRole domain.Role) bool {
	return viewerRole == domain.RoleWerewolf
}

// SeerResultVisible reports whether viewer is the seer who performed the
// check (§4.11: "the acting seer only").
func SeerResultVisible(action SeerAction, viewer domain.Seat) bool {
	return action.Actor != nil && *action.Actor == viewer
}

// SuppressOwnSpeech reports whether speech, in viewer's own "previous
// speeches" view, should be hidden (§4.11: "a participant's own speeches
// are suppressed from their own previous-speeches view").
func SuppressOwnSpeech(speech Speech, viewer domain.Seat) bool {
	return speech.Actor != nil && *speech.Actor == viewer
}
