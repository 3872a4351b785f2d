package handlers

import (
	"context"

	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/participant"
)

// RunBanishmentResolution resolves the single banished seat through the
// same §4.7 sub-query order as night deaths, tagged as BanishmentResolution.
func RunBanishmentResolution(ctx context.Context, hctx Context, participants map[domain.Seat]participant.Participant, banished domain.Seat) events.SubPhaseLog {
	evt := resolveOneDeath(ctx, hctx, participants, banished, domain.DeathCauseBanishment, events.SubPhaseBanishmentResolution)
	return events.SubPhaseLog{MicroPhase: events.SubPhaseBanishmentResolution, Events: []events.GameEvent{evt}}
}
