// Package controller owns the one synchronous driver loop that replaces
// the teacher's Command/Effect/cmdCh async engine (§5, §9): a single
// goroutine walks night/day in lockstep, suspending on participant.Decide
// calls instead of dispatching commands over a channel. This is the
// deliberate redesign §9 asks for, grounded on the teacher's own
// internal/engine/loop.go for the fixed-step shape (init -> loop over
// phases -> terminal check) while dropping its concurrency.
package controller

import (
	"context"
	"math/rand"

	"werewolf-engine/internal/config"
	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/events"
	"werewolf-engine/internal/kafka"
	"werewolf-engine/internal/names"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/validator"
)

// Game bundles everything one playthrough needs: the mutable state, the
// event collector that owns the log (§3 "Ownership"), the per-seat
// participants, and the validator observing every hook.
type Game struct {
	State        *domain.GameState
	Names        map[domain.Seat]string
	Store        *domain.NightActionStore
	Participants map[domain.Seat]participant.Participant
	Collector    *events.EventCollector
	Validator    validator.Validator
	MaxDay       int

	// Sink publishes each finished phase externally (§4.15). Nil means no
	// publishing — the in-memory EventLog is still the source of truth
	// for the caller of Run.
	Sink *kafka.EventSink

	playerNames []string
}

// Option customizes New.
type Option func(*Game)

// WithValidator overrides the default NoOp validator, e.g. with
// validator.NewCollecting for an online-checked run.
func WithValidator(v validator.Validator) Option {
	return func(g *Game) { g.Validator = v }
}

// WithParticipants overrides the default all-stub roster, e.g. with
// participant.Kafka transports for a live game.
func WithParticipants(p map[domain.Seat]participant.Participant) Option {
	return func(g *Game) { g.Participants = p }
}

// WithPlayerNames overrides the default "Seat N" roster.
func WithPlayerNames(n []string) Option {
	return func(g *Game) { g.playerNames = n }
}

// WithSink attaches a Kafka event sink; Run publishes every finished
// phase's log to it (§4.15).
func WithSink(sink *kafka.EventSink) Option {
	return func(g *Game) { g.Sink = sink }
}

// New builds a fresh 12-seat game: roles shuffled deterministically from
// cfg.RNGSeed (§5 determinism), a fresh NightActionStore, a NoOp validator
// and all-Stub participants unless overridden.
func New(cfg *config.Config, opts ...Option) *Game {
	g := &Game{
		State:     domain.NewGameState("game"),
		Store:     domain.NewNightActionStore(),
		Collector: events.NewEventCollector(),
		Validator: validator.NoOp{},
		MaxDay:    cfg.MaxDay,
	}
	if g.MaxDay <= 0 {
		g.MaxDay = domain.MaxDay
	}

	for _, opt := range opts {
		opt(g)
	}

	rosterNames := g.playerNames
	if rosterNames == nil {
		rosterNames = names.DefaultNames(domain.SeatCount)
	}

	rng := rand.New(rand.NewSource(int64(cfg.RNGSeed)))
	g.State.AssignRoles(rng, rosterNames)

	g.Names = make(map[domain.Seat]string, domain.SeatCount)
	for s := domain.Seat(0); s < domain.SeatCount; s++ {
		g.Names[s] = g.State.Players[s].Name
	}

	if g.Participants == nil {
		g.Participants = make(map[domain.Seat]participant.Participant, domain.SeatCount)
		for s := domain.Seat(0); s < domain.SeatCount; s++ {
			g.Participants[s] = participant.NewStub()
		}
	}

	if err := g.Collector.SetGameStart(events.GameStart{
		Base:        events.Base{Day: 0},
		PlayerCount: domain.SeatCount,
		RolesSecret: rolesSecret(g.State),
	}); err != nil {
		// SetGameStart only errors on a second call; New only calls it once.
		panic(err)
	}
	g.Validator.OnGameStart(context.Background(), *g.Collector.Finalize().GameStart, g.State)

	return g
}

func rolesSecret(state *domain.GameState) map[domain.Seat]domain.Role {
	out := make(map[domain.Seat]domain.Role, domain.SeatCount)
	for s := domain.Seat(0); s < domain.SeatCount; s++ {
		out[s] = state.Players[s].Role
	}
	return out
}
