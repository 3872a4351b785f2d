package kafka

// Default topic names, overridable via internal/config (§4.14).
// These represent durable Kafka logs, NOT event semantics.
const (
	// DefaultEngineEventsTopic is the stream of finalized PhaseLogs
	// emitted by the engine and consumed by observers/players.
	DefaultEngineEventsTopic = "engine.events"

	// DefaultPlayerActionsTopic is the stream of player decision
	// responses (§4.15 decisionResponse) consumed by the engine.
	DefaultPlayerActionsTopic = "player.actions"
)

// Consumer group names.
// These identify who is consuming a topic, not what is being consumed.
const (
	EngineConsumerGroup = "werewolf-engine"
)

// GameKey returns the Kafka partition key for a given game.
// All events for the same game MUST use the same key to preserve ordering.
func GameKey(gameID string) []byte {
	return []byte(gameID)
}
