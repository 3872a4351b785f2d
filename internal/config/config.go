// Package config loads the engine's runtime configuration from the
// environment using github.com/caarlos0/env, the dependency the teacher
// repo listed but never wired.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the engine (§4.14).
type Config struct {
	// Kafka connection settings.
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	KafkaClientID string   `env:"KAFKA_CLIENT_ID" envDefault:"werewolf-engine"`
	KafkaGroupID  string   `env:"KAFKA_GROUP_ID" envDefault:"werewolf-engine-group"`

	// Coarse topic names: the engine publishes every finalized PhaseLog
	// to EngineEventsTopic and reads participant responses back over
	// PlayerActionsTopic (§4.15).
	EngineEventsTopic  string `env:"ENGINE_EVENTS_TOPIC" envDefault:"engine.events"`
	PlayerActionsTopic string `env:"PLAYER_ACTIONS_TOPIC" envDefault:"player.actions"`

	KafkaConsumerTimeout time.Duration `env:"KAFKA_CONSUMER_TIMEOUT" envDefault:"2s"`
	KafkaProducerTimeout time.Duration `env:"KAFKA_PRODUCER_TIMEOUT" envDefault:"2s"`

	// ParticipantTimeout bounds a single participant.Decide call (§5:
	// "Timeouts on participant.decide are implementation-defined").
	ParticipantTimeout time.Duration `env:"PARTICIPANT_TIMEOUT" envDefault:"10s"`

	// MaxDay bounds play per §4.12.
	MaxDay int `env:"MAX_DAY" envDefault:"20"`

	// RNGSeed seeds the Day-1 role shuffle (§3, §5 determinism).
	RNGSeed uint64 `env:"RNG_SEED" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Env      string `env:"ENV" envDefault:"dev"`
}

// Load reads environment variables into a Config, applying the struct-tag
// defaults above, then validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks config sanity and returns an error for invalid settings.
func (c *Config) Validate() error {
	if len(c.KafkaBrokers) == 0 {
		return errors.New("no kafka brokers configured (KAFKA_BROKERS)")
	}
	if c.KafkaConsumerTimeout <= 0 {
		return errors.New("KAFKA_CONSUMER_TIMEOUT must be > 0")
	}
	if c.KafkaProducerTimeout <= 0 {
		return errors.New("KAFKA_PRODUCER_TIMEOUT must be > 0")
	}
	if c.ParticipantTimeout <= 0 {
		return errors.New("PARTICIPANT_TIMEOUT must be > 0")
	}
	if c.MaxDay <= 0 {
		return errors.New("MAX_DAY must be > 0")
	}
	if c.EngineEventsTopic == "" {
		return errors.New("ENGINE_EVENTS_TOPIC must not be empty")
	}
	if c.PlayerActionsTopic == "" {
		return errors.New("PLAYER_ACTIONS_TOPIC must not be empty")
	}
	return nil
}
