// Command engine is the reference CLI runner for the werewolf engine
// (§6): it drives one or more complete games, publishes events to Kafka if
// brokers are reachable, writes each game's finalized EventLog as JSON, and
// replays every log through the post-game validator. It is documented for
// reproducibility, not a redesign target — thin wiring over
// internal/controller, exactly the scope §6 marks for it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"werewolf-engine/internal/config"
	"werewolf-engine/internal/controller"
	"werewolf-engine/internal/domain"
	"werewolf-engine/internal/kafka"
	"werewolf-engine/internal/participant"
	"werewolf-engine/internal/validator"
)

func main() {
	seed := flag.Uint64("seed", 0, "RNG seed for role shuffling (overrides RNG_SEED)")
	games := flag.Int("games", 1, "number of games to run")
	maxDay := flag.Int("max-day", 0, "bound on days played before a forced tie (overrides MAX_DAY, 0 = use config)")
	output := flag.String("output", "", "directory to write each game's event log as JSON (empty = don't write)")
	remote := flag.Bool("remote-participants", false, "ask every seat's decision over Kafka instead of using the built-in stub")
	flag.Parse()
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if seedSet {
		cfg.RNGSeed = *seed
	}
	if *maxDay > 0 {
		cfg.MaxDay = *maxDay
	}

	if *output != "" {
		if err := os.MkdirAll(*output, 0o755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
	}

	var producer kafka.Producer
	var sink *kafka.EventSink
	if p, err := kafka.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaClientID); err != nil {
		log.Printf("kafka producer unavailable, continuing without event sink: %v", err)
	} else {
		producer = p
		sink = kafka.NewEventSink(producer, cfg.EngineEventsTopic, cfg.KafkaClientID)
		defer producer.Close()
	}

	exitCode := 0
	for i := 0; i < *games; i++ {
		gameSeed := cfg.RNGSeed + uint64(i)
		runCfg := *cfg
		runCfg.RNGSeed = gameSeed

		opts := []controller.Option{controller.WithValidator(validator.NewCollecting(runCfg.MaxDay))}
		if sink != nil {
			opts = append(opts, controller.WithSink(sink))
		}

		var stopRemote func()
		if *remote {
			if producer == nil {
				log.Fatalf("game %d: -remote-participants requires a reachable Kafka producer", i)
			}
			remoteOpt, stop, err := remoteParticipants(producer, cfg, fmt.Sprintf("game-%d", i))
			if err != nil {
				log.Fatalf("game %d: failed to start remote participants: %v", i, err)
			}
			opts = append(opts, remoteOpt)
			stopRemote = stop
		}

		game := controller.New(&runCfg, opts...)

		result := controller.Run(context.Background(), game)
		if stopRemote != nil {
			stopRemote()
		}
		log.Printf("game %d (seed=%d): day=%d condition=%v forced_end=%v",
			i, gameSeed, game.State.Day, result.GameOver.Condition, result.ForcedEnd)

		online := game.Validator.Violations()
		replayed := validator.Replay(context.Background(), result.Log, runCfg.MaxDay)
		if len(online) > 0 || len(replayed) > 0 {
			log.Printf("game %d: %d online violations, %d replay violations", i, len(online), len(replayed))
			exitCode = 1
		}

		if *output != "" {
			if err := writeLog(*output, i, result.Log); err != nil {
				log.Printf("game %d: failed to write log: %v", i, err)
				exitCode = 1
			}
		}
	}

	os.Exit(exitCode)
}

// remoteParticipants builds one participant.Kafka per seat, all publishing
// decision requests to cfg.EngineEventsTopic (the engine's outbound
// channel) and sharing a single consumer that reads decision responses back
// off cfg.PlayerActionsTopic (the player-intent channel). Every consumed
// message is broadcast to all twelve participants via participant.Router —
// HandleResponse no-ops on a RequestID it doesn't own, so no seat-routing
// metadata is needed on the wire. The returned stop func cancels the
// consume loop and closes the reader; callers must call it once the game
// using these participants has finished.
func remoteParticipants(producer kafka.Producer, cfg *config.Config, gameID string) (controller.Option, func(), error) {
	consumer, err := kafka.NewKafkaConsumer(cfg.KafkaBrokers, cfg.PlayerActionsTopic, cfg.KafkaGroupID)
	if err != nil {
		return nil, nil, fmt.Errorf("build kafka consumer: %w", err)
	}

	seats := make([]*participant.Kafka, domain.SeatCount)
	roster := make(map[domain.Seat]participant.Participant, domain.SeatCount)
	for s := 0; s < domain.SeatCount; s++ {
		kp := participant.NewKafka(producer, cfg.EngineEventsTopic, gameID, s)
		seats[s] = kp
		roster[domain.Seat(s)] = kp
	}
	router := participant.NewRouter(seats)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Consume(ctx, router.HandleMessage); err != nil && ctx.Err() == nil {
			log.Printf("game %s: kafka consume loop exited: %v", gameID, err)
		}
	}()

	stop := func() {
		cancel()
		if err := consumer.Close(); err != nil {
			log.Printf("game %s: failed to close kafka consumer: %v", gameID, err)
		}
	}
	return controller.WithParticipants(roster), stop, nil
}

func writeLog(dir string, index int, eventLog any) error {
	data, err := json.MarshalIndent(eventLog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode event log: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("game-%d.json", index))
	return os.WriteFile(path, data, 0o644)
}
