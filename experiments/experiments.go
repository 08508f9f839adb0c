package experiments

import (
	"errors"
	"fmt"
	"ironclad/engine"
	"ironclad/experiments/metrics"
	"ironclad/game"
	"ironclad/meta"
	"ironclad/player"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrUnknownAgent = errors.New("unknown agent")

// MatchUp seats the first config as PlayerA and the second as PlayerB.
type MatchUp [2]metrics.AgentConfig

type Result struct {
	RunID string
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "random"},
	{ID: 2, Kind: "greedy", Evaluate: "material", Samples: meta.SAMPLES},
	{ID: 3, Kind: "greedy", Evaluate: "progress", Samples: meta.SAMPLES},
	{ID: 4, Kind: "greedy", Evaluate: "progress", Samples: meta.SAMPLES, Temperature: 0.25},
}

// RunStrengthExperiment pairs every greedy agent against the random baseline,
// once from each side of the board.
func RunStrengthExperiment(cfg meta.Config) (*Result, error) {
	baseline := strengthConfigs[0]
	matchUps := []MatchUp{}
	for _, config := range strengthConfigs[1:] {
		matchUps = append(matchUps, MatchUp{baseline, config}, MatchUp{config, baseline})
	}
	return RunSelfPlay(cfg, "strength", strengthConfigs, matchUps)
}

// task is one game of a match-up with all of its randomness drawn up front,
// so results do not depend on which worker plays it.
type task struct {
	id      string
	matchUp int
	round   int
	config1 metrics.AgentConfig
	config2 metrics.AgentConfig
	seeds   [3]uint64 // Agent1, agent2, board
}

type outcome struct {
	winner      game.PlayerID
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
	err         error
}

// RunSelfPlay plays cfg.Games games for each match-up on cfg.Workers
// goroutines and stores the agent configs, game records and move records under
// a fresh run directory.
func RunSelfPlay(cfg meta.Config, name string, configs []metrics.AgentConfig, matchUps []MatchUp) (*Result, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = game.EntropySeed()
	}
	rng := rand.New(rand.NewSource(seed))

	tasks := []task{}
	for mi, matchUp := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			tasks = append(tasks, task{
				id:      uuid.NewString(),
				matchUp: mi,
				round:   i,
				config1: matchUp[0],
				config2: matchUp[1],
				seeds:   [3]uint64{rng.Uint64(), rng.Uint64(), rng.Uint64()},
			})
		}
	}

	log.Info().Msgf("starting %s experiment with seed %d: %d games over %d matchups...", name, seed, len(tasks), len(matchUps))

	outcomes := make([]outcome, len(tasks))
	queue := make(chan int, len(tasks))
	for i := range tasks {
		queue <- i
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < max(1, cfg.Workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range queue {
				t := tasks[idx]
				winner, gameMetric, moveMetrics, err := runGame(cfg, t)
				outcomes[idx] = outcome{winner, gameMetric, moveMetrics, err}
				if err == nil {
					log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", t.matchUp+1, len(matchUps), t.round+1, winner)
				}
			}
		}()
	}
	wg.Wait()

	result := &Result{}
	for idx, t := range tasks {
		o := outcomes[idx]
		if o.err != nil {
			return nil, fmt.Errorf("matchup %d game %d: %w", t.matchUp+1, t.round+1, o.err)
		}
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         t.id,
			Agent1:     t.config1.ID,
			Agent2:     t.config2.ID,
			GameMetric: o.gameMetric,
		})
		for _, mm := range o.moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       t.id,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.RunID = writer.RunID()
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return nil, err
	}
	log.Info().Msg("stored move records")

	return result, nil
}

// runGame plays a single game between two agents and returns the winner.
func runGame(cfg meta.Config, t task) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := createAgent(t.config1, t.seeds[0])
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(t.config2, t.seeds[1])
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	g := game.NewGame(cfg.Stones, game.WithSize(cfg.Width, cfg.Height), game.WithSeed(t.seeds[2]))
	e := engine.LocalEngine(g, []player.Agent{agent1, agent2}, engine.WithMaxTurns(cfg.MaxTurns))

	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) (player.Agent, error) {
	switch config.Kind {
	case "random":
		return player.NewRandomAgent(seed), nil
	case "greedy":
		evaluate, err := evaluation(config.Evaluate)
		if err != nil {
			return nil, err
		}
		options := []player.Option{
			player.WithEvaluate(evaluate),
			player.WithSeed(seed),
		}
		if config.Samples > 0 {
			options = append(options, player.WithSamples(config.Samples))
		}
		if config.Temperature > 0 {
			options = append(options, player.WithTemperature(config.Temperature))
		}
		return player.NewGreedyAgent(fmt.Sprintf("greedy-%d", config.ID), options...), nil
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownAgent, config.Kind)
	}
}

func evaluation(name string) (game.Evaluate, error) {
	switch name {
	case "material":
		return game.EvaluateMaterial, nil
	case "progress", "":
		return game.EvaluateProgress, nil
	default:
		return nil, fmt.Errorf("%w: evaluation %q", ErrUnknownAgent, name)
	}
}
