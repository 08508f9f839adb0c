package main

import (
	"ironclad/experiments"
	"ironclad/meta"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	var result *experiments.Result
	switch cfg.Experiment {
	case "strength":
		result, err = experiments.RunStrengthExperiment(cfg)
	case "throughput":
		result, err = experiments.RunThroughputExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", cfg.Experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}

	log.Info().Msgf("stored %d games in %s", len(result.Games), result.Dir)
}
