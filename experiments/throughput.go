package experiments

import (
	"ironclad/experiments/metrics"
	"ironclad/meta"
)

var throughputConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "random"},
	{ID: 2, Kind: "greedy", Evaluate: "material", Samples: 1},
	{ID: 3, Kind: "greedy", Evaluate: "progress", Samples: 1},
	{ID: 4, Kind: "greedy", Evaluate: "progress", Samples: meta.SAMPLES},
}

// RunThroughputExperiment measures how long each agent takes per move.
func RunThroughputExperiment(cfg meta.Config) (*Result, error) {
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := []MatchUp{}
	for _, config := range throughputConfigs {
		matchUps = append(matchUps, MatchUp{config, config})
	}
	return RunSelfPlay(cfg, "throughput", throughputConfigs, matchUps)
}
