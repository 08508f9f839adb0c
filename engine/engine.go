package engine

import (
	"ironclad/experiments/metrics"
	"ironclad/game"
)

type Runner interface {
	// Run plays a game till there's a winner or the turn cap is reached
	Run() (winner game.PlayerID, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
