package engine

import "reversi/experiments/metrics"

// MaxTurns caps a game; a standard 8x8 game ends within 60 placements plus passes.
const MaxTurns = 500

type Engine interface {
	// Run starts a game till it is over or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
