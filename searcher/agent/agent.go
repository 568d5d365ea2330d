package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(state game.State, lineage []searcher.Segment) (game.Move, metrics.SearchMetric)
}
