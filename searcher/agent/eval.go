package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State, lineage []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, lineage)
	return findMax(policy, state.LegalMoves()), metric
}

// findMax picks the most visited move, breaking ties by legal move order.
func findMax(policy map[game.Move]float64, moves []game.Move) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for _, move := range moves {
		if visit, ok := policy[move]; ok && visit > maxVisit {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
