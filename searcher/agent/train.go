package agent

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	mu          sync.Mutex
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It samples moves
// from the search policy sharpened (temperature < 1) or flattened (temperature > 1).
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(state game.State, lineage []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, lineage)
	// TODO: apply a temperature schedule as training progresses
	policy = adjustTemperature(policy, a.temperature)

	a.mu.Lock()
	defer a.mu.Unlock()
	return sample(policy, state.LegalMoves(), a.rng.Float64()), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks the cumulative distribution in legal move order so a fixed draw always
// picks the same move.
func sample(policy map[game.Move]float64, moves []game.Move, sampled float64) game.Move {
	cumulative := 0.0
	var lastMove game.Move
	for _, move := range moves {
		prob, ok := policy[move]
		if !ok {
			continue
		}
		lastMove = move
		cumulative += prob
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}
