package searcher

import (
	"math"
	"reversi/game"
)

// uct scores children of a parent with N visits.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// visitPolicy converts child visit counts into move probabilities.
func visitPolicy(moves []game.Move, visits []float64) map[game.Move]float64 {
	policy := make(map[game.Move]float64, len(moves))
	total := 0.0
	for _, v := range visits {
		total += v
	}
	for i, move := range moves {
		if total == 0 {
			policy[move] = 1 / float64(len(moves))
			continue
		}
		policy[move] = visits[i] / total
	}
	return policy
}
