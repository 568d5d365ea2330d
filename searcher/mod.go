package searcher

import "reversi/game"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const (
	Win       = 1.0 // Reward for winning outcome
	Loss      = 0.0 // Reward for losing outcome, also applied as the virtual loss
	DrawScore = 0.5 // Reward for both players on a level game
)

const MaxCutoff = 1 << 30 // Effectively a full playout

// Segment is one step of the game's lineage since the previous search: the move played and
// the hash of the state it produced.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

// outcome returns the player credited with score (the other player gets 1 - score) for a
// finished game.
func outcome(winner string) (string, float64) {
	if winner == game.Draw {
		return winner, DrawScore
	}
	return winner, Win
}
