package game

// EvaluateDiscs scores the disc differential between -1 and 1 from the current player's perspective
func EvaluateDiscs(s State) float64 {
	gs := asGameState(s)
	own, other := gs.discCounts()
	return normalize(own, other)
}

// EvaluateMobility blends discs, mobility and corner ownership into a score between -1 and 1 from the current player's perspective
func EvaluateMobility(s State) float64 {
	gs := asGameState(s)
	own, other := gs.discCounts()
	discScore := normalize(own, other)
	mobilityScore := gs.calculateMobilityScore()
	cornerScore := gs.calculateCornerScore()

	return (discScore + mobilityScore + 2*cornerScore) / 4
}

func asGameState(s State) *GameState {
	switch gs := s.(type) {
	case *GameState:
		return gs
	case GameState:
		return &gs
	default:
		panic("unexpected state type")
	}
}

func (gs *GameState) discCounts() (own, other float64) {
	return float64(gs.Board.Count(gs.ToMove)), float64(gs.Board.Count(gs.ToMove.Opponent()))
}

func (gs *GameState) calculateMobilityScore() float64 {
	own := len(gs.Board.LegalMoves(gs.ToMove))
	other := len(gs.Board.LegalMoves(gs.ToMove.Opponent()))
	return normalize(float64(own), float64(other))
}

func (gs *GameState) calculateCornerScore() float64 {
	b := gs.Board
	corners := [4]Point{{0, 0}, {b.width - 1, 0}, {0, b.height - 1}, {b.width - 1, b.height - 1}}

	own, other := 0.0, 0.0
	for _, p := range corners {
		switch b.Cell(p.X, p.Y) {
		case gs.ToMove:
			own++
		case gs.ToMove.Opponent():
			other++
		}
	}
	return normalize(own, other)
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
