package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Local plays one game between two in-process agents.
type Local struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Black, White
	MaxTurns int
}

// NewLocal sets up a fresh width x height game with black moving first.
func NewLocal(black, white agent.Agent, width, height int) (*Local, error) {
	if black == nil || white == nil {
		panic("need an agent for both colours")
	}

	state, err := game.NewGameState(width, height)
	if err != nil {
		return nil, err
	}

	return &Local{
		State:    state,
		Agents:   [2]agent.Agent{black, white},
		MaxTurns: MaxTurns,
	}, nil
}

func agentIndex(c game.Cell) int {
	if c == game.White {
		return 1
	}
	return 0
}

// Run executes the entire game loop until the game is over or MaxTurns is reached.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	// Moves played since each agent last searched
	lineages := [2][]searcher.Segment{}

	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("%s is starting on a %dx%d board", e.State.Player(), e.State.Board.Width(), e.State.Board.Height())

	turnCount := 1
	var moveMetrics []metrics.MoveMetric
	for e.State.Winner() == "" && turnCount <= e.MaxTurns {
		player := e.State.Player()
		i := agentIndex(e.State.ToMove)

		move, searchMetric := e.Agents[i].FindMove(e.State, lineages[i])
		move = e.validate(move)
		lineages[i] = nil

		flips := 0
		if !move.IsPass() {
			p := move.(game.Placement)
			flips = len(e.State.Board.FlippablePositions(p.X, p.Y, e.State.ToMove))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Move:         moveString(move),
			Flips:        flips,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: %s plays %s flipping %d", turnCount, player, moveString(move), flips)

		e.State = e.State.Play(move).(*game.GameState)

		segment := searcher.Segment{Move: move, StateHash: e.State.Hash()}
		for j := range lineages {
			lineages[j] = append(lineages[j], segment)
		}
		turnCount++
	}

	winner := e.State.Winner()
	if winner == "" {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.MaxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = e.State.Board.Score()
	gameMetric.TotalMoves = len(moveMetrics)

	return winner, gameMetric, moveMetrics
}

// validate replaces a move that is not legal in the current state with the first legal move.
func (e *Local) validate(candidate game.Move) game.Move {
	legal := e.State.LegalMoves()
	if len(legal) == 0 {
		panic("No legal moves at all!")
	}
	for _, move := range legal {
		if move == candidate {
			return candidate
		}
	}
	log.Warn().Msgf("%s returned an illegal move %v, playing %v instead", e.State.Player(), candidate, legal[0])
	return legal[0]
}

func moveString(move game.Move) string {
	if p, ok := move.(game.Placement); ok {
		return p.String()
	}
	return "pass"
}
