package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Draw is returned by Winner when a finished game ends level.
const Draw = "Draw"

// GameState is a Reversi position together with the side to move. Black moves first.
type GameState struct {
	Board    *Board
	ToMove   Cell
	LastMove Move // The last move made, nil at the start
}

// NewGameState returns the starting position on a width x height board.
func NewGameState(width, height int) (*GameState, error) {
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return &GameState{Board: b, ToMove: Black}, nil
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Board:    gs.Board.Copy(),
		ToMove:   gs.ToMove,
		LastMove: gs.LastMove,
	}
}

// Player returns the colour name of the side to move.
func (gs GameState) Player() string {
	return gs.ToMove.String()
}

// LegalMoves returns every placement for the side to move. When there is none but the
// opponent can still move, the only legal move is a pass. A finished game has no moves.
func (gs GameState) LegalMoves() []Move {
	points := gs.Board.LegalMoves(gs.ToMove)
	if len(points) == 0 {
		if gs.Board.HasLegalMove(gs.ToMove.Opponent()) {
			return []Move{PassMove}
		}
		return nil
	}

	moves := make([]Move, len(points))
	for i, p := range points {
		moves[i] = Placement{X: p.X, Y: p.Y}
	}
	return moves
}

// Play returns the state after move. It panics on a move that is not legal here.
func (gs GameState) Play(move Move) State {
	next := gs.Copy()
	next.LastMove = move
	next.ToMove = gs.ToMove.Opponent()

	if move.IsPass() {
		return next
	}

	p := move.(Placement)
	if _, err := next.Board.Apply(p.X, p.Y, gs.ToMove); err != nil {
		panic(err)
	}
	return next
}

// IsOver reports whether neither side can move.
func (gs GameState) IsOver() bool {
	return !gs.Board.HasLegalMove(gs.ToMove) && !gs.Board.HasLegalMove(gs.ToMove.Opponent())
}

// Winner returns the colour with more discs once the game is over, Draw on a tie, and ""
// while the game is still running.
func (gs GameState) Winner() string {
	if !gs.IsOver() {
		return ""
	}
	black, white := gs.Board.Score()
	switch {
	case black > white:
		return Black.String()
	case white > black:
		return White.String()
	default:
		return Draw
	}
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(gs.ToMove))
	binary.Write(hasher, binary.LittleEndian, int32(gs.Board.width))
	binary.Write(hasher, binary.LittleEndian, int32(gs.Board.height))
	for _, c := range gs.Board.cells {
		if c == Hint {
			c = Empty
		}
		binary.Write(hasher, binary.LittleEndian, int8(c))
	}

	return StateHash(hasher.Sum64())
}
