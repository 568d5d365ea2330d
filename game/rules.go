package game

import "github.com/pkg/errors"

// directions is the fixed (dx, dy) scan order used by FlippablePositions.
var directions = [8]Point{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// FlippablePositions returns the opponent discs that player would capture by placing at
// (x, y). It returns nil when the move is illegal: the point is off the board, the cell
// is not Empty (a Hint marker included), player is not a disc colour, or nothing would be flipped.
//
// Directions are scanned in a fixed order; within one direction the captured discs are
// listed from the bracketing disc back toward (x, y). The board is never written to.
func (b *Board) FlippablePositions(x, y int, player Cell) []Point {
	if !player.IsDisc() || !b.IsOnBoard(x, y) || b.Cell(x, y) != Empty {
		return nil
	}
	opponent := player.Opponent()

	var flips []Point
	for _, d := range directions {
		cx, cy := x+d.X, y+d.Y
		run := 0
		for b.IsOnBoard(cx, cy) && b.Cell(cx, cy) == opponent {
			cx += d.X
			cy += d.Y
			run++
		}
		if run == 0 || !b.IsOnBoard(cx, cy) || b.Cell(cx, cy) != player {
			continue
		}
		for i := run; i > 0; i-- {
			flips = append(flips, Point{X: x + d.X*i, Y: y + d.Y*i})
		}
	}

	if len(flips) == 0 {
		return nil
	}
	return flips
}

// IsLegal reports whether placing player at (x, y) captures at least one disc.
func (b *Board) IsLegal(x, y int, player Cell) bool {
	return b.FlippablePositions(x, y, player) != nil
}

// LegalMoves lists the legal targets for player in row-major order.
func (b *Board) LegalMoves(player Cell) []Point {
	var moves []Point
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.IsLegal(x, y, player) {
				moves = append(moves, Point{X: x, Y: y})
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation.
func (b *Board) HasLegalMove(player Cell) bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.IsLegal(x, y, player) {
				return true
			}
		}
	}
	return false
}

// Apply places player at (x, y) and flips the captured discs, returning them.
func (b *Board) Apply(x, y int, player Cell) ([]Point, error) {
	flips := b.FlippablePositions(x, y, player)
	if flips == nil {
		return nil, errors.Wrapf(ErrIllegalMove, "%s at (%d, %d)", player, x, y)
	}
	b.set(x, y, player)
	for _, p := range flips {
		b.set(p.X, p.Y, player)
	}
	return flips, nil
}
