package game

import (
	"strings"

	"github.com/pkg/errors"
)

const MinDimension = 4

var (
	ErrOddDimension      = errors.New("board dimension must be even")
	ErrDimensionTooSmall = errors.New("board dimension must be at least 4")
	ErrOffBoard          = errors.New("position is off the board")
	ErrIllegalMove       = errors.New("illegal move")
)

// Board is a width x height grid of cells. Cells are addressed as (x, y) where x is the
// column and y the row, and are stored row-major.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates a board in the standard starting position.
func NewBoard(width, height int) (*Board, error) {
	if err := checkDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkDimension("height", height); err != nil {
		return nil, err
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Reset()
	return b, nil
}

// MustNewBoard is like NewBoard but panics on invalid dimensions.
func MustNewBoard(width, height int) *Board {
	b, err := NewBoard(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

func checkDimension(name string, value int) error {
	if value%2 != 0 {
		return errors.Wrapf(ErrOddDimension, "%s %d", name, value)
	}
	if value < MinDimension {
		return errors.Wrapf(ErrDimensionTooSmall, "%s %d", name, value)
	}
	return nil
}

// Reset clears the board and places the four starting discs around the centre.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}

	cx, cy := b.width/2, b.height/2
	b.set(cx, cy, White)
	b.set(cx-1, cy-1, White)
	b.set(cx, cy-1, Black)
	b.set(cx-1, cy, Black)
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// IsOnBoard reports whether (x, y) lies inside the grid.
func (b *Board) IsOnBoard(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

// Cell returns the state at (x, y), or Empty when the point is off the board.
func (b *Board) Cell(x, y int) Cell {
	if !b.IsOnBoard(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// SetCell overwrites the state at (x, y). Renderers use it to place Hint markers.
func (b *Board) SetCell(x, y int, c Cell) error {
	if !b.IsOnBoard(x, y) {
		return errors.Wrapf(ErrOffBoard, "(%d, %d) on %dx%d board", x, y, b.width, b.height)
	}
	b.set(x, y, c)
	return nil
}

func (b *Board) set(x, y int, c Cell) {
	b.cells[y*b.width+x] = c
}

func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns the number of cells in state c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Score returns the number of black and white discs.
func (b *Board) Score() (black, white int) {
	return b.Count(Black), b.Count(White)
}

// MarkHints replaces every legal target for player with a Hint marker and returns how
// many were marked. Stale markers are cleared first.
func (b *Board) MarkHints(player Cell) int {
	b.ClearHints()
	moves := b.LegalMoves(player)
	for _, p := range moves {
		b.set(p.X, p.Y, Hint)
	}
	return len(moves)
}

func (b *Board) ClearHints() {
	for i, c := range b.cells {
		if c == Hint {
			b.cells[i] = Empty
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(cellRune(b.Cell(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c {
	case Hint:
		return '*'
	case White:
		return 'W'
	case Black:
		return 'B'
	default:
		return '.'
	}
}
