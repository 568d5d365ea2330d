package game

// Cell is the state of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Hint       // Legal-move marker for renderers; not a target until cleared
	White
	Black
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Hint:
		return "Hint"
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opponent returns the other disc colour, or Empty for non-disc cells.
func (c Cell) Opponent() Cell {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// IsDisc reports whether c is a White or Black disc.
func (c Cell) IsDisc() bool {
	return c == White || c == Black
}

// Point addresses a cell: X is the column, Y is the row.
type Point struct {
	X int
	Y int
}
