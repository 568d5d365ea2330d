// Package render draws boards for terminals. It only needs read access to the grid, so
// any type exposing dimensions and cell state can be drawn.
package render

import (
	"fmt"
	"io"
	"reversi/game"
	"strings"
)

// View is the read side of a board.
type View interface {
	Width() int
	Height() int
	Cell(x, y int) game.Cell
}

var glyphs = map[game.Cell]string{
	game.Empty: ".",
	game.Hint:  "*",
	game.White: "W",
	game.Black: "B",
}

// Text writes v as a labelled grid: column numbers across the top, row numbers down the
// left, one glyph per cell.
func Text(w io.Writer, v View) error {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := 0; x < v.Width(); x++ {
		fmt.Fprintf(&sb, " %d", x%10)
	}
	sb.WriteByte('\n')

	for y := 0; y < v.Height(); y++ {
		fmt.Fprintf(&sb, "%2d", y)
		for x := 0; x < v.Width(); x++ {
			sb.WriteByte(' ')
			sb.WriteString(glyphs[v.Cell(x, y)])
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Summary is a one-line disc count.
func Summary(v View) string {
	black, white := 0, 0
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			switch v.Cell(x, y) {
			case game.Black:
				black++
			case game.White:
				white++
			}
		}
	}
	return fmt.Sprintf("Black %d - White %d", black, white)
}
