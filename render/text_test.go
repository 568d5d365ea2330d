package render

import (
	"bytes"
	"errors"
	"reversi/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestText(t *testing.T) {
	t.Run("start position with hints", func(t *testing.T) {
		b := game.MustNewBoard(4, 4)
		b.MarkHints(game.Black)

		var buf bytes.Buffer
		require.NoError(t, Text(&buf, b))

		expected := "   0 1 2 3\n" +
			" 0 . * . .\n" +
			" 1 * W B .\n" +
			" 2 . B W *\n" +
			" 3 . . * .\n"
		require.Equal(t, expected, buf.String())
	})

	t.Run("columns are x and rows are y", func(t *testing.T) {
		b := game.MustNewBoard(6, 4)
		require.NoError(t, b.SetCell(5, 0, game.Black))

		var buf bytes.Buffer
		require.NoError(t, Text(&buf, b))

		lines := bytes.Split(buf.Bytes(), []byte("\n"))
		require.Len(t, lines, 6, "header, four rows and a trailing newline")
		require.Equal(t, " 0 . . . . . B", string(lines[1]))
	})

	t.Run("write error is returned", func(t *testing.T) {
		require.Error(t, Text(failingWriter{}, game.MustNewBoard(4, 4)))
	})
}

func TestSummary(t *testing.T) {
	b := game.MustNewBoard(8, 8)
	_, err := b.Apply(2, 3, game.Black)
	require.NoError(t, err)
	require.Equal(t, "Black 4 - White 1", Summary(b))
}
