package player

import (
	"bytes"
	"strings"
	"testing"

	"amazons/game"

	"github.com/stretchr/testify/require"
)

func TestTextPlayer(t *testing.T) {
	t.Run("reads a legal move", func(t *testing.T) {
		var out bytes.Buffer
		p := NewTextPlayer(strings.NewReader("\n  d1-d7(g7)  \n"), &out)

		move, _ := p.FindMove(game.NewBoard())

		require.Equal(t, "d1-d7(g7)", move.String())
		require.Equal(t, "white> white> ", out.String(), "Blank lines should prompt again")
	})

	t.Run("rejects illegal moves and asks again", func(t *testing.T) {
		var out bytes.Buffer
		p := NewTextPlayer(strings.NewReader("d1-d10(d9)\na7-a6(a5)\nd1-d2(d3)\n"), &out)

		move, _ := p.FindMove(game.NewBoard())

		require.Equal(t, "d1-d2(d3)", move.String())
		require.Equal(t, 2, strings.Count(out.String(), "Invalid move. Please try again."),
			"Blocked moves and the opponent's queens should be rejected")
	})

	t.Run("reports unknown commands", func(t *testing.T) {
		var out bytes.Buffer
		p := NewTextPlayer(strings.NewReader("help\nquit\n"), &out)

		move, _ := p.FindMove(game.NewBoard())

		require.True(t, move.IsNone())
		require.Contains(t, out.String(), `Unknown command "help".`)
	})

	t.Run("dump prints the board", func(t *testing.T) {
		var out bytes.Buffer
		b := game.NewBoard()
		p := NewTextPlayer(strings.NewReader("dump\n"), &out)

		move, _ := p.FindMove(b)

		require.True(t, move.IsNone(), "End of input should resign")
		require.Contains(t, out.String(), b.String())
	})
}
