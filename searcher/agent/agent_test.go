package agent

import (
	"testing"

	"amazons/game"
	"amazons/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves until the game ends", func(t *testing.T) {
		agent := NewRandomAgent(42)
		b := game.NewBoard()

		for b.Winner() == game.Empty {
			move, _ := agent.FindMove(b)
			require.True(t, b.IsLegal(move), "%v should be legal after %d moves", move, b.NumMoves())
			b.ApplyMove(move)
		}

		move, _ := agent.FindMove(b)
		require.True(t, move.IsNone(), "Loser should have no move")
		require.Equal(t, b.Turn().Opponent(), b.Winner())
	})

	t.Run("same seed same game", func(t *testing.T) {
		play := func(seed uint64) []game.Move {
			agent := NewRandomAgent(seed)
			b := game.NewBoard()
			for i := 0; i < 20 && b.Winner() == game.Empty; i++ {
				move, _ := agent.FindMove(b)
				b.ApplyMove(move)
			}
			return b.History()
		}

		require.Equal(t, play(7), play(7))
		require.NotEqual(t, play(7), play(8))
	})

	t.Run("sampling reaches every move", func(t *testing.T) {
		b := game.NewBoard()
		for i := 0; i < game.NumSquares; i++ {
			if b.Get(game.SqIndex(i)) != game.White {
				b.Put(game.Spear, game.SqIndex(i))
			}
		}
		// only the d1 queen can move, up the d file
		b.Put(game.Empty, game.MustParseSquare("d2"))
		b.Put(game.Empty, game.MustParseSquare("d3"))
		rng := rand.New(rand.NewSource(1))

		seen := map[string]int{}
		for i := 0; i < 400; i++ {
			seen[sample(b.LegalMoves(game.White), rng).String()]++
		}

		require.Len(t, seen, 4)
		for _, text := range []string{"d1-d2(d3)", "d1-d2(d1)", "d1-d3(d2)", "d1-d3(d1)"} {
			require.Greater(t, seen[text], 50, "%s should be drawn about a quarter of the time", text)
		}
	})
}

func TestSearchAgent(t *testing.T) {
	agent := NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics()))
	b := game.NewBoard()

	move, metric := agent.FindMove(b)

	require.True(t, b.IsLegal(move))
	require.Equal(t, 1, metric.Depth)
	require.Positive(t, metric.Nodes)
}
