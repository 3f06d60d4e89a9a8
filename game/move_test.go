package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("parses well-formed moves", func(t *testing.T) {
		m, ok := ParseMove("d1-d7(d1)")

		require.True(t, ok)
		require.Equal(t, MustParseSquare("d1"), m.From())
		require.Equal(t, MustParseSquare("d7"), m.To())
		require.Equal(t, MustParseSquare("d1"), m.Spear())
		require.True(t, IsGrammaticalMove("j10-a1(b10)"))
	})

	t.Run("rejects other input", func(t *testing.T) {
		for _, text := range []string{
			"", "quit", "new", "d1-d7", "d1-d7()", "d1 d7(d1)", "d1-d7(d1",
			"d1-d7(d1)x", "k1-d7(d1)", "d0-d7(d1)", "d11-d7(d1)", "D1-d7(d1)",
		} {
			m, ok := ParseMove(text)
			require.False(t, ok, "%q should not parse", text)
			require.True(t, m.IsNone())
			require.False(t, IsGrammaticalMove(text))
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		for i := 0; i < NumSquares; i += 7 {
			for j := 0; j < NumSquares; j += 11 {
				for k := 0; k < NumSquares; k += 13 {
					m := NewMove(Square(i), Square(j), Square(k))
					parsed, ok := ParseMove(m.String())
					require.True(t, ok, "%v should parse", m)
					require.Equal(t, m, parsed)
				}
			}
		}
	})
}

func TestNoMove(t *testing.T) {
	require.True(t, NoMove.IsNone())
	require.False(t, NewMove(0, 1, 2).IsNone())
	require.Equal(t, "none", NoMove.String())
}
