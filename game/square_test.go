package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareCoordinates(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		sq := SqIndex(i)
		require.Equal(t, i, sq.Index())
		require.Equal(t, i, sq.Row()*Size+sq.Col(), "Index should match row and column")
		require.Equal(t, sq, Sq(sq.Col(), sq.Row()))

		parsed, ok := ParseSquare(sq.String())
		require.True(t, ok, "%v should parse", sq)
		require.Equal(t, sq, parsed)
	}

	require.Equal(t, "j2", SqIndex(19).String())
	require.Equal(t, "a1", SqIndex(0).String())
	require.Equal(t, "j10", SqIndex(99).String())
}

func TestSquareBounds(t *testing.T) {
	require.True(t, Exists(0, 0))
	require.True(t, Exists(9, 9))
	require.False(t, Exists(10, 0))
	require.False(t, Exists(0, -1))

	require.Panics(t, func() { Sq(10, 3) }, "Should panic off the board")
	require.Panics(t, func() { Sq(-1, 3) }, "Should panic off the board")
	require.Panics(t, func() { SqIndex(100) }, "Should panic off the board")
}

func TestParseSquare(t *testing.T) {
	for _, text := range []string{"", "a", "a0", "a11", "k1", "A1", "a01", " a1", "a1 "} {
		_, ok := ParseSquare(text)
		require.False(t, ok, "%q should not parse", text)
	}
	require.Equal(t, Sq(4, 6), MustParseSquare("e7"))
	require.Equal(t, Sq(0, 9), MustParseSquare("a10"))
}

func TestIsQueenMove(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		for j := 0; j < NumSquares; j++ {
			from, to := Square(i), Square(j)
			dcol := abs(to.Col() - from.Col())
			drow := abs(to.Row() - from.Row())
			want := from != to && (dcol == 0 || drow == 0 || dcol == drow)

			require.Equal(t, want, from.IsQueenMove(to), "%v-%v", from, to)
		}
	}
	require.False(t, SqIndex(5).IsQueenMove(NoSquare))
}

func TestDirection(t *testing.T) {
	d4 := MustParseSquare("d4")
	cases := map[string]Direction{
		"d9": N, "h8": NE, "j4": E, "g1": SE,
		"d1": S, "a1": SW, "a4": W, "a7": NW,
	}
	for text, want := range cases {
		to := MustParseSquare(text)
		require.Equal(t, want, d4.Direction(to), "d4-%s", text)
		require.Equal(t, to, d4.QueenMove(want, d4.Distance(to)), "Stepping back should reach %s", text)
	}

	require.Panics(t, func() { d4.Direction(MustParseSquare("e6")) }, "Knight jump has no direction")
	require.Panics(t, func() { d4.Direction(d4) }, "Null move has no direction")
}

func TestQueenMove(t *testing.T) {
	a1 := MustParseSquare("a1")

	require.Equal(t, MustParseSquare("a10"), a1.QueenMove(N, 9))
	require.Equal(t, MustParseSquare("j10"), a1.QueenMove(NE, 9))
	require.Equal(t, NoSquare, a1.QueenMove(N, 10))
	require.Equal(t, NoSquare, a1.QueenMove(S, 1))
	require.Equal(t, NoSquare, a1.QueenMove(W, 1))
	require.Equal(t, NoSquare, a1.QueenMove(NumDirections, 1))
	require.Equal(t, NoSquare, a1.QueenMove(N, 0), "Zero steps is not a move")
	require.Equal(t, NoSquare, MustParseSquare("e5").QueenMove(N, -1), "Negative steps do not reverse")

	for i := 0; i < NumSquares; i++ {
		from := Square(i)
		for dir := N; dir < NumDirections; dir++ {
			for steps := 1; steps < Size; steps++ {
				to := from.QueenMove(dir, steps)
				if to == NoSquare {
					continue
				}
				require.True(t, from.IsQueenMove(to))
				require.Equal(t, dir, from.Direction(to))
				require.Equal(t, steps, from.Distance(to))
			}
		}
	}
}
