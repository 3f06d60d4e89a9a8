package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"amazons/experiments/metrics"
	"amazons/game"
)

// TextPlayer is an agent driven by text commands, one per line: a move such
// as "d1-d7(g7)", "dump" to print the board, or "quit" to resign.
type TextPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTextPlayer creates a TextPlayer reading commands from in and writing
// prompts and errors to out.
func NewTextPlayer(in io.Reader, out io.Writer) *TextPlayer {
	return &TextPlayer{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove prompts until a legal move is entered. It returns game.NoMove
// at end of input or on "quit".
func (p *TextPlayer) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	for {
		fmt.Fprintf(p.out, "%s> ", board.Turn().Name())
		if !p.in.Scan() {
			return game.NoMove, metrics.SearchMetric{}
		}
		line := strings.TrimSpace(p.in.Text())

		switch {
		case line == "":
			continue
		case line == "quit":
			return game.NoMove, metrics.SearchMetric{}
		case line == "dump":
			fmt.Fprint(p.out, board)
		case game.IsGrammaticalMove(line):
			move, _ := game.ParseMove(line)
			if board.IsLegal(move) {
				return move, metrics.SearchMetric{}
			}
			fmt.Fprintln(p.out, "Invalid move. Please try again.")
		default:
			fmt.Fprintf(p.out, "Unknown command %q.\n", line)
		}
	}
}
