package agent

import (
	"amazons/experiments/metrics"
	"amazons/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among the legal moves.
// Agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	return sample(board.LegalMoves(board.Turn()), a.rng), metrics.SearchMetric{}
}

// sample draws one move by reservoir sampling, so the moves are never
// collected in a slice.
func sample(moves *game.MoveIter, rng *rand.Rand) game.Move {
	chosen := game.NoMove
	seen := 0
	for move, ok := moves.Next(); ok; move, ok = moves.Next() {
		seen++
		if rng.Intn(seen) == 0 {
			chosen = move
		}
	}
	return chosen
}
