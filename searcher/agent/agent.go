package agent

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

type Agent interface {
	// FindMove returns a move for the side to move and performance metrics (if collected) from the search.
	// It returns game.NoMove to resign, which agents do when they have no legal move.
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}
