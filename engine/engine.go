package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

// MaxMoves bounds a game: each move fills one more square with a spear.
const MaxMoves = game.NumSquares - 8

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
