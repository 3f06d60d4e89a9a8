package agent

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
)

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent playing the moves found by s.
func NewSearchAgent(s *searcher.AlphaBeta) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	return a.searcher.FindMove(board)
}
