package searcher

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning.
// White maximizes and Black minimizes the evaluator's score. An AlphaBeta
// keeps per-search scratch state and must not be shared between goroutines.
type AlphaBeta struct {
	depth    int // fixed search depth; 0 means MaxDepth
	evaluate game.Evaluate
	prune    bool
	metrics  metrics.Collector

	boards []*game.Board // boards[d] holds the position searched at depth d
	best   game.Move     // best root move found so far
}

// WithDepth fixes the search depth instead of deriving it from the move count.
func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithoutPruning turns the search into plain minimax.
func WithoutPruning() Option {
	return func(s *AlphaBeta) {
		s.prune = false
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		evaluate: game.EvaluateMobility,
		prune:    true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// MaxDepth is the search depth used for board unless WithDepth is given:
// the search deepens as the board fills up and the branching factor drops.
func MaxDepth(board *game.Board) int {
	return depthForMoves(board.NumMoves())
}

func depthForMoves(numMoves int) int {
	switch {
	case numMoves < 40:
		return 1
	case numMoves < 70:
		return 2
	default:
		return 3
	}
}

// FindMove returns the best move for the side to move in board, or
// game.NoMove if it has none. board is not modified.
func (s *AlphaBeta) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	depth := s.depth
	if depth <= 0 {
		depth = MaxDepth(board)
	}
	s.reserve(depth)
	s.metrics.Start(depth)

	root := s.boards[depth]
	root.CopyFrom(board)
	s.best = game.NoMove
	score := s.search(root, depth, -game.Infinity, game.Infinity, true)
	s.metrics.SetScore(score)

	return s.best, s.metrics.Complete()
}

func (s *AlphaBeta) reserve(depth int) {
	for len(s.boards) <= depth {
		s.boards = append(s.boards, game.NewBoard())
	}
}

// search returns the minimax value of board searched depth plies deep. Values
// outside (alpha, beta) are bounds only: they never beat the caller's best.
func (s *AlphaBeta) search(board *game.Board, depth, alpha, beta int, isRoot bool) int {
	s.metrics.AddNode()
	if depth == 0 || board.Winner() != game.Empty {
		return s.evaluate(board)
	}

	maximizing := board.Turn() == game.White
	best := game.Infinity
	if maximizing {
		best = -game.Infinity
	}

	child := s.boards[depth-1]
	moves := board.LegalMoves(board.Turn())
	for move, ok := moves.Next(); ok; move, ok = moves.Next() {
		child.CopyFrom(board)
		child.ApplyMove(move)
		score := s.search(child, depth-1, alpha, beta, false)

		if maximizing {
			if score > best {
				best = score
				if isRoot {
					s.best = move
				}
			}
			alpha = max(alpha, score)
		} else {
			if score < best {
				best = score
				if isRoot {
					s.best = move
				}
			}
			beta = min(beta, score)
		}

		if s.prune && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
