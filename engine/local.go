package engine

import (
	"time"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Observer is called after every move with the board the move was played on.
type Observer func(board *game.Board, move game.Move)

type Option func(e *Local)

// Local plays a game between two in-process agents.
type Local struct {
	board    *game.Board
	agents   map[game.Piece]agent.Agent
	maxMoves int
	observer Observer
}

// WithMaxMoves stops the game undecided after n moves.
func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithBoard starts the game from a copy of board instead of the initial position.
func WithBoard(board *game.Board) Option {
	return func(e *Local) {
		if board != nil {
			e.board = board.Copy()
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

func LocalEngine(white, black agent.Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	e := &Local{
		board:    game.NewBoard(),
		agents:   map[game.Piece]agent.Agent{game.White: white, game.Black: black},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the engine's board, which Run plays on.
func (e *Local) Board() *game.Board {
	return e.board
}

// Run executes the entire game loop until a winner is found. A side whose
// agent returns game.NoMove resigns; an illegal move is replaced by the
// side's first legal move.
func (e *Local) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.board.Turn().Name(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Str("player", gameMetric.StartingPlayer).Msg("game starting")

	winner := game.Empty
	for step := 1; step <= e.maxMoves; step++ {
		if winner = e.board.Winner(); winner != game.Empty {
			break
		}
		side := e.board.Turn()

		// Agents search a copy so they cannot tamper with the game
		move, searchMetric := e.agents[side].FindMove(e.board.Copy())
		if move.IsNone() {
			log.Info().Msgf("%s resigned after %d moves", side.Name(), e.board.NumMoves())
			winner = side.Opponent()
			gameMetric.Resigned = true
			break
		}
		if !e.board.IsLegal(move) {
			fallback, _ := e.board.LegalMoves(side).Next()
			log.Warn().Msgf("%s played illegal move %v, playing %v instead", side.Name(), move, fallback)
			move = fallback
		}

		e.board.ApplyMove(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", side.Name()).Str("move", move.String()).
			Int("nodes", searchMetric.Nodes).Msg("move played")

		if e.observer != nil {
			e.observer(e.board, move)
		}
	}
	if winner == game.Empty {
		winner = e.board.Winner()
	}

	gameMetric.Winner = winner.Name()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.Empty {
		log.Warn().Msgf("stopped after %d moves (no winner yet)", len(moveMetrics))
	}
	return winner, gameMetric, moveMetrics
}
