package experiments

import (
	"context"
	"fmt"

	"amazons/engine"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays every match up of cfg, up to cfg.Concurrency games at a time,
// and stores the results under cfg.Output. It returns the directory the
// results were written to.
func Run(ctx context.Context, cfg *Config) (string, error) {
	results := make([]gameResult, len(cfg.MatchUps)*cfg.Games)

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for mi, matchup := range cfg.MatchUps {
		for i := 0; i < cfg.Games; i++ {
			// Alternate colours so neither agent always moves first
			white, black := cfg.agentConfig(matchup[0]), cfg.agentConfig(matchup[1])
			if i%2 == 1 {
				white, black = black, white
			}
			slot := mi*cfg.Games + i
			mi, i := mi, i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(cfg.MatchUps), i+1, cfg.Games)

				result, err := runGame(white, black, uint64(slot), cfg.MaxMoves)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				result.record.MatchUp = mi + 1
				results[slot] = result

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, result.record.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	return store(cfg, results)
}

func store(cfg *Config, results []gameResult) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		moveRecords = append(moveRecords, result.moves...)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between fresh agents built from the two configs.
func runGame(white, black metrics.AgentConfig, salt uint64, maxMoves int) (gameResult, error) {
	whiteAgent, err := NewAgent(white, salt)
	if err != nil {
		return gameResult{}, err
	}
	blackAgent, err := NewAgent(black, salt)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.LocalEngine(whiteAgent, blackAgent, engine.WithMaxMoves(maxMoves))
	_, gameMetric, moveMetrics := e.Run()

	result := gameResult{
		record: metrics.GameRecord{
			ID:         uuid.New(),
			White:      white.Name,
			Black:      black.Name,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{
			Game:       result.record.ID,
			MoveMetric: mm,
		})
	}
	return result, nil
}

// NewAgent builds the agent described by config. salt is added to the seed
// of random agents so repeated games differ.
func NewAgent(config metrics.AgentConfig, salt uint64) (agent.Agent, error) {
	switch config.Kind {
	case RandomAgent:
		return agent.NewRandomAgent(config.Seed + salt), nil
	case SearchAgent, "":
		s, err := createSearcher(config)
		if err != nil {
			return nil, err
		}
		return agent.NewSearchAgent(s), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}

func createSearcher(config metrics.AgentConfig) (*searcher.AlphaBeta, error) {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Evaluator != "" {
		evaluate, err := game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	if config.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewAlphaBeta(options...), nil
}
