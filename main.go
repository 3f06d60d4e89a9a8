package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"amazons/engine"
	"amazons/experiments"
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/player"
	"amazons/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	white := flag.String("white", "human", "White player: human, search or random")
	black := flag.String("black", "search", "Black player: human, search or random")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "Search depth (0 deepens with the move count)")
	evaluator := flag.String("eval", meta.EVALUATOR, "Evaluator of search players")
	seed := flag.Uint64("seed", 1, "Seed of random players")
	experiment := flag.String("experiment", "", "Run the experiment described by this YAML file")
	quiet := flag.Bool("quiet", false, "Do not print the board after each move")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		if err := runExperiment(*experiment); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	whiteAgent, err := createAgent(*white, *depth, *evaluator, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid white player")
	}
	blackAgent, err := createAgent(*black, *depth, *evaluator, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid black player")
	}

	options := []engine.Option{}
	if !*quiet {
		options = append(options, engine.WithObserver(func(board *game.Board, move game.Move) {
			fmt.Printf("* %s\n%s", move, board)
		}))
	}
	e := engine.LocalEngine(whiteAgent, blackAgent, options...)
	if !*quiet {
		fmt.Print(e.Board())
	}

	winner, gameMetric, _ := e.Run()
	if winner == game.Empty {
		fmt.Println("No winner.")
		return
	}
	fmt.Printf("%s wins after %d moves.\n", capitalize(winner.Name()), gameMetric.TotalMoves)
}

func createAgent(kind string, depth int, evaluator string, seed uint64) (agent.Agent, error) {
	if kind == "human" {
		return player.NewTextPlayer(os.Stdin, os.Stdout), nil
	}
	return experiments.NewAgent(metrics.AgentConfig{
		Name:      kind,
		Kind:      kind,
		Depth:     depth,
		Evaluator: evaluator,
		Seed:      seed,
	}, 0)
}

func runExperiment(path string) error {
	cfg, err := experiments.LoadConfig(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.Run(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("results stored")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
