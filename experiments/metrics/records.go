package metrics

import "github.com/google/uuid"

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`  // "search" or "random"
	Depth     int    `yaml:"depth"` // 0 picks the depth from the move count
	Evaluator string `yaml:"evaluator"`
	NoPruning bool   `yaml:"no_pruning"`
	Seed      uint64 `yaml:"seed"`
}

type GameRecord struct {
	ID      uuid.UUID
	MatchUp int
	White   string // AgentConfig.Name
	Black   string // AgentConfig.Name
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	MoveMetric
}
