package experiments

import (
	"fmt"
	"os"

	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/meta"
	"amazons/utils"

	"gopkg.in/yaml.v3"
)

const (
	SearchAgent = "search"
	RandomAgent = "random"
)

// Config describes an experiment: every match-up is played Games times,
// the two agents swapping colours after each game.
type Config struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"` // per match up
	Concurrency int                   `yaml:"concurrency"`
	Output      string                `yaml:"output"`
	MaxMoves    int                   `yaml:"max_moves"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][]string            `yaml:"matchups"` // pairs of agent names
}

// LoadConfig reads and validates the experiment file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML experiment config, fills in defaults and
// validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = meta.CONCURRENCY
	}
	if cfg.Output == "" {
		cfg.Output = meta.OUTPUT_DIR
	}
	for i := range cfg.Agents {
		if cfg.Agents[i].Kind == "" {
			cfg.Agents[i].Kind = SearchAgent
		}
		if cfg.Agents[i].Kind == SearchAgent && cfg.Agents[i].Evaluator == "" {
			cfg.Agents[i].Evaluator = meta.EVALUATOR
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxMoves < 0 {
		return fmt.Errorf("max_moves must not be negative, got %d", c.MaxMoves)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no match ups")
	}

	names := c.agentNames()
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent without a name")
		}
		if utils.FindIndex(names, a.Name) != i {
			return fmt.Errorf("duplicate agent %q", a.Name)
		}

		switch a.Kind {
		case SearchAgent:
			if a.Depth < 0 {
				return fmt.Errorf("agent %q: depth must not be negative, got %d", a.Name, a.Depth)
			}
			if _, err := game.EvaluatorByName(a.Evaluator); err != nil {
				return fmt.Errorf("agent %q: %w", a.Name, err)
			}
		case RandomAgent:
		default:
			return fmt.Errorf("agent %q: unknown kind %q", a.Name, a.Kind)
		}
	}

	for i, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("match up %d: want 2 agents, got %d", i+1, len(m))
		}
		for _, name := range m {
			if utils.FindIndex(names, name) < 0 {
				return fmt.Errorf("match up %d: unknown agent %q", i+1, name)
			}
		}
	}
	return nil
}

func (c *Config) agentNames() []string {
	return utils.Map(c.Agents, func(a metrics.AgentConfig) string { return a.Name })
}

// agentConfig returns the configuration of the named agent.
func (c *Config) agentConfig(name string) metrics.AgentConfig {
	i := utils.FindIndex(c.agentNames(), name)
	if i < 0 {
		panic(fmt.Sprintf("unknown agent %q", name))
	}
	return c.Agents[i]
}
