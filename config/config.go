// Package config loads run settings for the train and test modes from YAML.
package config

import (
	"os"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Agent struct {
	Goroutines  int           `yaml:"goroutines"`
	Duration    time.Duration `yaml:"duration"`
	Episodes    int           `yaml:"episodes"`
	Cutoff      int           `yaml:"cutoff"`
	Evaluation  string        `yaml:"evaluation"` // "discs" or "mobility"
	Temperature float64       `yaml:"temperature"`
}

type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Games     int    `yaml:"games"`
	Seed      uint64 `yaml:"seed"`
	OutputDir string `yaml:"output_dir"`
	Agent     Agent  `yaml:"agent"`
}

func Default() Config {
	return Config{
		Width:     8,
		Height:    8,
		Games:     meta.Games,
		OutputDir: "experiments",
		Agent: Agent{
			Goroutines:  meta.GoRoutines,
			Episodes:    meta.Episodes,
			Cutoff:      meta.WithCutoff,
			Evaluation:  "discs",
			Temperature: 1.0,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := game.NewBoard(c.Width, c.Height); err != nil {
		return errors.WithMessage(ErrInvalid, err.Error())
	}
	if c.Games <= 0 {
		return errors.Wrap(ErrInvalid, "games must be positive")
	}
	if c.Agent.Episodes <= 0 && c.Agent.Duration <= 0 {
		return errors.Wrap(ErrInvalid, "agent needs episodes or a duration")
	}
	if c.Agent.Goroutines <= 0 {
		return errors.Wrap(ErrInvalid, "agent goroutines must be positive")
	}
	if c.Agent.Temperature <= 0 {
		return errors.Wrap(ErrInvalid, "agent temperature must be positive")
	}
	if _, err := c.Agent.EvaluateFn(); err != nil {
		return err
	}
	return nil
}

// EvaluateFn resolves the configured evaluation name.
func (a Agent) EvaluateFn() (game.Evaluate, error) {
	switch a.Evaluation {
	case "", "discs":
		return game.EvaluateDiscs, nil
	case "mobility":
		return game.EvaluateMobility, nil
	default:
		return nil, errors.Wrapf(ErrInvalid, "unknown evaluation %q", a.Evaluation)
	}
}

// AgentConfig describes the configured search agent for experiment records. Evaluate is
// nil for an unknown evaluation name, which Validate reports.
func (a Agent) AgentConfig(id int) metrics.AgentConfig {
	evaluate, _ := a.EvaluateFn()
	return metrics.AgentConfig{
		ID:         id,
		Kind:       "mcts",
		Goroutines: a.Goroutines,
		Duration:   a.Duration,
		Episodes:   a.Episodes,
		Cutoff:     a.Cutoff,
		Evaluate:   evaluate,
	}
}
