// Package experiments runs the train and test modes: batches of games between agents whose
// results are stored as CSV files for later analysis.
package experiments

import (
	"reversi/config"
	"reversi/experiments/metrics"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Train plays self-play games between two training agents built from the same config.
// Colours alternate so that neither agent always moves first.
func Train(cfg config.Config) (Summary, error) {
	first := contender{
		config: cfg.Agent.AgentConfig(1),
		newAgent: func(game int) agent.Agent {
			seed := gameSeed(cfg.Seed, game, 1)
			return agent.NewTrainingAgent(createMCTS(cfg.Agent.AgentConfig(1), seed), cfg.Agent.Temperature, seed)
		},
	}
	second := contender{
		config: cfg.Agent.AgentConfig(2),
		newAgent: func(game int) agent.Agent {
			seed := gameSeed(cfg.Seed, game, 2)
			return agent.NewTrainingAgent(createMCTS(cfg.Agent.AgentConfig(2), seed), cfg.Agent.Temperature, seed)
		},
	}

	return runMatch("train", cfg, first, second)
}

// Test pits the configured search agent against the random baseline and logs its win rate.
func Test(cfg config.Config) (Summary, error) {
	candidate := contender{
		config: cfg.Agent.AgentConfig(1),
		newAgent: func(game int) agent.Agent {
			return agent.NewEvaluationAgent(createMCTS(cfg.Agent.AgentConfig(1), gameSeed(cfg.Seed, game, 1)))
		},
	}
	baseline := contender{
		config: metrics.AgentConfig{ID: 2, Kind: "random"},
		newAgent: func(game int) agent.Agent {
			return agent.NewRandomAgent(gameSeed(cfg.Seed, game, 2))
		},
	}

	summary, err := runMatch("test", cfg, candidate, baseline)
	if err != nil {
		return summary, err
	}
	log.Info().Msgf("search agent won %d of %d games against random (%.1f%%), drew %d",
		summary.Wins, summary.Games, 100*summary.WinRate(), summary.Draws)
	return summary, nil
}

// gameSeed derives a distinct seed per game and agent so runs with the same config repeat.
func gameSeed(seed uint64, game, agentID int) uint64 {
	return seed*1_000_003 + uint64(game)*31 + uint64(agentID)
}
