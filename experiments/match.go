package experiments

import (
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Summary counts results from the first agent's point of view.
type Summary struct {
	Dir        string // Where the CSV files were written
	Games      int
	Wins       int
	Losses     int
	Draws      int
	Unfinished int // Games stopped by the turn cap
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// contender creates a fresh agent for every game so no search tree leaks between games.
type contender struct {
	config   metrics.AgentConfig
	newAgent func(game int) agent.Agent
}

func runMatch(name string, cfg config.Config, first, second contender) (Summary, error) {
	summary := Summary{}
	if err := cfg.Validate(); err != nil {
		return summary, err
	}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s run of %d games on a %dx%d board...", name, cfg.Games, cfg.Width, cfg.Height)

	for i := 1; i <= cfg.Games; i++ {
		// The first agent plays Black in odd games
		black, white := first, second
		firstColour := game.Black
		if i%2 == 0 {
			black, white = second, first
			firstColour = game.White
		}

		e, err := engine.NewLocal(black.newAgent(i), white.newAgent(i), cfg.Width, cfg.Height)
		if err != nil {
			return summary, errors.Wrapf(err, "failed to set up game %d", i)
		}

		winner, gameMetric, moveMetrics := e.Run()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			BlackAgent: black.config.ID,
			WhiteAgent: white.config.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i,
				MoveMetric: mm,
			})
		}

		summary.Games++
		switch winner {
		case "":
			summary.Unfinished++
		case game.Draw:
			summary.Draws++
		case firstColour.String():
			summary.Wins++
		default:
			summary.Losses++
		}

		log.Info().Msgf("completed game %d of %d with winner: %s (Black %d, White %d)",
			i, cfg.Games, winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	}

	log.Info().Msgf("completed %s run", name)

	dir, err := store(cfg.OutputDir, name, []metrics.AgentConfig{first.config, second.config}, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func store(root, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return writer.Dir(), errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return writer.Dir(), errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return writer.Dir(), errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
