package main

import (
	"fmt"
	"io"
	"os"
	"reversi/config"
	"reversi/experiments"
	"reversi/game"
	"reversi/meta"
	"reversi/render"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const gameReversi = "reversi"

type options struct {
	Config  flags.Filename `short:"c" long:"config" description:"YAML file with run settings"`
	Verbose bool           `short:"v" long:"verbose" description:"Log every move"`
	Show    bool           `short:"s" long:"show" description:"Print the starting board with Black's legal moves"`
	Args    struct {
		Mode string `positional-arg-name:"mode" description:"train or test"`
		Game string `positional-arg-name:"game" description:"game to play (reversi)"`
	} `positional-args:"yes" required:"yes"`
}

func parseArgs(args []string) (options, error) {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).ParseArgs(args); err != nil {
		return opts, err
	}

	switch opts.Args.Mode {
	case meta.ModeTrain, meta.ModeTest:
	default:
		return opts, errors.Errorf("mode must be %s or %s, got %q", meta.ModeTrain, meta.ModeTest, opts.Args.Mode)
	}
	if opts.Args.Game != gameReversi {
		return opts, errors.Errorf("unsupported game %q", opts.Args.Game)
	}
	return opts, nil
}

func setupLogging(w io.Writer, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func run(opts options, out io.Writer) error {
	device, err := meta.SelectDevice(opts.Args.Mode)
	if err != nil {
		return err
	}
	log.Info().Msgf("using device %s for %s", device, opts.Args.Mode)

	cfg, err := config.Load(string(opts.Config))
	if err != nil {
		return err
	}

	if opts.Show {
		board, err := game.NewBoard(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		board.MarkHints(game.Black)
		if err := render.Text(out, board); err != nil {
			return errors.Wrap(err, "failed to render board")
		}
		fmt.Fprintln(out, render.Summary(board))
	}

	var summary experiments.Summary
	switch opts.Args.Mode {
	case meta.ModeTrain:
		summary, err = experiments.Train(cfg)
	case meta.ModeTest:
		summary, err = experiments.Test(cfg)
	}
	if err != nil {
		return err
	}

	log.Info().Msgf("%s finished: %d won, %d lost, %d drawn, results in %s",
		opts.Args.Mode, summary.Wins, summary.Losses, summary.Draws, summary.Dir)
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(os.Stderr, opts.Verbose)

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
