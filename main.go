package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher/agent"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	// REVERSI_* variables may come from a local .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(2)
	}

	flags := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	configPath := flags.String("config", "", "optional config file (toml, yaml or json)")
	meta.RegisterFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := meta.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch cfg.Mode {
	case meta.ModeArena:
		err = experiments.RunArena(*cfg, experiments.DefaultMatchUps(), cfg.Games, os.Stdout)
	default:
		err = play(*cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("reversi stopped")
		os.Exit(1)
	}
}

// play runs one game between a human on in/out and a computer opponent.
func play(cfg meta.Config, in io.Reader, out io.Writer) error {
	level, err := agent.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	initial, err := game.NewStandard(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}

	human := player.NewHuman("you", in, out)
	computer := player.NewComputer("computer ("+level.String()+")", agent.New(level, cfg, cfg.Seed))

	humanSide := game.First
	players := [2]player.Player{human, computer}
	if !cfg.HumanFirst {
		humanSide = game.Second
		players = [2]player.Player{computer, human}
	}

	e := engine.New(players, initial)
	result, _, _, err := e.Run()
	if err != nil {
		if errors.Is(err, player.ErrInputClosed) {
			fmt.Fprintln(out, "\nbye")
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "\n%s\n", e.Final())
	fmt.Fprintf(out, "black %d, white %d: you %s\n", result.Black, result.White, result.Outcome(humanSide))
	return nil
}
