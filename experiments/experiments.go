package experiments

import (
	"io"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher"
	"reversi/searcher/agent"
	"reversi/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MatchUp pairs two agent levels. A moves first in the even games, B in the
// odd ones.
type MatchUp struct {
	A agent.Level
	B agent.Level
}

// DefaultMatchUps pits every level against every stronger one.
func DefaultMatchUps() []MatchUp {
	return []MatchUp{
		{A: agent.Weak, B: agent.Normal},
		{A: agent.Weak, B: agent.Strong},
		{A: agent.Normal, B: agent.Strong},
	}
}

// RunArena plays games games per matchup on a cfg.Rows x cfg.Cols board and
// writes the agent configs, game records and move records as CSV to w.
func RunArena(cfg meta.Config, matchUps []MatchUp, games int, w io.Writer) error {
	if games <= 0 {
		return errors.Errorf("games must be positive, got %d", games)
	}
	initial, err := game.NewStandard(cfg.Rows, cfg.Cols)
	if err != nil {
		return errors.Wrap(err, "failed to set up the board")
	}

	configs := agentConfigs(cfg, matchUps)
	configIDs := map[agent.Level]int{}
	for _, config := range configs {
		level, _ := agent.ParseLevel(config.Level)
		configIDs[level] = config.ID
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting arena with %d matchups of %d games on %dx%d", len(matchUps), games, cfg.Rows, cfg.Cols)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchUp.A, matchUp.B)

		wins := map[agent.Level]int{}
		draws := 0
		lengths := []int{}
		for i := 0; i < games; i++ {
			black, white := matchUp.A, matchUp.B
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			players := [2]player.Player{
				newComputer(black, cfg, seedFor(cfg.Seed, count, 0)),
				newComputer(white, cfg, seedFor(cfg.Seed, count, 1)),
			}
			e := engine.New(players, initial)

			result, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return errors.Wrapf(err, "matchup %d game %d failed", mi+1, i+1)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				BlackAgent: configIDs[black],
				WhiteAgent: configIDs[white],
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch result.Winner {
			case game.First:
				wins[black]++
			case game.Second:
				wins[white]++
			default:
				draws++
			}
			lengths = append(lengths, gameMetric.TotalMoves)

			log.Info().Msgf("completed matchup %d of %d game %d with black %s %d, white %s %d",
				mi+1, len(matchUps), i+1, black, result.Black, white, result.White)
		}

		log.Info().Msgf("completed matchup %d of %d: %s won %d, %s won %d, %d draws, %.1f moves per game",
			mi+1, len(matchUps), matchUp.A, wins[matchUp.A], matchUp.B, wins[matchUp.B],
			draws, float64(utils.Sum(lengths))/float64(games))
	}

	log.Info().Msg("completed arena")

	writer := metrics.NewWriter(w)
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return errors.Wrap(err, "failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	return nil
}

// agentConfigs lists each level taking part once, in order of appearance.
func agentConfigs(cfg meta.Config, matchUps []MatchUp) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	seen := []agent.Level{}
	for _, matchUp := range matchUps {
		for _, level := range []agent.Level{matchUp.A, matchUp.B} {
			if utils.Contains(seen, level) {
				continue
			}
			seen = append(seen, level)
			configs = append(configs, metrics.AgentConfig{
				ID:          len(configs) + 1,
				Level:       level.String(),
				Playouts:    cfg.Playouts,
				ExpandLimit: cfg.ExpandLimit,
				Evaluations: cfg.Evaluations,
			})
		}
	}
	return configs
}

func newComputer(level agent.Level, cfg meta.Config, seed uint64) player.Player {
	return player.NewComputer(level.String(), agent.New(level, cfg, seed, searcher.WithMetrics()))
}

// seedFor derives a distinct seed per game and side from base. A zero base
// keeps the clock seeding of the agents.
func seedFor(base uint64, index, side int) uint64 {
	if base == 0 {
		return 0
	}
	return base + uint64(2*index+side)
}
