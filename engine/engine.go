package engine

import (
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/player"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrTooManyMoves = errors.New("too many moves")

type Outcome int

const (
	Lose Outcome = iota - 1
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "draw"
	}
}

// Result is the final score of a game in absolute stone counts.
type Result struct {
	Black  int
	White  int
	Winner game.Cell // Empty on a draw
}

func (r Result) Outcome(side game.Cell) Outcome {
	switch r.Winner {
	case game.Empty:
		return Draw
	case side:
		return Win
	default:
		return Lose
	}
}

// metered players can report the search behind their last move.
type metered interface {
	Metric() (metrics.SearchMetric, bool)
}

type Engine struct {
	ID      string
	players [2]player.Player // players[0] plays game.First
	master  *gamemaster.Master
}

func New(players [2]player.Player, initial game.State) *Engine {
	return &Engine{
		ID:      uuid.NewString(),
		players: players,
		master:  gamemaster.New(initial),
	}
}

// MaxMoves bounds a game on a board of the given size: every move fills a
// square and at most one pass separates two placements.
func MaxMoves(state game.State) int {
	return state.Height()*state.Width()*2 + 2
}

// Run plays the game to the end and returns its result along with the
// search statistics of every metered move.
func (e *Engine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	logger := log.With().Str("game", e.ID).Logger()
	start := time.Now()
	moveMetrics := []metrics.MoveMetric{}

	logger.Info().Msgf("%s plays black, %s plays white", e.players[0].Name(), e.players[1].Name())

	limit := MaxMoves(e.master.State())
	step := 0
	for !e.master.Over() {
		if step >= limit {
			return Result{}, metrics.GameMetric{}, moveMetrics, errors.Wrapf(ErrTooManyMoves, "game %s stopped after %d moves", e.ID, step)
		}
		step++

		state := e.master.State()
		side := state.Turn()
		current := e.players[side]

		move, err := current.ChooseMove(state)
		if err != nil {
			return Result{}, metrics.GameMetric{}, moveMetrics, errors.Wrapf(err, "%s failed to choose a move", current.Name())
		}
		if err := e.master.Play(move); err != nil {
			return Result{}, metrics.GameMetric{}, moveMetrics, err
		}

		if m, ok := current.(metered); ok {
			if search, ok := m.Metric(); ok {
				moveMetrics = append(moveMetrics, metrics.MoveMetric{
					Step:         step,
					Player:       side,
					Move:         move,
					SearchMetric: search,
				})
			}
		}

		logger.Debug().
			Int("step", step).
			Str("player", current.Name()).
			Stringer("side", side).
			Stringer("move", move).
			Msg("move played")
	}

	final := e.master.State()
	result := Result{
		Black:  final.Count(game.First),
		White:  final.Count(game.Second),
		Winner: game.Empty,
	}
	switch {
	case result.Black > result.White:
		result.Winner = game.First
	case result.White > result.Black:
		result.Winner = game.Second
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		ID:         e.ID,
		Winner:     result.Winner,
		Black:      result.Black,
		White:      result.White,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	}

	logger.Info().Msgf("game over after %d moves: black %d, white %d, winner %s", step, result.Black, result.White, result.Winner)
	return result, gameMetric, moveMetrics, nil
}

// Final returns the position the game ended in, or the current one while it runs.
func (e *Engine) Final() game.State {
	return e.master.State()
}
