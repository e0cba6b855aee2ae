package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/stretchr/testify/require"
)

func board(t *testing.T, rows, cols int) game.State {
	t.Helper()
	s, err := game.NewStandard(rows, cols)
	require.NoError(t, err)
	return s
}

func computer(name string, level agent.Level, seed uint64) *player.Computer {
	cfg := meta.Default()
	cfg.Playouts = 2
	cfg.Evaluations = 20
	cfg.ExpandLimit = 3
	return player.NewComputer(name, agent.New(level, cfg, seed, searcher.WithMetrics()))
}

type passer struct{}

func (passer) Name() string { return "passer" }

func (passer) ChooseMove(game.State) (game.Move, error) { return game.Pass, nil }

func TestRun(t *testing.T) {
	t.Run("random players finish a game", func(t *testing.T) {
		initial := board(t, 6, 6)
		e := New([2]player.Player{computer("a", agent.Weak, 1), computer("b", agent.Weak, 2)}, initial)

		result, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.True(t, e.Final().IsDone())
		require.LessOrEqual(t, result.Black+result.White, 36)
		require.Equal(t, e.Final().Count(game.First), result.Black)
		require.Equal(t, e.Final().Count(game.Second), result.White)
		require.Empty(t, moveMetrics, "Random agents are not metered")

		require.Equal(t, e.ID, gameMetric.ID)
		require.Equal(t, result.Winner, gameMetric.Winner)
		require.Equal(t, e.Final().Depth(), gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves(initial))
	})

	t.Run("search players are metered on every move", func(t *testing.T) {
		e := New([2]player.Player{computer("mc", agent.Normal, 3), computer("mcts", agent.Strong, 4)}, board(t, 4, 4))

		_, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if mm.Player == game.First {
				require.Equal(t, "montecarlo", mm.Agent)
			} else {
				require.Equal(t, "mcts", mm.Agent)
			}
		}
	})

	t.Run("endless passing is stopped", func(t *testing.T) {
		initial := board(t, 4, 4)
		e := New([2]player.Player{passer{}, passer{}}, initial)

		_, _, _, err := e.Run()
		require.True(t, errors.Is(err, ErrTooManyMoves))
		require.Equal(t, MaxMoves(initial), e.Final().Depth())
	})

	t.Run("closed human input aborts the game", func(t *testing.T) {
		human := player.NewHuman("you", strings.NewReader(""), &bytes.Buffer{})
		e := New([2]player.Player{human, computer("cpu", agent.Weak, 5)}, board(t, 4, 4))

		_, _, _, err := e.Run()
		require.True(t, errors.Is(err, player.ErrInputClosed))
	})

	t.Run("games get distinct ids", func(t *testing.T) {
		players := [2]player.Player{passer{}, passer{}}
		require.NotEqual(t, New(players, board(t, 4, 4)).ID, New(players, board(t, 4, 4)).ID)
	})
}

func TestResultOutcome(t *testing.T) {
	black := Result{Black: 10, White: 6, Winner: game.First}
	require.Equal(t, Win, black.Outcome(game.First))
	require.Equal(t, Lose, black.Outcome(game.Second))

	draw := Result{Black: 8, White: 8, Winner: game.Empty}
	require.Equal(t, Draw, draw.Outcome(game.First))
	require.Equal(t, Draw, draw.Outcome(game.Second))

	require.Equal(t, "win", Win.String())
	require.Equal(t, "lose", Lose.String())
	require.Equal(t, "draw", Draw.String())
}
