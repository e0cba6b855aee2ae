package player

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/stretchr/testify/require"
)

func opening(t *testing.T) game.State {
	t.Helper()
	s, err := game.NewStandard(8, 8)
	require.NoError(t, err)
	return s
}

func TestHumanChooseMove(t *testing.T) {
	t.Run("reads a legal move", func(t *testing.T) {
		out := &bytes.Buffer{}
		h := NewHuman("you", strings.NewReader("2 3\n"), out)

		move, err := h.ChooseMove(opening(t))
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move)
		require.Contains(t, out.String(), "you (X) to move")
		require.Contains(t, out.String(), " 3 . . . O X . . .", "The board is shown before the prompt")
	})

	t.Run("asks again after bad input", func(t *testing.T) {
		out := &bytes.Buffer{}
		h := NewHuman("you", strings.NewReader("hello\n0 0\n9 9\n3 5,\n5,4\n"), out)

		move, err := h.ChooseMove(opening(t))
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 5, Col: 4}, move)
		require.Equal(t, 5, strings.Count(out.String(), "to move"), "One prompt per line read")
		require.Equal(t, 3, strings.Count(out.String(), "illegal move"))
	})

	t.Run("pass is accepted", func(t *testing.T) {
		h := NewHuman("you", strings.NewReader("pass\n"), &bytes.Buffer{})

		move, err := h.ChooseMove(opening(t))
		require.NoError(t, err)
		require.Equal(t, game.Pass, move)
	})

	t.Run("end of input", func(t *testing.T) {
		h := NewHuman("you", strings.NewReader("nonsense\n"), &bytes.Buffer{})

		_, err := h.ChooseMove(opening(t))
		require.True(t, errors.Is(err, ErrInputClosed))
	})
}

func TestComputer(t *testing.T) {
	cfg := meta.Default()
	cfg.Playouts = 3

	t.Run("plays the agent's move", func(t *testing.T) {
		c := NewComputer("cpu", agent.New(agent.Normal, cfg, 4, searcher.WithMetrics()))
		state := opening(t)

		move, err := c.ChooseMove(state)
		require.NoError(t, err)
		require.Contains(t, state.LegalActions(), move)
		require.Equal(t, "cpu", c.Name())

		metric, ok := c.Metric()
		require.True(t, ok)
		require.Equal(t, 3*4, metric.Episodes)
	})

	t.Run("random agents report no metric", func(t *testing.T) {
		c := NewComputer("cpu", agent.New(agent.Weak, cfg, 4))

		_, ok := c.Metric()
		require.False(t, ok)
	})
}
