package main

import (
	"bytes"
	"strings"
	"testing"

	"reversi/meta"

	"github.com/stretchr/testify/require"
)

func testConfig() meta.Config {
	cfg := meta.Default()
	cfg.Rows, cfg.Cols = 4, 4
	cfg.Level = "weak"
	cfg.Seed = 12
	return cfg
}

func TestPlay(t *testing.T) {
	t.Run("game runs to a result", func(t *testing.T) {
		out := &bytes.Buffer{}
		in := strings.NewReader(strings.Repeat("pass\n", 40))

		require.NoError(t, play(testConfig(), in, out))
		require.Regexp(t, `black \d+, white \d+: you (win|lose|draw)`, out.String())
	})

	t.Run("closed input ends quietly", func(t *testing.T) {
		out := &bytes.Buffer{}

		require.NoError(t, play(testConfig(), strings.NewReader(""), out))
		require.Contains(t, out.String(), "bye")
	})

	t.Run("computer moves first when asked", func(t *testing.T) {
		cfg := testConfig()
		cfg.HumanFirst = false
		out := &bytes.Buffer{}

		require.NoError(t, play(cfg, strings.NewReader(""), out))
		require.Contains(t, out.String(), "you (O) to move")
	})

	t.Run("bad settings", func(t *testing.T) {
		cfg := testConfig()
		cfg.Level = "godlike"
		require.Error(t, play(cfg, strings.NewReader(""), &bytes.Buffer{}))

		cfg = testConfig()
		cfg.Cols = 5
		require.Error(t, play(cfg, strings.NewReader(""), &bytes.Buffer{}))
	})
}
