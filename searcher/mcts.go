package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// MCTS grows a fresh search tree on every call: the root is expanded
// up front, leaves are expanded after expandLimit visits, children are
// chosen by UCB1 and the most visited root move is played.
type MCTS struct {
	evaluations int
	expandLimit int
	policy      *Random
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func NewMCTS(options ...Option) *MCTS {
	s := newSettings(options)
	return &MCTS{
		evaluations: s.evaluations,
		expandLimit: s.expandLimit,
		policy:      newRandom(s.rng()),
		metrics:     s.metrics,
	}
}

func (m *MCTS) SelectAction(state game.State) game.Move {
	if state.IsDone() {
		return game.Pass
	}

	m.metrics.Start("mcts")
	root := m.search(state)

	moves := candidates(state)
	best := root.mostVisited(len(moves))
	move := moves[best]

	m.last = m.metrics.Complete()
	log.Debug().
		Str("agent", "mcts").
		Stringer("move", move).
		Int("visits", root.children[best].n).
		Int("root_visits", root.n).
		Msg("selected move")
	return move
}

func (m *MCTS) search(state game.State) *node {
	root := newNode(state)
	root.expand()
	m.metrics.AddExpansion()
	for i := 0; i < m.evaluations; i++ {
		root.evaluate(m)
		m.metrics.AddEpisode()
	}
	return &root
}

// Metric returns the statistics of the last SelectAction call.
func (m *MCTS) Metric() metrics.SearchMetric {
	return m.last
}
