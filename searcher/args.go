package searcher

import (
	"reversi/experiments/metrics"
	"reversi/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	seed        uint64
	playouts    int
	expandLimit int
	evaluations int
	metrics     metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		seed:        uint64(time.Now().UnixNano()),
		playouts:    meta.PLAYOUT_COUNT,
		expandLimit: meta.EXPAND_LIMIT,
		evaluations: meta.TREE_SEARCH_COUNT,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s settings) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed))
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithPlayouts sets K, the playouts per candidate of the flat Monte Carlo agent.
func WithPlayouts(playouts int) Option {
	return func(s *settings) {
		if playouts > 0 {
			s.playouts = playouts
		}
	}
}

// WithExpansionThreshold sets E, the visits before an MCTS leaf is expanded.
func WithExpansionThreshold(visits int) Option {
	return func(s *settings) {
		if visits > 0 {
			s.expandLimit = visits
		}
	}
}

// WithEvaluations sets T, the MCTS evaluations per move.
func WithEvaluations(evaluations int) Option {
	return func(s *settings) {
		if evaluations > 0 {
			s.evaluations = evaluations
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
