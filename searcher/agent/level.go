package agent

import (
	"strings"

	"reversi/meta"
	"reversi/searcher"

	"github.com/pkg/errors"
)

// Level is the playing strength of a computer opponent.
type Level int

const (
	Weak   Level = iota // uniform random
	Normal              // flat Monte Carlo
	Strong              // Monte Carlo Tree Search
)

var levelNames = map[string]Level{
	"weak":       Weak,
	"random":     Weak,
	"normal":     Normal,
	"montecarlo": Normal,
	"strong":     Strong,
	"mcts":       Strong,
}

func ParseLevel(s string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Errorf("unknown level %q, want weak, normal or strong", s)
	}
	return level, nil
}

func (l Level) String() string {
	switch l {
	case Weak:
		return "weak"
	case Normal:
		return "normal"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// New builds the agent for level with the search budgets of cfg. Extra
// options are applied after the configured ones.
func New(level Level, cfg meta.Config, seed uint64, options ...searcher.Option) Agent {
	opts := []searcher.Option{
		searcher.WithPlayouts(cfg.Playouts),
		searcher.WithExpansionThreshold(cfg.ExpandLimit),
		searcher.WithEvaluations(cfg.Evaluations),
	}
	if seed != 0 {
		opts = append(opts, searcher.WithSeed(seed))
	}
	opts = append(opts, options...)

	switch level {
	case Normal:
		return searcher.NewMonteCarlo(opts...)
	case Strong:
		return searcher.NewMCTS(opts...)
	default:
		return searcher.NewRandom(opts...)
	}
}
