package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// SelectAction returns a legal action for the side to move in state
	SelectAction(state game.State) game.Move
}

// Metered agents report the statistics of their last search.
type Metered interface {
	Metric() metrics.SearchMetric
}
