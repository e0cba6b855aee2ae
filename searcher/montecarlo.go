package searcher

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MonteCarlo rates every candidate move by the summed result of a fixed
// number of random playouts and plays the best one.
type MonteCarlo struct {
	playouts int
	rng      *rand.Rand
	policy   *Random
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	s := newSettings(options)
	rng := s.rng()
	return &MonteCarlo{
		playouts: s.playouts,
		rng:      rng,
		policy:   newRandom(rng),
		metrics:  s.metrics,
	}
}

func (a *MonteCarlo) SelectAction(state game.State) game.Move {
	if state.IsDone() {
		return game.Pass
	}

	a.metrics.Start("montecarlo")
	moves := candidates(state)
	values := a.evaluate(state, moves)

	maxValue := math.MinInt
	best := []game.Move{}
	for i, value := range values {
		if value > maxValue {
			maxValue = value
			best = best[:0]
			best = append(best, moves[i])
		} else if value == maxValue {
			best = append(best, moves[i])
		}
	}
	move := best[a.rng.Intn(len(best))]

	a.last = a.metrics.Complete()
	log.Debug().
		Str("agent", "montecarlo").
		Stringer("move", move).
		Int("score", maxValue).
		Int("ties", len(best)).
		Msg("selected move")
	return move
}

// evaluate sums the playout results of each move from the mover's side.
func (a *MonteCarlo) evaluate(state game.State, moves []game.Move) []int {
	values := make([]int, len(moves))
	for i, move := range moves {
		next := state.MustNext(move)
		for j := 0; j < a.playouts; j++ {
			// playout scores next for the opponent
			values[i] -= playout(next, a.policy)
			a.metrics.AddEpisode()
			a.metrics.AddFullPlayout()
		}
	}
	return values
}

// Metric returns the statistics of the last SelectAction call.
func (a *MonteCarlo) Metric() metrics.SearchMetric {
	return a.last
}
