package searcher

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves, passing only when it must.
type Random struct {
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	return newRandom(newSettings(options).rng())
}

func newRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) SelectAction(state game.State) game.Move {
	moves := candidates(state)
	if len(moves) == 1 {
		return moves[0]
	}
	return moves[a.rng.Intn(len(moves))]
}
