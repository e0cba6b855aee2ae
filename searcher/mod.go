// Package searcher implements the move-choosing agents: uniform random,
// flat Monte Carlo and Monte Carlo Tree Search. All of them are single
// threaded and own their random generator.
package searcher

import (
	"reversi/game"
)

const C_SQUARED = 2.0 // Exploration constant of UCB1

// Results are from the perspective of the side to move.
const (
	WIN  = 1
	DRAW = 0
	LOSS = -WIN
)

// candidates returns the moves an agent chooses from: the legal actions
// without the trailing Pass, unless Pass is the only one.
func candidates(state game.State) []game.Move {
	moves := state.LegalActions()
	if len(moves) > 1 {
		moves = moves[:len(moves)-1]
	}
	return moves
}

// outcome scores a finished game for the side to move.
func outcome(state game.State) int {
	switch {
	case state.IsLose():
		return LOSS
	case state.IsDraw():
		return DRAW
	default:
		return WIN
	}
}

// playout plays random moves to the end of the game and returns the result
// for the side to move in state. Each ply flips the perspective.
func playout(state game.State, policy *Random) int {
	if state.IsDone() {
		return outcome(state)
	}
	return -playout(state.MustNext(policy.SelectAction(state)), policy)
}
