package gamemaster

import (
	"reversi/game"
	"reversi/utils"

	"github.com/pkg/errors"
)

type Update struct {
	Move  game.Move
	State game.State // position after Move
}

// Master owns the authoritative position of one game and only lets legal
// moves through.
type Master struct {
	state   game.State
	history []Update
}

func New(initial game.State) *Master {
	return &Master{state: initial}
}

func (m *Master) State() game.State {
	return m.state
}

func (m *Master) Over() bool {
	return m.state.IsDone()
}

// Play applies move for the side to move. An illegal move leaves the
// position untouched and returns an error wrapping one of the game errors.
func (m *Master) Play(move game.Move) error {
	if m.Over() {
		return errors.Wrapf(game.ErrGameOver, "cannot play %s", move)
	}

	turn := m.state.Turn()
	if utils.FindIndex(m.state.LegalActions(), move) < 0 {
		_, err := m.state.Next(move)
		if err == nil {
			err = game.ErrIllegalMove
		}
		return errors.Wrapf(err, "%s cannot play %s", turn, move)
	}

	next, err := m.state.Next(move)
	if err != nil {
		return errors.Wrapf(err, "%s cannot play %s", turn, move)
	}

	m.state = next
	m.history = append(m.history, Update{Move: move, State: next})
	return nil
}

// History returns the moves played so far, oldest first.
func (m *Master) History() []Update {
	history := make([]Update, len(m.history))
	copy(history, m.history)
	return history
}
