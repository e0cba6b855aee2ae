// Package game implements the rules of Reversi on a rectangular board.
//
// A State is an immutable snapshot: every transition builds a new State and
// leaves its predecessor untouched, so agents can branch speculative futures
// from one position freely.
package game

import "github.com/pkg/errors"

// Cell is the content of a board square.
type Cell int

const (
	Empty  Cell = -1
	First  Cell = 0 // Black, moves first
	Second Cell = 1 // White
)

func (c Cell) String() string {
	switch c {
	case First:
		return "black"
	case Second:
		return "white"
	case Empty:
		return "empty"
	default:
		return "invalid"
	}
}

// Symbol is the single character used to draw the cell.
func (c Cell) Symbol() byte {
	switch c {
	case First:
		return 'X'
	case Second:
		return 'O'
	default:
		return '.'
	}
}

func (c Cell) valid() bool {
	return c == Empty || c == First || c == Second
}

// Opponent returns the other player, or Empty for Empty.
func Opponent(c Cell) Cell {
	switch c {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrOutOfBounds  = errors.Wrap(ErrIllegalMove, "coordinates outside the board")
	ErrOccupied     = errors.Wrap(ErrIllegalMove, "cell is not empty")
	ErrNoCapture    = errors.Wrap(ErrIllegalMove, "move captures no stones")
	ErrGameOver     = errors.New("game already finished")
	ErrInvalidBoard = errors.New("invalid board")
)
