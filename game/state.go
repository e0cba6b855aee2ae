package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// State is an immutable Reversi position. Use NewState or NewStandard to
// build one; the zero value is not a usable board.
type State struct {
	board   []Cell // row-major, never written after construction
	height  int
	width   int
	depth   int
	passEnd bool
}

// NewState builds a position from a rectangular grid. depth is the number of
// moves already played; its parity decides who moves next.
func NewState(grid [][]Cell, depth int) (State, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return State{}, errors.Wrap(ErrInvalidBoard, "board has no cells")
	}
	if depth < 0 {
		return State{}, errors.Wrapf(ErrInvalidBoard, "negative depth %d", depth)
	}

	height, width := len(grid), len(grid[0])
	board := make([]Cell, 0, height*width)
	for r, row := range grid {
		if len(row) != width {
			return State{}, errors.Wrapf(ErrInvalidBoard, "row %d has %d cells, want %d", r, len(row), width)
		}
		for c, cell := range row {
			if !cell.valid() {
				return State{}, errors.Wrapf(ErrInvalidBoard, "cell (%d, %d) has value %d", r, c, int(cell))
			}
			board = append(board, cell)
		}
	}

	return State{
		board:  board,
		height: height,
		width:  width,
		depth:  depth,
	}, nil
}

func (s State) Height() int { return s.height }
func (s State) Width() int  { return s.width }
func (s State) Depth() int  { return s.depth }

// Color returns the content of (row, col). It panics outside the board.
func (s State) Color(row, col int) Cell {
	if !s.inBounds(row, col) {
		panic("game: coordinates (" + strconv.Itoa(row) + ", " + strconv.Itoa(col) + ") outside the board")
	}
	return s.board[s.index(row, col)]
}

// Turn returns the side to move.
func (s State) Turn() Cell {
	if s.depth%2 == 0 {
		return First
	}
	return Second
}

// StoneCount counts the stones of the side to move as mine and every other
// stone as theirs. The counts are relative to Turn, not to a fixed colour.
func (s State) StoneCount() (mine, theirs int) {
	turn := s.Turn()
	for _, cell := range s.board {
		if cell == Empty {
			continue
		}
		if cell == turn {
			mine++
		} else {
			theirs++
		}
	}
	return mine, theirs
}

// Count returns the absolute number of cells holding c.
func (s State) Count(c Cell) int {
	count := 0
	for _, cell := range s.board {
		if cell == c {
			count++
		}
	}
	return count
}

// LegalActions lists the capturing placements of the side to move in
// row-major order, always followed by Pass. The result is never empty.
func (s State) LegalActions() []Move {
	moves := []Move{}
	buf := make([]int, 0, s.height+s.width)
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			if s.isLegalAction(row, col, buf) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return append(moves, Pass)
}

// Next returns the position after move. Pass is always accepted on an
// unfinished board and ends the game when the opponent has no capturing move
// either.
func (s State) Next(move Move) (State, error) {
	if s.IsDone() {
		return State{}, ErrGameOver
	}

	next := State{
		board:  s.board,
		height: s.height,
		width:  s.width,
		depth:  s.depth + 1,
	}

	if move.IsPass() {
		// Board is shared: neither state writes to it.
		next.passEnd = !next.hasLegalAction()
		return next, nil
	}

	if !s.inBounds(move.Row, move.Col) {
		return State{}, errors.Wrapf(ErrOutOfBounds, "move %s", move)
	}
	at := s.index(move.Row, move.Col)
	if s.board[at] != Empty {
		return State{}, errors.Wrapf(ErrOccupied, "move %s", move)
	}
	captured := s.flips(move.Row, move.Col, nil)
	if len(captured) == 0 {
		return State{}, errors.Wrapf(ErrNoCapture, "move %s", move)
	}

	mover := s.Turn()
	next.board = make([]Cell, len(s.board))
	copy(next.board, s.board)
	next.board[at] = mover
	for _, i := range captured {
		next.board[i] = mover
	}
	return next, nil
}

// MustNext is Next for moves taken from LegalActions. It panics on error.
func (s State) MustNext(move Move) State {
	next, err := s.Next(move)
	if err != nil {
		panic(err)
	}
	return next
}

// IsDone reports a full board or a pass that left neither side a move.
func (s State) IsDone() bool {
	if s.passEnd {
		return true
	}
	for _, cell := range s.board {
		if cell == Empty {
			return false
		}
	}
	return true
}

// IsLose reports whether the side to move has lost a finished game.
func (s State) IsLose() bool {
	mine, theirs := s.StoneCount()
	return s.IsDone() && mine < theirs
}

// IsDraw reports whether a finished game is tied.
func (s State) IsDraw() bool {
	mine, theirs := s.StoneCount()
	return s.IsDone() && mine == theirs
}

func (s State) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < s.width; col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col % 10))
	}
	sb.WriteByte('\n')
	for row := 0; row < s.height; row++ {
		if row < 10 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < s.width; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(s.board[s.index(row, col)].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
