package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Move places a stone at (Row, Col). Pass is the only move without a square.
type Move struct {
	Row int
	Col int
}

var Pass = Move{Row: -1, Col: -1}

func (m Move) IsPass() bool {
	return m == Pass
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}

// ParseMove reads the String form of a move: "pass" or "row col".
// A comma may separate the coordinates.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "pass" || s == "p" {
		return Pass, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return Move{}, errors.Errorf("cannot parse move %q: want \"row col\" or \"pass\"", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, errors.Wrapf(err, "cannot parse row of move %q", s)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, errors.Wrapf(err, "cannot parse column of move %q", s)
	}
	return Move{Row: row, Col: col}, nil
}
