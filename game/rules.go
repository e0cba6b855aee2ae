package game

// The eight rays walked from a placed stone.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (s State) inBounds(row, col int) bool {
	return 0 <= row && row < s.height && 0 <= col && col < s.width
}

func (s State) index(row, col int) int {
	return row*s.width + col
}

// flips appends to dst the indices of the stones captured when the side to
// move places at (row, col). Along each ray the opposing run is kept only if
// a stone of the mover closes it; an empty square or the edge discards it.
// Legality and execution both go through here so they cannot disagree.
func (s State) flips(row, col int, dst []int) []int {
	mover := s.Turn()
	for _, d := range directions {
		run := len(dst)
		r, c := row+d[0], col+d[1]
		closed := false
		for s.inBounds(r, c) {
			cell := s.board[s.index(r, c)]
			if cell == Empty {
				break
			}
			if cell == mover {
				closed = true
				break
			}
			dst = append(dst, s.index(r, c))
			r, c = r+d[0], c+d[1]
		}
		if !closed {
			dst = dst[:run]
		}
	}
	return dst
}

func (s State) isLegalAction(row, col int, buf []int) bool {
	if s.board[s.index(row, col)] != Empty {
		return false
	}
	return len(s.flips(row, col, buf[:0])) != 0
}

// hasLegalAction reports whether the side to move has any move besides Pass.
func (s State) hasLegalAction() bool {
	buf := make([]int, 0, s.height+s.width)
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			if s.isLegalAction(row, col, buf) {
				return true
			}
		}
	}
	return false
}
