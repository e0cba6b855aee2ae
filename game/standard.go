package game

import "github.com/pkg/errors"

const (
	StandardRows = 8
	StandardCols = 8
)

// NewStandard returns an empty rows x cols board with the opening diamond in
// the centre: white on the main diagonal, black on the other, black to move.
func NewStandard(rows, cols int) (State, error) {
	if rows < 2 || cols < 2 || rows%2 != 0 || cols%2 != 0 {
		return State{}, errors.Wrapf(ErrInvalidBoard, "standard layout needs even dimensions of at least 2, got %dx%d", rows, cols)
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			grid[r][c] = Empty
		}
	}
	top, left := rows/2-1, cols/2-1
	grid[top][left] = Second
	grid[top][left+1] = First
	grid[top+1][left] = First
	grid[top+1][left+1] = Second

	return NewState(grid, 0)
}
