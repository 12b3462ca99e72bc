package board

import (
	"fmt"

	"github.com/m0ose01/tic-tac-terminal/internal/apperror"
	"github.com/m0ose01/tic-tac-terminal/internal/entity"
)

// OccupiedError is returned by PlaceCell when the target cell already holds a mark.
type OccupiedError struct {
	Row int
	Col int
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%s: (%d, %d)", apperror.ErrCellOccupied, that.Row, that.Col)
}

func (that *OccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}

// OutOfBoundsError is returned by PlaceCell for coordinates outside the grid.
type OutOfBoundsError struct {
	Row  int
	Col  int
	Size int
}

func (that *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: (%d, %d) on a %dx%d board", apperror.ErrOutOfBounds, that.Row, that.Col, that.Size, that.Size)
}

func (that *OutOfBoundsError) Unwrap() error {
	return apperror.ErrOutOfBounds
}

// Board is a square grid of cells stored row-major.
// turn always equals the number of non-empty cells; the mark to play is derived from it.
type Board struct {
	size  int
	cells []entity.Cell
	turn  int
}

// New - creates an empty size x size board.
func New(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]entity.Cell, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Turn - returns the number of marks placed so far.
func (that *Board) Turn() int {
	return that.turn
}

// NextMark - returns the mark the next placement will use: X on even turns, O on odd.
func (that *Board) NextMark() entity.Cell {
	if that.turn%2 == 0 {
		return entity.X
	}

	return entity.O
}

// LastMark - returns the mark of the player who moved last, Empty before the first move.
func (that *Board) LastMark() entity.Cell {
	if that.turn == 0 {
		return entity.Empty
	}

	return that.NextMark().Opponent()
}

func (that *Board) Cell(row, col int) entity.Cell {
	return that.cells[row*that.size+col]
}

func (that *Board) IsFull() bool {
	return that.turn >= that.size*that.size
}

// Rows - returns a copy of the grid, one slice per row.
func (that *Board) Rows() [][]entity.Cell {
	rows := make([][]entity.Cell, that.size)
	for row := range rows {
		rows[row] = make([]entity.Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

// PlaceCell - puts the next mark at (row, col). The board is left untouched on error.
func (that *Board) PlaceCell(row, col int) error {
	if !that.inBounds(row, col) {
		return &OutOfBoundsError{Row: row, Col: col, Size: that.size}
	}

	index := row*that.size + col
	if that.cells[index] != entity.Empty {
		return &OccupiedError{Row: row, Col: col}
	}

	that.cells[index] = that.NextMark()
	that.turn++

	return nil
}

// CheckStatus - scans rows, columns and both diagonal families for winThreshold
// identical marks in a row. A win is credited to the player who moved last, so it
// must be called right after a successful PlaceCell.
func (that *Board) CheckStatus(winThreshold int) (entity.BoardStatus, error) {
	if winThreshold < 1 || winThreshold > that.size {
		return entity.BoardStatus{}, fmt.Errorf("%w: got %d for size %d", apperror.ErrInvalidWinThreshold, winThreshold, that.size)
	}

	winner := that.LastMark()

	lanes := [][]Lane{
		that.RowLanes(),
		that.ColumnLanes(),
		that.DiagonalLanes(winThreshold),
		that.AntiDiagonalLanes(winThreshold),
	}

	for _, family := range lanes {
		for _, lane := range family {
			if LaneHasWin(lane, winThreshold) {
				return entity.Win(winner), nil
			}
		}
	}

	if that.IsFull() {
		return entity.Draw(), nil
	}

	return entity.InProgress(), nil
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}
