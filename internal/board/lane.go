package board

import "github.com/m0ose01/tic-tac-terminal/internal/entity"

// Lane is a read-only view of a straight line of cells: a row, a column or a diagonal.
// It indexes into the board's grid directly and never copies cells.
type Lane struct {
	cells  []entity.Cell
	size   int
	row    int
	col    int
	dRow   int
	dCol   int
	length int
}

func (that Lane) Len() int {
	return that.length
}

// At - returns the i-th cell of the lane, 0 <= i < Len().
func (that Lane) At(i int) entity.Cell {
	return that.cells[(that.row+i*that.dRow)*that.size+that.col+i*that.dCol]
}

// LaneHasWin - reports whether the lane holds winThreshold contiguous identical marks.
// Any window containing an Empty cell never counts, so one pass tracking the
// current run of the same mark is enough. Direction does not matter.
func LaneHasWin(lane Lane, winThreshold int) bool {
	if winThreshold < 1 || lane.Len() < winThreshold {
		return false
	}

	run := 0
	previous := entity.Empty

	for i := 0; i < lane.Len(); i++ {
		cell := lane.At(i)

		switch {
		case cell == entity.Empty:
			run = 0
		case cell == previous:
			run++
		default:
			run = 1
		}

		previous = cell

		if run >= winThreshold {
			return true
		}
	}

	return false
}

// RowLanes - returns every row, left to right.
func (that *Board) RowLanes() []Lane {
	lanes := make([]Lane, 0, that.size)
	for row := 0; row < that.size; row++ {
		lanes = append(lanes, that.lane(row, 0, 0, 1, that.size))
	}

	return lanes
}

// ColumnLanes - returns every column, top to bottom.
func (that *Board) ColumnLanes() []Lane {
	lanes := make([]Lane, 0, that.size)
	for col := 0; col < that.size; col++ {
		lanes = append(lanes, that.lane(0, col, 1, 0, that.size))
	}

	return lanes
}

func (that *Board) lane(row, col, dRow, dCol, length int) Lane {
	return Lane{
		cells:  that.cells,
		size:   that.size,
		row:    row,
		col:    col,
		dRow:   dRow,
		dCol:   dCol,
		length: length,
	}
}
