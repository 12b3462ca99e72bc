package board

import (
	"errors"
	"fmt"
)

var ErrInvalidOffset = errors.New("invalid diagonal offset")

// Offset is the start point of a diagonal, relative to the top-left corner.
// At most one component is non-zero: it picks the edge the diagonal starts from.
type Offset struct {
	Row int
	Col int
}

// DiagonalOffsets - returns the start points of every diagonal long enough to hold
// winThreshold cells: the main diagonal plus each shift of 1..size-winThreshold
// along either axis, 2*(size-winThreshold)+1 in total.
func DiagonalOffsets(size, winThreshold int) []Offset {
	if winThreshold < 1 || winThreshold > size {
		return nil
	}

	spread := size - winThreshold

	offsets := make([]Offset, 0, 2*spread+1)
	offsets = append(offsets, Offset{})

	for shift := 1; shift <= spread; shift++ {
		offsets = append(offsets, Offset{Row: 0, Col: shift}, Offset{Row: shift, Col: 0})
	}

	return offsets
}

// Diagonal - returns the lane starting at offset and stepping down-right until it leaves the grid.
func (that *Board) Diagonal(offset Offset) (Lane, error) {
	if err := that.validateOffset(offset); err != nil {
		return Lane{}, err
	}

	return that.lane(offset.Row, offset.Col, 1, 1, that.size-(offset.Row+offset.Col)), nil
}

// AntiDiagonal - mirrors Diagonal across the vertical axis: the lane starts at
// (offset.Row, size-1-offset.Col) and steps down-left.
func (that *Board) AntiDiagonal(offset Offset) (Lane, error) {
	if err := that.validateOffset(offset); err != nil {
		return Lane{}, err
	}

	return that.lane(offset.Row, that.size-1-offset.Col, 1, -1, that.size-(offset.Row+offset.Col)), nil
}

// DiagonalLanes - returns every top-left to bottom-right diagonal that can hold a winning run.
func (that *Board) DiagonalLanes(winThreshold int) []Lane {
	return that.diagonalLanes(winThreshold, that.Diagonal)
}

// AntiDiagonalLanes - returns every top-right to bottom-left diagonal that can hold a winning run.
func (that *Board) AntiDiagonalLanes(winThreshold int) []Lane {
	return that.diagonalLanes(winThreshold, that.AntiDiagonal)
}

func (that *Board) diagonalLanes(winThreshold int, build func(Offset) (Lane, error)) []Lane {
	offsets := DiagonalOffsets(that.size, winThreshold)

	lanes := make([]Lane, 0, len(offsets))
	for _, offset := range offsets {
		// offsets come from DiagonalOffsets and are always valid
		lane, err := build(offset)
		if err != nil {
			continue
		}

		lanes = append(lanes, lane)
	}

	return lanes
}

func (that *Board) validateOffset(offset Offset) error {
	if offset.Row != 0 && offset.Col != 0 {
		return fmt.Errorf("%w: (%d, %d) has no zero component", ErrInvalidOffset, offset.Row, offset.Col)
	}

	if offset.Row < 0 || offset.Col < 0 || offset.Row >= that.size || offset.Col >= that.size {
		return fmt.Errorf("%w: (%d, %d) is outside a board of size %d", ErrInvalidOffset, offset.Row, offset.Col, that.size)
	}

	return nil
}
