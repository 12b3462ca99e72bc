package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrOutOfBounds         = errors.New("coordinates are outside the board")
	ErrInvalidBoardSize    = errors.New("board size must be at least 1")
	ErrInvalidWinThreshold = errors.New("win threshold must be between 1 and the board size")
)
