package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/m0ose01/tic-tac-terminal/internal/apperror"
	"github.com/m0ose01/tic-tac-terminal/internal/board"
	"github.com/m0ose01/tic-tac-terminal/internal/entity"
)

// GameController runs a single game: one board, one win threshold.
// It is not safe for concurrent use; every game gets its own controller.
type GameController struct {
	logger *slog.Logger

	board        *board.Board
	winThreshold int
	status       entity.BoardStatus
}

// NewGameController - creates a game on a size x size board.
// A winThreshold of 0 means a run must span the whole board.
func NewGameController(logger *slog.Logger, size, winThreshold int) (*GameController, error) {
	gameBoard, err := board.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if winThreshold == 0 {
		winThreshold = size
	}

	if winThreshold < 1 || winThreshold > size {
		return nil, fmt.Errorf("%w: got %d for size %d", apperror.ErrInvalidWinThreshold, winThreshold, size)
	}

	return &GameController{
		logger:       logger.With("component", "game"),
		board:        gameBoard,
		winThreshold: winThreshold,
		status:       entity.InProgress(),
	}, nil
}

// MakeTurn - places the next mark at (row, col) and returns the fresh status.
// Once a win or draw has been reported every call returns ErrGameFinished.
func (that *GameController) MakeTurn(row, col int) (entity.BoardStatus, error) {
	log := that.logger.With("method", "MakeTurn")

	if that.status.IsFinished() {
		return that.status, apperror.ErrGameFinished
	}

	mark := that.board.NextMark()

	if err := that.board.PlaceCell(row, col); err != nil {
		return that.status, fmt.Errorf("invalid turn: %w", err)
	}

	// status must be computed before anything else touches the board,
	// otherwise the win is credited to the wrong player
	status, err := that.board.CheckStatus(that.winThreshold)
	if err != nil {
		return that.status, fmt.Errorf("failed to check status: %w", err)
	}

	that.status = status

	log.Debug("mark placed", "mark", mark.String(), "row", row, "col", col, "turn", that.board.Turn(), "status", status.String())

	if status.IsFinished() {
		log.Info("game finished", "status", status.String(), "turns", that.board.Turn())
	}

	return status, nil
}

func (that *GameController) Status() entity.BoardStatus {
	return that.status
}

func (that *GameController) IsFinished() bool {
	return that.status.IsFinished()
}

func (that *GameController) NextMark() entity.Cell {
	return that.board.NextMark()
}

func (that *GameController) Size() int {
	return that.board.Size()
}

func (that *GameController) WinThreshold() int {
	return that.winThreshold
}

// Rows - returns a snapshot of the grid for rendering.
func (that *GameController) Rows() [][]entity.Cell {
	return that.board.Rows()
}
