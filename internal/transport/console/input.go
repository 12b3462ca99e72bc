package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m0ose01/tic-tac-terminal/internal/apperror"
)

var (
	ErrWrongArity  = errors.New("must enter two numbers")
	ErrNotNumeric  = errors.New("must be numeric")
	ErrOutsideGrid = errors.New("coordinate outside bounds of board")
	ErrInputClosed = errors.New("input closed before the game was finished")
)

// messages are shown to the player in place of the matching error.
var messages = map[error]string{
	ErrWrongArity:            "Invalid input. Must enter two numbers.",
	ErrNotNumeric:            "Invalid input. Must be numeric.",
	ErrOutsideGrid:           "Coordinate outside bounds of board.",
	apperror.ErrOutOfBounds:  "Coordinate outside bounds of board.",
	apperror.ErrCellOccupied: "Cannot place a piece there.",
}

// userMessage - returns the text shown to the player for a rejected move.
func userMessage(err error) string {
	for known, message := range messages {
		if errors.Is(err, known) {
			return message
		}
	}

	return err.Error()
}

// parseCoordinates - turns "row col" with 1-based values into 0-based indices on a size x size board.
func parseCoordinates(line string, size int) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, ErrWrongArity
	}

	coords := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, ErrNotNumeric
		}

		if value < 1 || value > size {
			return 0, 0, fmt.Errorf("%w: %d is not in 1..%d", ErrOutsideGrid, value, size)
		}

		coords = append(coords, value-1)
	}

	return coords[0], coords[1], nil
}
