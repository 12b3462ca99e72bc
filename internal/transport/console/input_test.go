package console

import (
	"testing"

	"github.com/m0ose01/tic-tac-terminal/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Run("Converts 1-based input to 0-based indices", func(t *testing.T) {
		row, col, err := parseCoordinates("  1   3 \n", 3)
		require.NoError(t, err)
		assert.Equal(t, 0, row)
		assert.Equal(t, 2, col)
	})

	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty line", "", ErrWrongArity},
		{"single number", "2", ErrWrongArity},
		{"three numbers", "1 2 3", ErrWrongArity},
		{"letters", "a b", ErrNotNumeric},
		{"mixed", "1 x", ErrNotNumeric},
		{"zero", "0 1", ErrOutsideGrid},
		{"negative", "-1 1", ErrOutsideGrid},
		{"too large", "1 4", ErrOutsideGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseCoordinates(tt.input, 3)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid input. Must enter two numbers.", userMessage(ErrWrongArity))
	assert.Equal(t, "Invalid input. Must be numeric.", userMessage(ErrNotNumeric))
	assert.Equal(t, "Coordinate outside bounds of board.", userMessage(ErrOutsideGrid))
	assert.Equal(t, "Coordinate outside bounds of board.", userMessage(apperror.ErrOutOfBounds))
	assert.Equal(t, "Cannot place a piece there.", userMessage(apperror.ErrCellOccupied))
}
