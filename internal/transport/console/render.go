package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/m0ose01/tic-tac-terminal/internal/entity"
)

// Render - draws the grid with ASCII borders, blank cells as spaces:
//
//	-------------
//	| X | O |   |
//	-------------
func Render(w io.Writer, rows [][]entity.Cell) error {
	separator := "-" + strings.Repeat("----", len(rows)) + "\n"

	var sb strings.Builder
	sb.WriteString(separator)

	for _, row := range rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + cell.String() + " |")
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}
