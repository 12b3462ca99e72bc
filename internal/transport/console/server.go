package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/m0ose01/tic-tac-terminal/internal/apperror"
	"github.com/m0ose01/tic-tac-terminal/internal/entity"
)

type gameController interface {
	MakeTurn(row, col int) (entity.BoardStatus, error)
	NextMark() entity.Cell
	Size() int
	Rows() [][]entity.Cell
}

// Server plays one game over a line-oriented reader and writer, usually a terminal.
type Server struct {
	logger *slog.Logger
	game   gameController

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, game gameController, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		game:   game,

		in:  in,
		out: out,
	}
}

// Start - runs the game loop until someone wins, the board fills up,
// the input is closed or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErrCh := make(chan error, 1)

	go that.readLines(ctx, lines, readErrCh)

	for {
		if err := Render(that.out, that.game.Rows()); err != nil {
			return err
		}

		that.printf("%s to move (row col): ", that.game.NextMark())

		var line string
		select {
		case <-ctx.Done():
			log.Info("game interrupted")
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErrCh; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return ErrInputClosed
			}
			line = l
		}

		done, err := that.handleLine(line)
		if err != nil {
			return err
		}

		if done {
			return nil
		}
	}
}

// handleLine - applies one line of input. It reports true once the game is over.
func (that *Server) handleLine(line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	row, col, err := parseCoordinates(line, that.game.Size())
	if err != nil {
		log.Debug("rejected input", "input", line, "error", err)
		that.println(userMessage(err))
		return false, nil
	}

	status, err := that.game.MakeTurn(row, col)
	switch {
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrOutOfBounds):
		log.Debug("rejected move", "row", row, "col", col, "error", err)
		that.println(userMessage(err))
		return false, nil
	case errors.Is(err, apperror.ErrGameFinished):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("failed to make turn: %w", err)
	}

	that.printf("Placed piece at %d, %d\n", row+1, col+1)

	switch status.State {
	case entity.StateWin:
		if err = Render(that.out, that.game.Rows()); err != nil {
			return true, err
		}
		that.printf("%s won!\n", status.Winner)
		return true, nil
	case entity.StateDraw:
		if err = Render(that.out, that.game.Rows()); err != nil {
			return true, err
		}
		that.println("The game ended in a draw")
		return true, nil
	default:
		return false, nil
	}
}

func (that *Server) readLines(ctx context.Context, lines chan<- string, errCh chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errCh <- nil
			return
		}
	}

	errCh <- scanner.Err()
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Server) println(message string) {
	that.printf("%s\n", message)
}
