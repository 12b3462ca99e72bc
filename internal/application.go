package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m0ose01/tic-tac-terminal/internal/config"
	"github.com/m0ose01/tic-tac-terminal/internal/tictactoe"
	"github.com/m0ose01/tic-tac-terminal/internal/transport/console"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGame(ctx, logger, conf, os.Stdin, os.Stdout)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gameController, err := tictactoe.NewGameController(logger, conf.Board.Size, conf.Board.WinThreshold)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting game", "size", gameController.Size(), "win_threshold", gameController.WinThreshold())

	err = console.New(logger, gameController, in, out).Start(ctx)
	if errors.Is(err, console.ErrInputClosed) {
		log.Info("Input closed, game abandoned")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game over", "status", gameController.Status().String())

	return nil
}
