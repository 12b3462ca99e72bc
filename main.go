package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/m0ose01/tic-tac-terminal/internal"
	"github.com/m0ose01/tic-tac-terminal/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. Flags override the file and the environment.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	path := flag.String("config", filepath.Join(baseDir, "config.yml"), "path to the yml config")
	size := flag.Int("size", 0, "board size, overrides the config")
	win := flag.Int("win", -1, "marks in a row needed to win, 0 means the board size; overrides the config")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		if err := config.Usage(flag.CommandLine.Output()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	flag.Parse()

	conf := config.MustLoad(*path)

	if *size > 0 {
		conf.Board.Size = *size
	}

	if *win >= 0 {
		conf.Board.WinThreshold = *win
	}

	if err = conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return conf
}

// initialize logger. Logs go to stderr so they do not mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
