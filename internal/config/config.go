package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidLogLevel = errors.New("unknown log level")
	ErrInvalidBoard    = errors.New("invalid board settings")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Size         int `yaml:"size" env:"TTT_BOARD_SIZE" env-default:"3" env-description:"number of rows and columns"`
	WinThreshold int `yaml:"win-threshold" env:"TTT_WIN_THRESHOLD" env-default:"0" env-description:"marks in a row needed to win, 0 means the board size"`
}

// MustLoad - load all configurations from the yml file and environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yml file when it exists, otherwise the environment only.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return config, nil
}

// Validate - checks values cleanenv can not check by itself.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.Board.Size < 1 {
		return fmt.Errorf("%w: size %d must be at least 1", ErrInvalidBoard, that.Board.Size)
	}

	if that.Board.WinThreshold < 0 || that.Board.WinThreshold > that.Board.Size {
		return fmt.Errorf("%w: win threshold %d must be between 0 and %d", ErrInvalidBoard, that.Board.WinThreshold, that.Board.Size)
	}

	return nil
}

// Usage - writes the list of supported environment variables.
func Usage(w io.Writer) error {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return fmt.Errorf("failed to describe config: %w", err)
	}

	if _, err = fmt.Fprintln(w, description); err != nil {
		return fmt.Errorf("failed to write usage: %w", err)
	}

	return nil
}
