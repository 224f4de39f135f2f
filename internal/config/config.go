package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Trace    bool   `yaml:"trace" env:"ATTT_TRACE" env-default:"false"`
	Game     Game   `yaml:"game"`
}

// Game - parameters of the game prepared at start. Out of range values are clamped by the engine.
type Game struct {
	SideLength int `yaml:"side-length" env:"ATTT_SIDE_LENGTH" env-default:"3"`
	WinLength  int `yaml:"win-length" env:"ATTT_WIN_LENGTH" env-default:"3"`
	Players    int `yaml:"players" env:"ATTT_PLAYERS" env-default:"2"`
}

// Load - reads the config file and the environment on top of it.
// Without a config file only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Level - trace output needs the debug level whatever log-level says.
func (that *Config) Level() slog.Level {
	if that.Trace {
		return slog.LevelDebug
	}

	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
