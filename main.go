package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/attt-engine/internal"
	"github.com/rocketscienceinc/attt-engine/internal/config"
)

// main - is the entry point of the application. It reads flags and configuration, sets up the logger and runs the console game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// an optional .env only feeds the environment read by the config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "could not load .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "attt",
		Usage: "adjustable tic-tac-toe in the console",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yml", Usage: "path to the config file"},
			&cli.IntFlag{Name: "side", Usage: "side length of the field"},
			&cli.IntFlag{Name: "win", Usage: "length of the line that wins"},
			&cli.IntFlag{Name: "players", Usage: "number of players"},
			&cli.BoolFlag{Name: "trace", Usage: "write engine trace to stderr"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))

	if cmd.IsSet("side") {
		conf.Game.SideLength = cmd.Int("side")
	}

	if cmd.IsSet("win") {
		conf.Game.WinLength = cmd.Int("win")
	}

	if cmd.IsSet("players") {
		conf.Game.Players = cmd.Int("players")
	}

	if cmd.IsSet("trace") {
		conf.Trace = cmd.Bool("trace")
	}

	logger := initLogger(conf)

	return app.RunApp(ctx, logger, conf, os.Stdin, os.Stdout)
}

// initialize config.
func initConfig(path string) *config.Config {
	if filepath.IsAbs(path) {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, path))
}

// initialize logger. Stdout belongs to the game, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: conf.Level()}))
}
