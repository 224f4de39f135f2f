package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/attt-engine/internal/config"
	"github.com/rocketscienceinc/attt-engine/internal/logging"
	"github.com/rocketscienceinc/attt-engine/internal/tictactoe"
	"github.com/rocketscienceinc/attt-engine/transport/console"
)

// RunApp - runs the console game until the input ends or the process is interrupted.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	logging.SetOutput(logger)
	logging.Switch(conf.Trace)

	game := tictactoe.New()
	server := console.New(logger, game, console.Settings{
		SideLength: conf.Game.SideLength,
		WinLength:  conf.Game.WinLength,
		Players:    conf.Game.Players,
	}, out)

	consoleErrCh := make(chan error, 1)
	log.Info("Starting console", "trace", conf.Trace)
	go func() {
		consoleErrCh <- server.Start(ctx, in)
	}()

	select {
	case err := <-consoleErrCh:
		server.Close()
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		server.Close()
		return nil
	}
}
