package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/attt-engine/internal/apperror"
	"github.com/rocketscienceinc/attt-engine/internal/board"
	"github.com/rocketscienceinc/attt-engine/internal/entity"
	"github.com/rocketscienceinc/attt-engine/internal/render"
	"github.com/rocketscienceinc/attt-engine/internal/tictactoe"
)

var errQuit = errors.New("quit")

type gameEngine interface {
	Prepare(field tictactoe.Field, rules tictactoe.Rules)
	Move(x, y int) error
	Finish()

	IsActive() bool
	IsDraw() bool
	Winner() entity.Player
	ActivePlayer() entity.Player
	SideLength() int
	MarkAt(x, y int) entity.Player
}

// Settings - the game prepared at start and by "new" without arguments.
type Settings struct {
	SideLength int
	WinLength  int
	Players    int
}

// Server reads one command per line and answers on out.
// Commands and Close are serialized, the engine is never touched concurrently.
type Server struct {
	logger   *slog.Logger
	game     gameEngine
	settings Settings
	out      io.Writer

	mu     sync.Mutex
	closed bool

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, game gameEngine, settings Settings, out io.Writer) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		game:     game,
		settings: settings,
		out:      out,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["new"] = server.handleNewGame
	server.handlers["finish"] = server.handleFinish
	server.handlers["print"] = server.handlePrint
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - prepares the configured game and serves commands until quit, EOF or cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	if err := that.handleLine(ctx, "new"); err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}

		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		err := that.handleLine(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			log.Error("error processing command", "error", err)
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}

	return nil
}

// Close - finishes the game and stops serving commands. Safe to call from another goroutine.
func (that *Server) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.game.Finish()
	that.logger.Info("console closed", "method", "Close")
}

func (that *Server) handleLine(ctx context.Context, line string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return errQuit
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	// "x y" is a shortcut for "move x y"
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleMove(ctx, fields)
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		that.logger.Debug("unknown command", "command", fields[0])
		return that.printf("%v: %s, type help for the list of commands\n", apperror.ErrUnknownCommand, fields[0])
	}

	return handler(ctx, fields[1:])
}

func (that *Server) handleMove(_ context.Context, args []string) error {
	x, y, err := parseCoordinates(args)
	if err != nil {
		return that.printf("move rejected: %v\n", err)
	}

	if err = that.game.Move(x, y); err != nil {
		that.logger.Debug("move rejected", "x", x, "y", y, "error", err)
		return that.printf("move rejected: %v\n", err)
	}

	if err = that.printField(); err != nil {
		return err
	}

	return that.printOutcome()
}

func (that *Server) handleNewGame(_ context.Context, args []string) error {
	settings := that.settings

	if len(args) > 0 {
		sideLength, err := strconv.Atoi(args[0])
		if err != nil {
			return that.printf("%v: side length %q is not a number\n", apperror.ErrInvalidSettings, args[0])
		}

		settings.SideLength = sideLength
	}

	if len(args) > 1 {
		winLength, err := strconv.Atoi(args[1])
		if err != nil {
			return that.printf("%v: winning length %q is not a number\n", apperror.ErrInvalidSettings, args[1])
		}

		settings.WinLength = winLength
	}

	field := board.New(settings.SideLength, board.WithPlayers(settings.Players))
	rules := tictactoe.NewRules(settings.WinLength)
	that.game.Prepare(field, rules)

	that.logger.Info("new game prepared",
		"side_length", field.SideLength(),
		"winning_length", rules.WinningLength(),
		"players", field.NumberOfPlayers(),
	)

	if err := that.printf("new game: field %dx%d, %d in a row wins, %d players\n",
		field.SideLength(), field.SideLength(), rules.WinningLength(), field.NumberOfPlayers()); err != nil {
		return err
	}

	if err := that.printField(); err != nil {
		return err
	}

	return that.printOutcome()
}

func (that *Server) handleFinish(_ context.Context, _ []string) error {
	that.game.Finish()

	return that.printf("game finished, type new to start another one\n")
}

func (that *Server) handlePrint(_ context.Context, _ []string) error {
	if !that.game.IsActive() && that.game.SideLength() == 0 {
		return that.printf("no game, type new to start one\n")
	}

	return that.printField()
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	return that.printf(`commands:
  x y                  place a mark of the active player
  move x y             same as above
  new [side] [win]     start a new game
  print                show the field
  finish               drop the current game
  quit                 leave
`)
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.game.Finish()

	return errQuit
}

func (that *Server) printField() error {
	return that.printf("%s\n", render.ForPrinting(that.game))
}

func (that *Server) printOutcome() error {
	switch {
	case that.game.IsActive():
		return that.printf("player %s moves\n", that.game.ActivePlayer())
	case that.game.IsDraw():
		return that.printf("draw\n")
	case !that.game.Winner().IsNone():
		return that.printf("player %s wins\n", that.game.Winner())
	default:
		return nil
	}
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write answer: %w", err)
	}

	return nil
}

func parseCoordinates(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two coordinates, got %d", apperror.ErrInvalidMove, len(args))
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x %q is not a number", apperror.ErrInvalidMove, args[0])
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y %q is not a number", apperror.ErrInvalidMove, args[1])
	}

	return x, y, nil
}
