package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/attt-engine/internal/apperror"
	"github.com/rocketscienceinc/attt-engine/internal/board"
	"github.com/rocketscienceinc/attt-engine/internal/entity"
	"github.com/rocketscienceinc/attt-engine/internal/logging"
)

// Field is the board an Engine plays on.
type Field interface {
	SideLength() int
	NumberOfPlayers() int
	IsReady() bool
	IsCorrectPosition(x, y int) bool
	IsFull() bool
	MarkAt(x, y int) entity.Player
	PlaceMark(where entity.Coordinates, what entity.Player) bool
	Clear()
	LinesThroughMark(from entity.Coordinates) []entity.Direction
	RunLength(start entity.Coordinates, direction entity.Direction) int
}

type Option func(*Engine)

// WithMoveProcessor - replaces the default planar processor, e.g. for non-planar fields.
func WithMoveProcessor(newProcessor func(Field) MoveProcessor) Option {
	return func(that *Engine) {
		that.newProcessor = newProcessor
	}
}

// Engine drives one game session at a time: Inactive -> Ongoing -> Finished.
// It is not safe for concurrent use, callers have to serialize access.
type Engine struct {
	log          *slog.Logger
	newProcessor func(Field) MoveProcessor

	sessionID string
	status    entity.Status
	field     Field
	rules     Rules
	processor MoveProcessor

	players []entity.Player
	active  int
	winner  entity.Player
	moves   int
}

func New(opts ...Option) *Engine {
	that := &Engine{
		log:          logging.For("engine"),
		newProcessor: newPlanarProcessor,
		status:       entity.StatusInactive,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

// Prepare - starts a new session on the given field, whatever the current state is.
// Nothing is carried over from the previous session.
func (that *Engine) Prepare(field Field, rules Rules) {
	if field == nil {
		field = board.New(board.MinSideLength)
	}

	that.reset()

	if !field.IsReady() {
		that.log.Debug("clearing the field left from a previous game", "method", "Prepare")
		field.Clear()
	}

	that.sessionID = uuid.NewString()
	that.field = field
	that.rules = rules
	that.processor = that.newProcessor(field)
	that.players = entity.Players(field.NumberOfPlayers())
	that.status = entity.StatusOngoing

	that.log.Debug("game is prepared",
		"method", "Prepare",
		"session", that.sessionID,
		"side_length", field.SideLength(),
		"winning_length", rules.WinningLength(),
		"players", len(that.players),
	)
}

// PrepareGame - starts a classic two player session of the given size.
func (that *Engine) PrepareGame(sideLength, winningLength int) {
	that.Prepare(board.New(sideLength), NewRules(winningLength))
}

// Finish - drops the session, the engine becomes inactive.
func (that *Engine) Finish() {
	if that.field != nil {
		that.field.Clear()
	}

	that.log.Debug("game is finished", "method", "Finish", "session", that.sessionID)

	that.reset()
}

func (that *Engine) reset() {
	that.sessionID = ""
	that.status = entity.StatusInactive
	that.field = nil
	that.rules = Rules{}
	that.processor = nil
	that.players = nil
	that.active = 0
	that.winner = entity.PlayerNone
	that.moves = 0
}

// Move - places the active player's mark at (x, y).
func (that *Engine) Move(x, y int) error {
	if !that.IsActive() {
		return fmt.Errorf("%w: move to (%d, %d)", apperror.ErrGameIsNotActive, x, y)
	}

	return that.makeMove(that.processor.CoordinatesFor(x, y, 0), that.ActivePlayer())
}

// MoveAt - places the active player's mark at the given coordinates.
func (that *Engine) MoveAt(where entity.Coordinates) error {
	if !that.IsActive() {
		return fmt.Errorf("%w: move to %s", apperror.ErrGameIsNotActive, where)
	}

	return that.makeMove(that.processor.CoordinatesFor(where.X, where.Y, where.Z), that.ActivePlayer())
}

// makeMove lets any player move, regardless of the turn order.
// A rejected move changes nothing, so the same player may retry.
func (that *Engine) makeMove(where entity.Coordinates, player entity.Player) error {
	if !that.IsActive() {
		return fmt.Errorf("%w: move to %s", apperror.ErrGameIsNotActive, where)
	}

	log := that.log.With("method", "makeMove", "session", that.sessionID, "player", player.String(), "coordinates", where.String())

	index := int(player) - 1
	if index < 0 || index >= len(that.players) {
		return fmt.Errorf("%w: player %d does not take part in the game", apperror.ErrInvalidMove, player)
	}

	if !that.field.IsCorrectPosition(where.X, where.Y) {
		log.Debug("move is out of the field")
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, where)
	}

	if !that.field.PlaceMark(where, player) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, where)
	}

	that.moves++

	longest := that.processor.LongestLineFor(where)
	log.Debug("move is made", "longest_line", longest)

	switch {
	case longest >= that.rules.WinningLength():
		that.status = entity.StatusFinished
		that.winner = player
		log.Debug("player wins")
	case that.field.IsFull():
		that.status = entity.StatusFinished
		log.Debug("no free cells left, draw")
	default:
		that.active = (index + 1) % len(that.players)
	}

	return nil
}

func (that *Engine) IsActive() bool {
	return that.status == entity.StatusOngoing
}

func (that *Engine) IsFinished() bool {
	return that.status == entity.StatusFinished
}

// IsDraw - the game is finished and nobody has won.
func (that *Engine) IsDraw() bool {
	return that.IsFinished() && that.winner.IsNone()
}

func (that *Engine) Status() entity.Status {
	return that.status
}

// Winner - PlayerNone until somebody wins.
func (that *Engine) Winner() entity.Player {
	return that.winner
}

// ActivePlayer - the player expected to move, PlayerNone outside of an ongoing game.
func (that *Engine) ActivePlayer() entity.Player {
	if !that.IsActive() {
		return entity.PlayerNone
	}

	return that.players[that.active]
}

// Field - the field of the current session, nil when no game is prepared.
func (that *Engine) Field() Field {
	return that.field
}

func (that *Engine) SessionID() string {
	return that.sessionID
}

func (that *Engine) Rules() Rules {
	return that.rules
}

func (that *Engine) MovesMade() int {
	return that.moves
}

func (that *Engine) SideLength() int {
	if that.field == nil {
		return 0
	}

	return that.field.SideLength()
}

func (that *Engine) MarkAt(x, y int) entity.Player {
	if that.field == nil {
		return entity.PlayerNone
	}

	return that.field.MarkAt(x, y)
}
