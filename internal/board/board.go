package board

import (
	"log/slog"

	"github.com/rocketscienceinc/attt-engine/internal/entity"
	"github.com/rocketscienceinc/attt-engine/internal/logging"
)

const (
	MinSideLength = 3
	MaxSideLength = 1000

	// only planar fields are interpreted so far
	MinDimensions = 2
	MaxDimensions = 2
)

type Option func(*Board)

// WithDimensions - requested number of axes, clamped to the supported range.
func WithDimensions(dimensions int) Option {
	return func(that *Board) {
		that.dimensions = max(MinDimensions, min(dimensions, MaxDimensions))
	}
}

// WithPlayers - number of players taking turns on this board.
func WithPlayers(numberOfPlayers int) Option {
	return func(that *Board) {
		that.numberOfPlayers = max(entity.MinPlayers, min(numberOfPlayers, entity.MaxPlayers))
	}
}

// ClampSideLength - keeps any requested length inside [MinSideLength, MaxSideLength].
func ClampSideLength(length int) int {
	return max(MinSideLength, min(length, MaxSideLength))
}

// Board is the square area where all players' marks are placed during one game session.
// Only occupied cells are stored.
type Board struct {
	log *slog.Logger

	sideLength      int
	dimensions      int
	numberOfPlayers int

	minIndex int
	maxIndex int

	marks map[entity.Coordinates]entity.Player
}

func New(sideLength int, opts ...Option) *Board {
	that := &Board{
		log:             logging.For("board"),
		sideLength:      ClampSideLength(sideLength),
		dimensions:      MinDimensions,
		numberOfPlayers: entity.MinPlayers,
		marks:           make(map[entity.Coordinates]entity.Player),
	}

	for _, opt := range opts {
		opt(that)
	}

	that.minIndex = 0
	that.maxIndex = that.sideLength - 1

	return that
}

func (that *Board) SideLength() int {
	return that.sideLength
}

func (that *Board) Dimensions() int {
	return that.dimensions
}

func (that *Board) NumberOfPlayers() int {
	return that.numberOfPlayers
}

// IsReady - the board has a correct size and no marks, so a new game may start on it.
func (that *Board) IsReady() bool {
	return that.sideLength >= MinSideLength && that.sideLength <= MaxSideLength && len(that.marks) == 0
}

func (that *Board) IsCorrectPosition(x, y int) bool {
	return x >= that.minIndex && x <= that.maxIndex && y >= that.minIndex && y <= that.maxIndex
}

// MarkAt - returns the owner of the cell or PlayerNone.
func (that *Board) MarkAt(x, y int) entity.Player {
	return that.marks[entity.NewCoordinates(x, y)]
}

func (that *Board) MarksPlaced() int {
	return len(that.marks)
}

func (that *Board) IsFull() bool {
	return len(that.marks) >= that.sideLength*that.sideLength
}

// PlaceMark - records the mark if the cell is free. An occupied cell is never overwritten.
func (that *Board) PlaceMark(where entity.Coordinates, what entity.Player) bool {
	where = planar(where)
	log := that.log.With("method", "PlaceMark", "player", what.String(), "coordinates", where.String())

	if what.IsNone() || !that.IsCorrectPosition(where.X, where.Y) {
		log.Debug("refusing to place an invalid mark")
		return false
	}

	if existing := that.marks[where]; !existing.IsNone() {
		log.Debug("attempting to place a mark on the occupied cell", "occupant", existing.String())
		return false
	}

	that.marks[where] = what

	return true
}

func (that *Board) Clear() {
	clear(that.marks)
}

// LinesThroughMark - directions in which the mark at the given coordinates has a
// neighbour of the same owner, i.e. where a line of at least 2 marks exists.
func (that *Board) LinesThroughMark(from entity.Coordinates) []entity.Direction {
	from = planar(from)
	log := that.log.With("method", "LinesThroughMark", "coordinates", from.String())

	what := that.marks[from]
	if what.IsNone() {
		return nil
	}

	var directions []entity.Direction
	for _, direction := range entity.LineDirections() {
		next, ok := that.nextSafeSpace(from, direction)
		if ok && that.marks[next] == what {
			log.Debug("line exists", "direction", direction.String())
			directions = append(directions, direction)
		}
	}

	return directions
}

// RunLength - measures the full line containing start along the given direction.
// The neighbour in that direction must hold the same owner (see LinesThroughMark),
// otherwise 0 is returned.
func (that *Board) RunLength(start entity.Coordinates, direction entity.Direction) int {
	start = planar(start)
	what := that.marks[start]

	near, ok := that.nextSafeSpace(start, direction)
	if !ok || what.IsNone() || that.marks[near] != what {
		return 0
	}

	// start and its neighbour are counted already
	length := that.measureLineFrom(near, direction, 2) + that.measureLineFrom(start, direction.Opposite(), 0)

	that.log.Debug("line measured",
		"method", "RunLength",
		"coordinates", start.String(),
		"direction", direction.String(),
		"length", length,
	)

	return length
}

func (that *Board) measureLineFrom(given entity.Coordinates, direction entity.Direction, startingLength int) int {
	length := startingLength

	for {
		next, ok := that.nextSafeSpace(given, direction)
		if !ok || that.marks[given] != that.marks[next] {
			return length
		}

		given = next
		length++
	}
}

// planar - the board key of a cell, the third axis is not interpreted.
func planar(where entity.Coordinates) entity.Coordinates {
	return entity.NewCoordinates(where.X, where.Y)
}

// nextSafeSpace - the neighbouring cell in the given direction, unless the step
// would leave the board. Checked before translating, so no invalid coordinates are built.
func (that *Board) nextSafeSpace(start entity.Coordinates, direction entity.Direction) (entity.Coordinates, bool) {
	dx, dy := direction.Delta()

	switch {
	case dx == 0 && dy == 0:
		return entity.Coordinates{}, false
	case dx < 0 && start.X <= that.minIndex,
		dx > 0 && start.X >= that.maxIndex,
		dy < 0 && start.Y <= that.minIndex,
		dy > 0 && start.Y >= that.maxIndex:
		return entity.Coordinates{}, false
	}

	return start.Step(direction), true
}
