package tictactoe

import "github.com/rocketscienceinc/attt-engine/internal/entity"

// MoveProcessor analyses the field right after every move.
type MoveProcessor interface {
	LongestLineFor(where entity.Coordinates) int
	// CoordinatesFor accepts a third axis for non-planar fields.
	CoordinatesFor(x, y, z int) entity.Coordinates
}

type lineScanner interface {
	MarkAt(x, y int) entity.Player
	LinesThroughMark(from entity.Coordinates) []entity.Direction
	RunLength(start entity.Coordinates, direction entity.Direction) int
}

// planarProcessor is the default processor: it measures every line found around
// the new mark and keeps the longest one.
type planarProcessor struct {
	field lineScanner
}

func newPlanarProcessor(field Field) MoveProcessor {
	return &planarProcessor{field: field}
}

func (that *planarProcessor) LongestLineFor(where entity.Coordinates) int {
	if that.field.MarkAt(where.X, where.Y).IsNone() {
		return 0
	}

	longest := 1
	for _, direction := range that.field.LinesThroughMark(where) {
		longest = max(longest, that.field.RunLength(where, direction))
	}

	return longest
}

// CoordinatesFor - the planar field ignores z.
func (that *planarProcessor) CoordinatesFor(x, y, _ int) entity.Coordinates {
	return entity.NewCoordinates(x, y)
}
