package tictactoe

import (
	"github.com/rocketscienceinc/attt-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockField struct {
	mock.Mock
}

func (that *mockField) SideLength() int {
	return that.Called().Int(0)
}

func (that *mockField) NumberOfPlayers() int {
	return that.Called().Int(0)
}

func (that *mockField) IsReady() bool {
	return that.Called().Bool(0)
}

func (that *mockField) IsCorrectPosition(x, y int) bool {
	return that.Called(x, y).Bool(0)
}

func (that *mockField) IsFull() bool {
	return that.Called().Bool(0)
}

func (that *mockField) MarkAt(x, y int) entity.Player {
	return that.Called(x, y).Get(0).(entity.Player)
}

func (that *mockField) PlaceMark(where entity.Coordinates, what entity.Player) bool {
	return that.Called(where, what).Bool(0)
}

func (that *mockField) Clear() {
	that.Called()
}

func (that *mockField) LinesThroughMark(from entity.Coordinates) []entity.Direction {
	directions, _ := that.Called(from).Get(0).([]entity.Direction)
	return directions
}

func (that *mockField) RunLength(start entity.Coordinates, direction entity.Direction) int {
	return that.Called(start, direction).Int(0)
}

// newMockField - a ready 5x5 field for two players where the given cell takes X's mark.
func newMockField(where entity.Coordinates) *mockField {
	field := &mockField{}
	field.On("IsReady").Return(true).Once()
	field.On("NumberOfPlayers").Return(2).Once()
	field.On("SideLength").Return(5).Maybe()
	field.On("IsCorrectPosition", where.X, where.Y).Return(true).Once()
	field.On("PlaceMark", where, entity.PlayerX).Return(true).Once()
	field.On("MarkAt", where.X, where.Y).Return(entity.PlayerX).Maybe()

	return field
}
