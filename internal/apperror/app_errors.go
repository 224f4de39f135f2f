package apperror

import "errors"

var (
	ErrGameIsNotActive = errors.New("game is not active")
	ErrOutOfBounds     = errors.New("coordinates are out of the game field")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidMove     = errors.New("invalid move")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidSettings = errors.New("invalid game settings")
)
