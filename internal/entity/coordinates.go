package entity

import "fmt"

// Coordinates addresses one cell of the game field. Z is reserved for non-planar
// fields and is never interpreted by the planar board.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z,omitempty"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Step - returns the neighbouring coordinates in the given direction.
// Bounds are not checked here, the board is responsible for that.
func (that Coordinates) Step(direction Direction) Coordinates {
	dx, dy := direction.Delta()

	return Coordinates{X: that.X + dx, Y: that.Y + dy, Z: that.Z}
}

func (that Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}
