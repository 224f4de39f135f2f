package tictactoe

import "github.com/rocketscienceinc/attt-engine/internal/board"

const ClassicWinningLength = 3

// Rules hold the length of a line that wins the game. It does not depend on the
// board size: a big board may still be won with a short line.
type Rules struct {
	winningLength int
}

func NewRules(winningLength int) Rules {
	return Rules{winningLength: board.ClampSideLength(winningLength)}
}

// WinningLength - the zero value falls back to the classic length.
func (that Rules) WinningLength() int {
	if that.winningLength == 0 {
		return ClassicWinningLength
	}

	return that.winningLength
}
