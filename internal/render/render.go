package render

import (
	"strings"

	"github.com/rocketscienceinc/attt-engine/internal/entity"
)

const (
	symbolForDivider = ' '
	symbolForNewLine = '\n'
)

type markSource interface {
	SideLength() int
	MarkAt(x, y int) entity.Player
}

// ForPrinting - one line per row of the field, one symbol per cell,
// free cells are shown with entity.SymbolForAbsentMark.
func ForPrinting(source markSource) string {
	sideLength := source.SideLength()
	if sideLength <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(2 * sideLength * sideLength)

	for y := 0; y < sideLength; y++ {
		if y > 0 {
			sb.WriteRune(symbolForNewLine)
		}

		for x := 0; x < sideLength; x++ {
			if x > 0 {
				sb.WriteRune(symbolForDivider)
			}

			sb.WriteRune(symbolFor(source.MarkAt(x, y)))
		}
	}

	return sb.String()
}

func symbolFor(mark entity.Player) rune {
	if mark.IsNone() {
		return entity.SymbolForAbsentMark
	}

	return mark.Symbol()
}
