package entity

const (
	PlayerNone Player = 0
	PlayerX    Player = 1
	PlayerO    Player = 2

	MinPlayers = 2
	MaxPlayers = len(playerSymbols)

	SymbolForPlayerNone = '_'
	SymbolForAbsentMark = '.'
)

// X and O keep their classic places, the rest of the alphabet follows.
const playerSymbols = "XOABCDEFGHIJKLMNPQRSTUVWYZ"

// Player is the owner of a mark. PlayerNone marks an unoccupied cell.
type Player uint8

// Players - returns the turn order for the given number of players.
func Players(count int) []Player {
	count = max(MinPlayers, min(count, MaxPlayers))

	players := make([]Player, 0, count)
	for i := 1; i <= count; i++ {
		players = append(players, Player(i))
	}

	return players
}

func (that Player) IsNone() bool {
	return that == PlayerNone
}

// Symbol - returns the character the player's marks are printed with.
func (that Player) Symbol() rune {
	if that == PlayerNone || int(that) > MaxPlayers {
		return SymbolForPlayerNone
	}

	return rune(playerSymbols[that-1])
}

func (that Player) String() string {
	return string(that.Symbol())
}
