package entity

// Direction is one of the eight unit steps on a planar field, or DirectionNone.
// X grows to the east, Y grows to the south.
type Direction int

const (
	DirectionNone Direction = iota
	NorthWest
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast
)

type delta struct {
	dx, dy int
}

var (
	deltas = [...]delta{
		DirectionNone: {0, 0},
		NorthWest:     {-1, -1},
		North:         {0, -1},
		NorthEast:     {1, -1},
		West:          {-1, 0},
		East:          {1, 0},
		SouthWest:     {-1, 1},
		South:         {0, 1},
		SouthEast:     {1, 1},
	}

	opposites = [...]Direction{
		DirectionNone: DirectionNone,
		NorthWest:     SouthEast,
		North:         South,
		NorthEast:     SouthWest,
		West:          East,
		East:          West,
		SouthWest:     NorthEast,
		South:         North,
		SouthEast:     NorthWest,
	}

	names = [...]string{
		DirectionNone: "none",
		NorthWest:     "north-west",
		North:         "north",
		NorthEast:     "north-east",
		West:          "west",
		East:          "east",
		SouthWest:     "south-west",
		South:         "south",
		SouthEast:     "south-east",
	}
)

// LineDirections - returns all real step directions, the sentinel excluded.
func LineDirections() [8]Direction {
	return [8]Direction{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
}

func (that Direction) isValid() bool {
	return that >= DirectionNone && that <= SouthEast
}

// Delta - returns the unit step of the direction. Unknown values step nowhere.
func (that Direction) Delta() (int, int) {
	if !that.isValid() {
		return 0, 0
	}

	d := deltas[that]

	return d.dx, d.dy
}

func (that Direction) Opposite() Direction {
	if !that.isValid() {
		return DirectionNone
	}

	return opposites[that]
}

func (that Direction) String() string {
	if !that.isValid() {
		return "unknown"
	}

	return names[that]
}
