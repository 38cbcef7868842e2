package game

// Direction is a unit step on the grid. Y grows downwards.
type Direction struct {
	DX, DY int
}

// The four movement directions.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d.DY == 0 && d.DX != 0
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d.DX == 0 && d.DY != 0
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
