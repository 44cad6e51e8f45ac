package grid

// Direction is one of the eight ways a word can be laid out in the grid.
type Direction uint8

// Axis groups directions into the three passes a scan reports on.
type Axis uint8

const (
	Right Direction = iota
	Left
	Down
	Up
	DownRight
	DownLeft
	UpRight
	UpLeft
)

const (
	HorizontalAxis Axis = iota
	VerticalAxis
	DiagonalAxis
)

// AllDirections lists every direction, in scan order.
var AllDirections = []Direction{Right, Left, Down, Up, DownRight, DownLeft, UpRight, UpLeft}

var vectors = [...][2]int{
	Right:     {0, 1},
	Left:      {0, -1},
	Down:      {1, 0},
	Up:        {-1, 0},
	DownRight: {1, 1},
	DownLeft:  {1, -1},
	UpRight:   {-1, 1},
	UpLeft:    {-1, -1},
}

var directionNames = [...]string{
	Right:     "right",
	Left:      "left",
	Down:      "down",
	Up:        "up",
	DownRight: "down-right",
	DownLeft:  "down-left",
	UpRight:   "up-right",
	UpLeft:    "up-left",
}

// Vector returns the row and column step for this direction.
func (d Direction) Vector() (int, int) {
	if int(d) >= len(vectors) {
		return 0, 0
	}
	v := vectors[d]
	return v[0], v[1]
}

func (d Direction) Axis() Axis {
	switch d {
	case Right, Left:
		return HorizontalAxis
	case Down, Up:
		return VerticalAxis
	}
	return DiagonalAxis
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "none"
	}
	return directionNames[d]
}

func (a Axis) String() string {
	switch a {
	case HorizontalAxis:
		return "horizontal"
	case VerticalAxis:
		return "vertical"
	case DiagonalAxis:
		return "diagonal"
	}
	return "none"
}

// Step returns the position n steps away from p in direction d.
func (p Position) Step(d Direction, n int) Position {
	dr, dc := d.Vector()
	return Position{Row: p.Row + n*dr, Col: p.Col + n*dc}
}
