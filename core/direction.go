package core

// Direction is one of the four grid headings or None
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// directionVectors maps headings to unit steps; Y grows upward
var directionVectors = [...]Point{
	DirNone:  {0, 0},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
	DirUp:    {0, 1},
	DirDown:  {0, -1},
}

var oppositeDirections = [...]Direction{
	DirNone:  DirNone,
	DirLeft:  DirRight,
	DirRight: DirLeft,
	DirUp:    DirDown,
	DirDown:  DirUp,
}

var directionNames = [...]string{
	DirNone:  "none",
	DirLeft:  "left",
	DirRight: "right",
	DirUp:    "up",
	DirDown:  "down",
}

// Vector returns the unit step for the heading, zero for DirNone
func (d Direction) Vector() Point {
	if int(d) >= len(directionVectors) {
		return Point{}
	}
	return directionVectors[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	if int(d) >= len(oppositeDirections) {
		return DirNone
	}
	return oppositeDirections[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// ParseDirection resolves a lowercase direction name
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name && d != int(DirNone) {
			return Direction(d), true
		}
	}
	return DirNone, false
}
