package world

// Direction is one of the eight compass offsets on the tile grid.
// Values run clockwise from Up, so the iota order is the canonical
// eight-direction order used for wall bitmasks.
type Direction int

// Direction constants
const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// directionCount is the number of valid directions.
const directionCount = 8

var (
	cardinals = []Direction{Up, Right, Down, Left}
	diagonals = []Direction{UpRight, DownRight, DownLeft, UpLeft}
	all       = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
)

// Cardinals returns the four orthogonal directions in canonical order (up, right, down, left).
func Cardinals() []Direction {
	return append([]Direction(nil), cardinals...)
}

// Diagonals returns the four diagonal directions in canonical order
// (up-right, right-down, down-left, left-up).
func Diagonals() []Direction {
	return append([]Direction(nil), diagonals...)
}

// AllDirections returns all eight directions clockwise from Up.
func AllDirections() []Direction {
	return append([]Direction(nil), all...)
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= UpLeft
}

// IsCardinal reports whether d is orthogonal.
func (d Direction) IsCardinal() bool {
	return d.IsValid() && d%2 == 0
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + directionCount/2) % directionCount
}

// Delta returns the unit offset for this direction. Y grows upwards.
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{0, 1}
	case UpRight:
		return Position{1, 1}
	case Right:
		return Position{1, 0}
	case DownRight:
		return Position{1, -1}
	case Down:
		return Position{0, -1}
	case DownLeft:
		return Position{-1, -1}
	case Left:
		return Position{-1, 0}
	case UpLeft:
		return Position{-1, 1}
	default:
		return Position{}
	}
}
