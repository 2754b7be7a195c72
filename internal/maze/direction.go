// Package maze provides the labyrinth: a grid of rooms separated by
// walls, with a single exit, the treasure, and whatever lives inside.
package maze

// Direction identifies one side of a room.
type Direction int

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
	// DirNone means "no direction". It is a sentinel for rooms without
	// an exit and is never a valid query argument.
	DirNone
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// Delta returns the x and y offset of one step in the direction.
// Y grows southward (screen coordinates). DirNone has a zero delta.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the facing direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// Directions lists the four cardinal directions in query order.
func Directions() [4]Direction {
	return [4]Direction{DirNorth, DirEast, DirSouth, DirWest}
}
