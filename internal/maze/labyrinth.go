package maze

import "fmt"

// Labyrinth owns the authoritative room grid. Rooms are indexed by
// Coordinate with (0,0) in the north-west corner.
type Labyrinth struct {
	xSize, ySize int
	rooms        []Room
}

// NewLabyrinth creates a labyrinth of the given dimensions with every
// wall standing, no exit, and empty rooms.
func NewLabyrinth(xSize, ySize int) (*Labyrinth, error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, fmt.Errorf("new labyrinth: %w: size %dx%d", ErrInvalidArgument, xSize, ySize)
	}
	rooms := make([]Room, xSize*ySize)
	for i := range rooms {
		rooms[i] = NewRoom(DirNone, true, true, true, true)
	}
	return &Labyrinth{
		xSize: xSize,
		ySize: ySize,
		rooms: rooms,
	}, nil
}

// Size returns the labyrinth dimensions in rooms.
func (l *Labyrinth) Size() (xSize, ySize int) {
	return l.xSize, l.ySize
}

// WithinBounds reports whether c addresses a room of the labyrinth.
func (l *Labyrinth) WithinBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < l.xSize && c.Y >= 0 && c.Y < l.ySize
}

func (l *Labyrinth) index(c Coordinate) int {
	return c.Y*l.xSize + c.X
}

// RoomAt returns the room at c.
func (l *Labyrinth) RoomAt(c Coordinate) (*Room, error) {
	if !l.WithinBounds(c) {
		return nil, fmt.Errorf("room at %v: %w", c, ErrOutOfBounds)
	}
	return &l.rooms[l.index(c)], nil
}

// SetRoom replaces the room at c. It is intended for maze builders that
// configure a labyrinth room by room.
func (l *Labyrinth) SetRoom(c Coordinate, r Room) error {
	if !l.WithinBounds(c) {
		return fmt.Errorf("set room at %v: %w", c, ErrOutOfBounds)
	}
	l.rooms[l.index(c)] = r
	return nil
}

// Coordinates enumerates every valid room coordinate in row-major order.
func (l *Labyrinth) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, l.xSize*l.ySize)
	for y := 0; y < l.ySize; y++ {
		for x := 0; x < l.xSize; x++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}
	return coords
}

// BreakWall removes the wall between the room at c and its neighbor in
// direction d, on both sides. Walls on the outer boundary cannot be
// broken.
func (l *Labyrinth) BreakWall(c Coordinate, d Direction) error {
	if d == DirNone {
		return fmt.Errorf("break wall at %v: %w: DirNone is not a direction", c, ErrInvalidArgument)
	}
	room, err := l.RoomAt(c)
	if err != nil {
		return fmt.Errorf("break wall: %w", err)
	}
	neighbor, err := l.RoomAt(c.Step(d))
	if err != nil {
		return fmt.Errorf("break wall at %v toward %v: %w", c, d, err)
	}
	room.walls[d] = false
	neighbor.walls[d.Opposite()] = false
	return nil
}

// SetExit marks the room at c as the exit room, opening toward d.
// The direction must point off the edge of the labyrinth.
func (l *Labyrinth) SetExit(c Coordinate, d Direction) error {
	if d == DirNone {
		return fmt.Errorf("set exit at %v: %w: DirNone is not a direction", c, ErrInvalidArgument)
	}
	room, err := l.RoomAt(c)
	if err != nil {
		return fmt.Errorf("set exit: %w", err)
	}
	if l.WithinBounds(c.Step(d)) {
		return fmt.Errorf("set exit at %v toward %v: %w: exit must face the outer boundary", c, d, ErrInvalidArgument)
	}
	room.exit = d
	return nil
}

// SetInhabitant replaces the occupant of the room at c.
func (l *Labyrinth) SetInhabitant(c Coordinate, inh Inhabitant) error {
	room, err := l.RoomAt(c)
	if err != nil {
		return fmt.Errorf("set inhabitant: %w", err)
	}
	room.SetInhabitant(inh)
	return nil
}

// SetItem replaces the item of the room at c.
func (l *Labyrinth) SetItem(c Coordinate, itm Item) error {
	room, err := l.RoomAt(c)
	if err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	room.SetItem(itm)
	return nil
}
