package maze

import "fmt"

// Coordinate is an immutable (x, y) grid position. It is used both in
// labyrinth space (room indices) and in map space (the doubled display
// grid that interleaves rooms with borders).
type Coordinate struct {
	X, Y int
}

// String returns the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}
