// Package labmap mirrors a labyrinth's room grid into a denser display
// grid that interleaves room cells with the border cells between and
// around them, and keeps the two grids consistent under mutation.
package labmap

import (
	"fmt"

	"github.com/dmahoney/labyrinth/internal/maze"
)

// CellKind tags which shape a map cell has.
type CellKind int

const (
	// KindBorder is the boundary between two rooms, the corner between
	// four rooms, or a piece of the outer wall.
	KindBorder CellKind = iota
	// KindRoom mirrors one labyrinth room.
	KindRoom
)

// String returns the shape name.
func (k CellKind) String() string {
	switch k {
	case KindBorder:
		return "border"
	case KindRoom:
		return "room"
	default:
		return "unknown"
	}
}

// Cell is one position of the map grid: either a border (four wall flags
// plus an exit flag) or a room (an inhabitant plus a treasure flag). The
// shape is fixed when the cell is created and never changes; invoking an
// operation of the other shape fails with ErrShapeMismatch.
type Cell struct {
	kind CellKind

	// Border shape. Walls default to standing so the outer boundary
	// needs no special-casing.
	walls [4]bool
	exit  bool

	// Room shape.
	inhabitant maze.Inhabitant
	treasure   bool
}

// NewBorderCell returns a fully walled border cell with no exit.
func NewBorderCell() Cell {
	return Cell{kind: KindBorder, walls: [4]bool{true, true, true, true}}
}

// NewRoomCell returns an empty room cell: no inhabitant, no treasure.
func NewRoomCell() Cell {
	return Cell{kind: KindRoom}
}

// Kind returns the cell's shape tag.
func (c *Cell) Kind() CellKind {
	return c.kind
}

// IsRoom reports whether the cell has the room shape. Probe this before
// invoking shape-specific operations on a cell of unknown kind.
func (c *Cell) IsRoom() bool {
	return c.kind == KindRoom
}

func (c *Cell) borderOnly(op string) error {
	if c.kind != KindBorder {
		return fmt.Errorf("%s called on a %s cell: %w: probe with IsRoom first", op, c.kind, ErrShapeMismatch)
	}
	return nil
}

func (c *Cell) roomOnly(op string) error {
	if c.kind != KindRoom {
		return fmt.Errorf("%s called on a %s cell: %w: probe with IsRoom first", op, c.kind, ErrShapeMismatch)
	}
	return nil
}

// IsWall reports whether the border cell still has a wall toward d.
func (c *Cell) IsWall(d maze.Direction) (bool, error) {
	if err := c.borderOnly("IsWall"); err != nil {
		return false, err
	}
	if d == maze.DirNone {
		return false, fmt.Errorf("IsWall: %w: DirNone is not a direction", maze.ErrInvalidArgument)
	}
	return c.walls[d], nil
}

// RemoveWall clears the border cell's wall toward d. Removing a wall
// that is already gone is allowed.
func (c *Cell) RemoveWall(d maze.Direction) error {
	if err := c.borderOnly("RemoveWall"); err != nil {
		return err
	}
	if d == maze.DirNone {
		return fmt.Errorf("RemoveWall: %w: DirNone is not a direction", maze.ErrInvalidArgument)
	}
	c.walls[d] = false
	return nil
}

// IsExit reports whether the border cell carries the labyrinth exit.
func (c *Cell) IsExit() (bool, error) {
	if err := c.borderOnly("IsExit"); err != nil {
		return false, err
	}
	return c.exit, nil
}

// SetExit marks or unmarks the border cell as the exit. Setting a state
// the cell is already in is allowed.
func (c *Cell) SetExit(b bool) error {
	if err := c.borderOnly("SetExit"); err != nil {
		return err
	}
	c.exit = b
	return nil
}

// Inhabitant returns the room cell's occupant.
func (c *Cell) Inhabitant() (maze.Inhabitant, error) {
	if err := c.roomOnly("Inhabitant"); err != nil {
		return maze.InhabitantNone, err
	}
	return c.inhabitant, nil
}

// SetInhabitant replaces the room cell's occupant.
func (c *Cell) SetInhabitant(inh maze.Inhabitant) error {
	if err := c.roomOnly("SetInhabitant"); err != nil {
		return err
	}
	c.inhabitant = inh
	return nil
}

// HasTreasure reports whether the treasure lies in the room cell.
func (c *Cell) HasTreasure() (bool, error) {
	if err := c.roomOnly("HasTreasure"); err != nil {
		return false, err
	}
	return c.treasure, nil
}

// SetTreasure marks or unmarks the treasure in the room cell.
func (c *Cell) SetTreasure(b bool) error {
	if err := c.roomOnly("SetTreasure"); err != nil {
		return err
	}
	c.treasure = b
	return nil
}
