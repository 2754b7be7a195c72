package maze

import "fmt"

// Room is one cell of the labyrinth: at most one exit direction, four
// wall flags, an inhabitant, and an item. Rooms are configured when the
// labyrinth is built and afterwards mutated only through the inhabitant
// and item setters.
type Room struct {
	exit       Direction
	walls      [4]bool
	inhabitant Inhabitant
	item       Item
}

// NewRoom creates a room with the given exit direction (DirNone for no
// exit) and wall flags. The room starts with no inhabitant and no item.
func NewRoom(exit Direction, wallNorth, wallEast, wallSouth, wallWest bool) Room {
	return Room{
		exit:  exit,
		walls: [4]bool{DirNorth: wallNorth, DirEast: wallEast, DirSouth: wallSouth, DirWest: wallWest},
	}
}

// Exit returns the room's exit direction, or DirNone.
func (r *Room) Exit() Direction {
	return r.exit
}

// Inhabitant returns the room's current occupant.
func (r *Room) Inhabitant() Inhabitant {
	return r.inhabitant
}

// SetInhabitant replaces the room's occupant. Setting the occupant that
// is already present, or InhabitantNone, is allowed.
func (r *Room) SetInhabitant(inh Inhabitant) {
	r.inhabitant = inh
}

// Item returns the room's current item.
func (r *Room) Item() Item {
	return r.item
}

// SetItem replaces the room's item.
func (r *Room) SetItem(itm Item) {
	r.item = itm
}

// DirectionCheck classifies one side of the room: BorderExit if the side
// is the labyrinth exit, BorderRoom if it opens into a neighboring room,
// BorderWall otherwise. The exit direction is checked first and wins
// regardless of the wall flag for that side.
func (r *Room) DirectionCheck(d Direction) (RoomBorder, error) {
	if d == DirNone {
		return BorderWall, fmt.Errorf("direction check: %w: DirNone is not a direction", ErrInvalidArgument)
	}
	if d == r.exit {
		return BorderExit, nil
	}
	if !r.walls[d] {
		return BorderRoom, nil
	}
	return BorderWall, nil
}
