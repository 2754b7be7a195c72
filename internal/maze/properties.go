package maze

// Inhabitant represents what occupies a room.
type Inhabitant int

const (
	InhabitantNone Inhabitant = iota
	InhabitantMinotaur
	InhabitantMinotaurDead
	InhabitantMirror
	InhabitantMirrorCracked
)

// String returns the inhabitant name.
func (i Inhabitant) String() string {
	switch i {
	case InhabitantNone:
		return "none"
	case InhabitantMinotaur:
		return "minotaur"
	case InhabitantMinotaurDead:
		return "dead minotaur"
	case InhabitantMirror:
		return "mirror"
	case InhabitantMirrorCracked:
		return "cracked mirror"
	default:
		return "unknown"
	}
}

// Item represents what lies in a room.
type Item int

const (
	ItemNone Item = iota
	ItemTreasure
)

// String returns the item name.
func (i Item) String() string {
	switch i {
	case ItemNone:
		return "none"
	case ItemTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// RoomBorder classifies one side of a room.
type RoomBorder int

const (
	// BorderExit means the side is the labyrinth exit.
	BorderExit RoomBorder = iota
	// BorderRoom means the side opens into a neighboring room.
	BorderRoom
	// BorderWall means the side is a solid wall.
	BorderWall
)

// String returns the classification name.
func (b RoomBorder) String() string {
	switch b {
	case BorderExit:
		return "exit"
	case BorderRoom:
		return "room"
	case BorderWall:
		return "wall"
	default:
		return "unknown"
	}
}
