package game

import (
	"github.com/dmahoney/labyrinth/internal/maze"
)

// MoveOutcome describes the result of attempting a move.
type MoveOutcome int

const (
	// MoveBlocked means a wall stands in the way.
	MoveBlocked MoveOutcome = iota
	// MoveStepped means the player entered the neighboring room.
	MoveStepped
	// MoveNeedTreasure means the player reached the exit without the
	// treasure and may not leave yet.
	MoveNeedTreasure
	// MoveEscaped means the player left through the exit.
	MoveEscaped
)

// String returns the outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveBlocked:
		return "blocked"
	case MoveStepped:
		return "stepped"
	case MoveNeedTreasure:
		return "need treasure"
	case MoveEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// ResolveMove applies the movement rules for one step from the given
// room: walls block, open sides lead to the neighboring room, and the
// exit lets the player out only when the treasure is held. It returns
// the resulting position, which equals from unless the outcome is
// MoveStepped.
func ResolveMove(lab *maze.Labyrinth, from maze.Coordinate, d maze.Direction, hasTreasure bool) (maze.Coordinate, MoveOutcome, error) {
	room, err := lab.RoomAt(from)
	if err != nil {
		return from, MoveBlocked, err
	}
	border, err := room.DirectionCheck(d)
	if err != nil {
		return from, MoveBlocked, err
	}

	switch border {
	case maze.BorderExit:
		if hasTreasure {
			return from, MoveEscaped, nil
		}
		return from, MoveNeedTreasure, nil
	case maze.BorderRoom:
		return from.Step(d), MoveStepped, nil
	default:
		return from, MoveBlocked, nil
	}
}
