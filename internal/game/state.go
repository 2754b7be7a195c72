// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExploring is the normal mode: the player walks the labyrinth.
	StateExploring State = iota
	// StateWon means the player escaped through the exit with the treasure.
	StateWon
	// StateDead means the player walked into the minotaur.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExploring:
		return "exploring"
	case StateWon:
		return "won"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
