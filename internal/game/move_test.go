package game

import (
	"errors"
	"testing"

	"github.com/dmahoney/labyrinth/internal/maze"
)

// twoRoomLabyrinth builds a 2x1 labyrinth: the west room opens east and
// has the exit on its north side, the east room holds the treasure.
func twoRoomLabyrinth(t *testing.T) *maze.Labyrinth {
	t.Helper()
	lab, err := maze.NewLabyrinth(2, 1)
	if err != nil {
		t.Fatalf("NewLabyrinth failed: %v", err)
	}
	if err := lab.BreakWall(maze.Coordinate{X: 0, Y: 0}, maze.DirEast); err != nil {
		t.Fatalf("BreakWall failed: %v", err)
	}
	if err := lab.SetExit(maze.Coordinate{X: 0, Y: 0}, maze.DirNorth); err != nil {
		t.Fatalf("SetExit failed: %v", err)
	}
	if err := lab.SetItem(maze.Coordinate{X: 1, Y: 0}, maze.ItemTreasure); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	return lab
}

func TestResolveMoveBlocked(t *testing.T) {
	lab := twoRoomLabyrinth(t)
	start := maze.Coordinate{X: 0, Y: 0}

	pos, outcome, err := ResolveMove(lab, start, maze.DirSouth, false)
	if err != nil {
		t.Fatalf("ResolveMove failed: %v", err)
	}
	if outcome != MoveBlocked {
		t.Errorf("outcome = %v, want MoveBlocked", outcome)
	}
	if pos != start {
		t.Errorf("position = %v, want %v", pos, start)
	}
}

func TestResolveMoveStepped(t *testing.T) {
	lab := twoRoomLabyrinth(t)

	pos, outcome, err := ResolveMove(lab, maze.Coordinate{X: 0, Y: 0}, maze.DirEast, false)
	if err != nil {
		t.Fatalf("ResolveMove failed: %v", err)
	}
	if outcome != MoveStepped {
		t.Errorf("outcome = %v, want MoveStepped", outcome)
	}
	if pos != (maze.Coordinate{X: 1, Y: 0}) {
		t.Errorf("position = %v, want (1,0)", pos)
	}
}

func TestResolveMoveExit(t *testing.T) {
	lab := twoRoomLabyrinth(t)
	start := maze.Coordinate{X: 0, Y: 0}

	_, outcome, err := ResolveMove(lab, start, maze.DirNorth, false)
	if err != nil {
		t.Fatalf("ResolveMove failed: %v", err)
	}
	if outcome != MoveNeedTreasure {
		t.Errorf("outcome without treasure = %v, want MoveNeedTreasure", outcome)
	}

	_, outcome, err = ResolveMove(lab, start, maze.DirNorth, true)
	if err != nil {
		t.Fatalf("ResolveMove failed: %v", err)
	}
	if outcome != MoveEscaped {
		t.Errorf("outcome with treasure = %v, want MoveEscaped", outcome)
	}
}

func TestResolveMoveErrors(t *testing.T) {
	lab := twoRoomLabyrinth(t)

	_, _, err := ResolveMove(lab, maze.Coordinate{X: 0, Y: 0}, maze.DirNone, false)
	if !errors.Is(err, maze.ErrInvalidArgument) {
		t.Errorf("ResolveMove(DirNone) error = %v, want ErrInvalidArgument", err)
	}

	_, _, err = ResolveMove(lab, maze.Coordinate{X: 9, Y: 9}, maze.DirNorth, false)
	if !errors.Is(err, maze.ErrOutOfBounds) {
		t.Errorf("ResolveMove from outside error = %v, want ErrOutOfBounds", err)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExploring, "exploring"},
		{StateWon, "won"},
		{StateDead, "dead"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
