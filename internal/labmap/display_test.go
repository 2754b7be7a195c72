package labmap

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmahoney/labyrinth/internal/maze"
	"github.com/dmahoney/labyrinth/internal/theme"
)

func asciiTheme(t *testing.T) *theme.Theme {
	t.Helper()
	registry, err := theme.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	th := registry.Get("ascii")
	if th == nil {
		t.Fatal("ascii theme not found")
	}
	return th
}

func TestDisplaySingleRoomExitNorth(t *testing.T) {
	lab := newLabyrinth(t, 1, 1)
	if err := lab.SetExit(maze.Coordinate{X: 0, Y: 0}, maze.DirNorth); err != nil {
		t.Fatalf("SetExit failed: %v", err)
	}

	m := newMap(t, lab)
	ctx := context.Background()
	if err := m.Update(ctx); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Display(ctx, &buf, asciiTheme(t)); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"+E+",
		"|.|",
		"+-+",
	}
	if len(got) != len(want) {
		t.Fatalf("Display produced %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDisplayTreasureAndInhabitant(t *testing.T) {
	lab := newLabyrinth(t, 2, 1)
	lab.BreakWall(maze.Coordinate{X: 0, Y: 0}, maze.DirEast)
	lab.SetItem(maze.Coordinate{X: 0, Y: 0}, maze.ItemTreasure)
	lab.SetInhabitant(maze.Coordinate{X: 1, Y: 0}, maze.InhabitantMinotaur)

	m := newMap(t, lab)
	ctx := context.Background()
	if err := m.Update(ctx); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Display(ctx, &buf, asciiTheme(t)); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if got[1] != "|T M|" {
		t.Errorf("middle row = %q, want %q", got[1], "|T M|")
	}
}

func TestBorderGlyphErrors(t *testing.T) {
	m := newMap(t, newLabyrinth(t, 2, 2))
	th := asciiTheme(t)

	_, err := m.BorderGlyph(maze.Coordinate{X: 50, Y: 0}, th)
	if !errors.Is(err, maze.ErrOutOfBounds) {
		t.Errorf("BorderGlyph outside grid error = %v, want ErrOutOfBounds", err)
	}

	_, err = m.BorderGlyph(maze.Coordinate{X: 1, Y: 1}, th)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("BorderGlyph on room error = %v, want ErrShapeMismatch", err)
	}
}

func TestRoomGlyphErrors(t *testing.T) {
	m := newMap(t, newLabyrinth(t, 2, 2))
	th := asciiTheme(t)

	_, err := m.RoomGlyph(maze.Coordinate{X: 0, Y: 50}, th)
	if !errors.Is(err, maze.ErrOutOfBounds) {
		t.Errorf("RoomGlyph outside grid error = %v, want ErrOutOfBounds", err)
	}

	_, err = m.RoomGlyph(maze.Coordinate{X: 0, Y: 0}, th)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("RoomGlyph on border error = %v, want ErrShapeMismatch", err)
	}
}
