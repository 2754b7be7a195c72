package labmap

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dmahoney/labyrinth/internal/maze"
	"github.com/dmahoney/labyrinth/internal/telemetry"
	"github.com/dmahoney/labyrinth/internal/theme"
)

// BorderGlyph renders one border cell with the given theme: the exit
// glyph if the cell carries the exit, otherwise a corner, wall segment,
// or open-passage glyph. It fails when c is outside the map grid or
// designates a room cell.
func (m *Map) BorderGlyph(c maze.Coordinate, th *theme.Theme) (string, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return "", fmt.Errorf("border glyph: %w", err)
	}
	if room {
		return "", fmt.Errorf("border glyph %v: %w: coordinate designates a room", c, ErrShapeMismatch)
	}

	cell, err := m.At(c)
	if err != nil {
		return "", err
	}
	exit, err := cell.IsExit()
	if err != nil {
		return "", err
	}
	if exit {
		return th.Exit, nil
	}

	switch {
	case c.X%2 == 0 && c.Y%2 == 0:
		return th.Corner, nil
	case c.X%2 == 1:
		// Border between vertically adjacent rooms; the passage runs
		// north-south, so one representative wall flag decides.
		wall, err := cell.IsWall(maze.DirNorth)
		if err != nil {
			return "", err
		}
		if wall {
			return th.WallHorizontal, nil
		}
		return th.Open, nil
	default:
		wall, err := cell.IsWall(maze.DirEast)
		if err != nil {
			return "", err
		}
		if wall {
			return th.WallVertical, nil
		}
		return th.Open, nil
	}
}

// RoomGlyph renders one room cell with the given theme: the occupant if
// present, else the treasure, else an empty room. It fails when c is
// outside the map grid or designates a border cell.
func (m *Map) RoomGlyph(c maze.Coordinate, th *theme.Theme) (string, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return "", fmt.Errorf("room glyph: %w", err)
	}
	if !room {
		return "", fmt.Errorf("room glyph %v: %w: coordinate designates a border", c, ErrShapeMismatch)
	}

	cell, err := m.At(c)
	if err != nil {
		return "", err
	}
	inh, err := cell.Inhabitant()
	if err != nil {
		return "", err
	}
	if inh != maze.InhabitantNone {
		return th.InhabitantGlyph(inh), nil
	}
	treasure, err := cell.HasTreasure()
	if err != nil {
		return "", err
	}
	if treasure {
		return th.Treasure, nil
	}
	return th.Room, nil
}

// Display writes the rendered map to w, one text line per map grid row,
// top to bottom. Call Update first so the grid reflects the labyrinth.
func (m *Map) Display(ctx context.Context, w io.Writer, th *theme.Theme) error {
	tracer := telemetry.Tracer("labmap")
	_, span := tracer.Start(ctx, "map.display")
	defer span.End()

	var line strings.Builder
	for y := 0; y < m.mapY; y++ {
		line.Reset()
		for x := 0; x < m.mapX; x++ {
			c := maze.Coordinate{X: x, Y: y}
			room, err := m.IsRoom(c)
			if err != nil {
				return err
			}

			var glyph string
			if room {
				glyph, err = m.RoomGlyph(c, th)
			} else {
				glyph, err = m.BorderGlyph(c, th)
			}
			if err != nil {
				return fmt.Errorf("display %v: %w", c, err)
			}
			line.WriteString(glyph)
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return fmt.Errorf("display row %d: %w", y, err)
		}
	}

	span.SetAttributes(attribute.Int("map.rows", m.mapY))
	return nil
}
