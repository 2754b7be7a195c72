package labmap

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dmahoney/labyrinth/internal/maze"
	"github.com/dmahoney/labyrinth/internal/telemetry"
)

// Update synchronizes the map grid with the labyrinth. For every room it
// copies the occupant and item onto the mirrored room cell and folds the
// per-direction border classifications into the adjacent border cells.
//
// Two rooms on opposite sides of one border each report it independently,
// so the merge rule is "most open wins": an exit or open report removes
// walls, a wall report leaves the cell alone. A border opened by one
// neighbor is never walled back up by the other. The result therefore
// does not depend on the order rooms are visited in, and re-running
// Update without an intervening labyrinth change leaves the grid
// untouched.
func (m *Map) Update(ctx context.Context) error {
	tracer := telemetry.Tracer("labmap")
	_, span := tracer.Start(ctx, "map.update")
	defer span.End()

	coords := m.lab.Coordinates()
	for _, lc := range coords {
		if err := m.syncRoom(lc); err != nil {
			return fmt.Errorf("update room %v: %w", lc, err)
		}
	}

	span.SetAttributes(attribute.Int("map.rooms", len(coords)))
	return nil
}

// syncRoom mirrors a single labyrinth room onto the map grid.
func (m *Map) syncRoom(lc maze.Coordinate) error {
	room, err := m.lab.RoomAt(lc)
	if err != nil {
		return err
	}
	rc, err := m.LabyrinthToMap(lc)
	if err != nil {
		return err
	}

	cell, err := m.At(rc)
	if err != nil {
		return err
	}
	if err := cell.SetInhabitant(room.Inhabitant()); err != nil {
		return err
	}
	if err := cell.SetTreasure(room.Item() == maze.ItemTreasure); err != nil {
		return err
	}

	for _, d := range maze.Directions() {
		border, err := room.DirectionCheck(d)
		if err != nil {
			return err
		}
		bc, err := m.At(rc.Step(d))
		if err != nil {
			return err
		}
		switch border {
		case maze.BorderExit:
			if err := bc.SetExit(true); err != nil {
				return err
			}
			if err := openBorder(bc, d); err != nil {
				return err
			}
		case maze.BorderRoom:
			if err := openBorder(bc, d); err != nil {
				return err
			}
		case maze.BorderWall:
			// Leave the wall standing. The neighbor on the far side may
			// already have opened this border; never regress it.
		}
	}
	return nil
}

// openBorder clears the border cell's walls along the passage axis, on
// both the near and the far side, so that either neighbor's report
// produces the same cell state.
func openBorder(c *Cell, d maze.Direction) error {
	if err := c.RemoveWall(d); err != nil {
		return err
	}
	return c.RemoveWall(d.Opposite())
}
