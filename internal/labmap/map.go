package labmap

import (
	"fmt"

	"github.com/dmahoney/labyrinth/internal/maze"
)

// Map mirrors a labyrinth into the doubled display grid. A labyrinth of
// x_size × y_size rooms becomes a grid of (2·x_size+1) × (2·y_size+1)
// cells: room cells at odd,odd positions, border cells everywhere else.
//
// The Map holds a non-owning reference to its labyrinth and must not
// outlive it. The cell grid itself is allocated once at construction and
// owned exclusively by the Map.
type Map struct {
	lab          *maze.Labyrinth
	xSize, ySize int // labyrinth dimensions in rooms
	mapX, mapY   int // map grid dimensions in cells
	cells        []Cell
}

// New creates a map covering every room of lab and every border between
// and around them. All borders start walled and all room cells empty;
// call Update to synchronize with the labyrinth.
func New(lab *maze.Labyrinth) (*Map, error) {
	if lab == nil {
		return nil, fmt.Errorf("new map: %w: nil labyrinth", maze.ErrInvalidArgument)
	}

	xSize, ySize := lab.Size()
	m := &Map{
		lab:   lab,
		xSize: xSize,
		ySize: ySize,
		mapX:  2*xSize + 1,
		mapY:  2*ySize + 1,
	}

	m.cells = make([]Cell, m.mapX*m.mapY)
	for y := 0; y < m.mapY; y++ {
		for x := 0; x < m.mapX; x++ {
			if x%2 == 1 && y%2 == 1 {
				m.cells[y*m.mapX+x] = NewRoomCell()
			} else {
				m.cells[y*m.mapX+x] = NewBorderCell()
			}
		}
	}
	return m, nil
}

// Bounds returns the map grid dimensions in cells.
func (m *Map) Bounds() (width, height int) {
	return m.mapX, m.mapY
}

// WithinBounds reports whether c lies on the map grid.
func (m *Map) WithinBounds(c maze.Coordinate) bool {
	return c.X >= 0 && c.X < m.mapX && c.Y >= 0 && c.Y < m.mapY
}

func (m *Map) index(c maze.Coordinate) int {
	return c.Y*m.mapX + c.X
}

// IsRoom reports whether c designates a room cell rather than a border.
func (m *Map) IsRoom(c maze.Coordinate) (bool, error) {
	if !m.WithinBounds(c) {
		return false, fmt.Errorf("is room %v: %w", c, maze.ErrOutOfBounds)
	}
	return m.cells[m.index(c)].IsRoom(), nil
}

// At returns the cell at c.
func (m *Map) At(c maze.Coordinate) (*Cell, error) {
	if !m.WithinBounds(c) {
		return nil, fmt.Errorf("cell at %v: %w", c, maze.ErrOutOfBounds)
	}
	return &m.cells[m.index(c)], nil
}

// LabyrinthToMap converts a labyrinth room coordinate to its position on
// the map grid: (x, y) → (2x+1, 2y+1).
func (m *Map) LabyrinthToMap(c maze.Coordinate) (maze.Coordinate, error) {
	if !m.lab.WithinBounds(c) {
		return maze.Coordinate{}, fmt.Errorf("labyrinth to map %v: %w: outside the labyrinth", c, maze.ErrInvalidArgument)
	}
	return maze.Coordinate{X: 2*c.X + 1, Y: 2*c.Y + 1}, nil
}

// MapToLabyrinth is the exact inverse of LabyrinthToMap. Only room cells
// (odd,odd positions) have an inverse; border cells fail with
// ErrShapeMismatch.
func (m *Map) MapToLabyrinth(c maze.Coordinate) (maze.Coordinate, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return maze.Coordinate{}, fmt.Errorf("map to labyrinth: %w", err)
	}
	if !room {
		return maze.Coordinate{}, fmt.Errorf("map to labyrinth %v: %w: border cells have no labyrinth coordinate", c, ErrShapeMismatch)
	}
	return maze.Coordinate{X: (c.X - 1) / 2, Y: (c.Y - 1) / 2}, nil
}
