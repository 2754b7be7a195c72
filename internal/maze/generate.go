package maze

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/dmahoney/labyrinth/internal/telemetry"
)

// Generate carves a perfect maze with a recursive backtracker, opens a
// single exit on the boundary, and places the treasure and the minotaur.
// The result is fully determined by the supplied rng.
func (l *Labyrinth) Generate(ctx context.Context, rng *rand.Rand) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "labyrinth.generate")
	defer span.End()

	startTime := time.Now()

	l.carve(rng)
	exit := l.placeExit(rng)
	l.placeContents(rng)

	span.SetAttributes(
		attribute.Int("labyrinth.x_size", l.xSize),
		attribute.Int("labyrinth.y_size", l.ySize),
		attribute.String("labyrinth.exit_room", exit.String()),
		attribute.Int64("labyrinth.generation_us", time.Since(startTime).Microseconds()),
	)
}

// carve runs an iterative depth-first backtracker over the room grid,
// breaking walls between a visited room and a random unvisited neighbor.
// Every room ends up reachable from every other.
func (l *Labyrinth) carve(rng *rand.Rand) {
	visited := make([]bool, len(l.rooms))
	stack := []Coordinate{{X: 0, Y: 0}}
	visited[0] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		next := DirNone
		for _, i := range rng.Perm(4) {
			d := Directions()[i]
			n := cur.Step(d)
			if l.WithinBounds(n) && !visited[l.index(n)] {
				next = d
				break
			}
		}

		if next == DirNone {
			stack = stack[:len(stack)-1]
			continue
		}

		// BreakWall cannot fail here: both rooms are in bounds.
		l.BreakWall(cur, next)
		n := cur.Step(next)
		visited[l.index(n)] = true
		stack = append(stack, n)
	}
}

// placeExit opens the single exit in a random room on the outer
// boundary, facing outward, and returns that room's coordinate.
func (l *Labyrinth) placeExit(rng *rand.Rand) Coordinate {
	var c Coordinate
	d := Directions()[rng.Intn(4)]
	switch d {
	case DirNorth:
		c = Coordinate{X: rng.Intn(l.xSize), Y: 0}
	case DirEast:
		c = Coordinate{X: l.xSize - 1, Y: rng.Intn(l.ySize)}
	case DirSouth:
		c = Coordinate{X: rng.Intn(l.xSize), Y: l.ySize - 1}
	case DirWest:
		c = Coordinate{X: 0, Y: rng.Intn(l.ySize)}
	}
	l.SetExit(c, d)
	return c
}

// placeContents puts the treasure in a random room and the minotaur in
// another, keeping both out of the entrance room at (0,0). Labyrinths
// too small to hold them stay empty.
func (l *Labyrinth) placeContents(rng *rand.Rand) {
	entrance := Coordinate{X: 0, Y: 0}

	if l.xSize*l.ySize < 2 {
		return
	}
	treasure := entrance
	for treasure == entrance {
		treasure = Coordinate{X: rng.Intn(l.xSize), Y: rng.Intn(l.ySize)}
	}
	l.SetItem(treasure, ItemTreasure)

	if l.xSize*l.ySize < 3 {
		return
	}
	for {
		c := Coordinate{X: rng.Intn(l.xSize), Y: rng.Intn(l.ySize)}
		if c != treasure && c != entrance {
			l.SetInhabitant(c, InhabitantMinotaur)
			return
		}
	}
}
