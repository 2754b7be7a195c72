package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dmahoney/labyrinth/internal/labmap"
	"github.com/dmahoney/labyrinth/internal/maze"
	"github.com/dmahoney/labyrinth/internal/telemetry"
	"github.com/dmahoney/labyrinth/internal/theme"
	"github.com/dmahoney/labyrinth/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer

	lab    *maze.Labyrinth
	m      *labmap.Map
	player maze.Coordinate

	state        State
	treasureHeld bool
	message      string
	running      bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	registry, err := theme.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}
	th := registry.Get(cfg.Theme)
	if th == nil {
		th = registry.Default()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, th),
		state:    StateExploring,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	lab, err := maze.NewLabyrinth(g.cfg.XSize, g.cfg.YSize)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	lab.Generate(ctx, rng)

	m, err := labmap.New(lab)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	g.lab = lab
	g.m = m
	g.player = maze.Coordinate{X: 0, Y: 0}
	g.message = "Find the treasure, then escape. Arrows or hjkl move, q quits."

	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("labyrinth.x_size", g.cfg.XSize),
		attribute.Int("labyrinth.y_size", g.cfg.YSize),
	)
	initSpan.End()

	if err := g.m.Update(ctx); err != nil {
		g.screen.Close()
		return err
	}

	for g.running {
		if err := g.renderer.Render(g.m, g.player, g.message); err != nil {
			g.screen.Close()
			return err
		}
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, maze.DirNorth)
	case tcell.KeyDown:
		g.tryMove(ctx, maze.DirSouth)
	case tcell.KeyLeft:
		g.tryMove(ctx, maze.DirWest)
	case tcell.KeyRight:
		g.tryMove(ctx, maze.DirEast)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.tryMove(ctx, maze.DirNorth)
		case 'j':
			g.tryMove(ctx, maze.DirSouth)
		case 'h':
			g.tryMove(ctx, maze.DirWest)
		case 'l':
			g.tryMove(ctx, maze.DirEast)
		}
	}
}

// tryMove attempts to move the player one room in the given direction
// and synchronizes the map afterwards.
func (g *Game) tryMove(ctx context.Context, d maze.Direction) {
	if g.state != StateExploring {
		g.message = fmt.Sprintf("The game is over (%v). Press q to quit.", g.state)
		return
	}

	next, outcome, err := ResolveMove(g.lab, g.player, d, g.treasureHeld)
	if err != nil {
		g.message = err.Error()
		return
	}

	switch outcome {
	case MoveBlocked:
		g.message = "A wall blocks the way."
	case MoveNeedTreasure:
		g.message = "The exit. You cannot leave without the treasure."
	case MoveEscaped:
		g.state = StateWon
		g.message = "You escape the labyrinth with the treasure. You win!"
	case MoveStepped:
		g.player = next
		g.enterRoom(next)
	}

	if err := g.m.Update(ctx); err != nil {
		g.message = err.Error()
	}
}

// enterRoom applies the effects of stepping into a room: picking up the
// treasure, meeting the minotaur, cracking a mirror.
func (g *Game) enterRoom(c maze.Coordinate) {
	room, err := g.lab.RoomAt(c)
	if err != nil {
		g.message = err.Error()
		return
	}

	g.message = ""

	switch room.Inhabitant() {
	case maze.InhabitantMinotaur:
		g.state = StateDead
		g.message = "The minotaur finds you in the dark. You are dead."
		return
	case maze.InhabitantMinotaurDead:
		g.message = "The minotaur's carcass rots here."
	case maze.InhabitantMirror:
		room.SetInhabitant(maze.InhabitantMirrorCracked)
		g.message = "Your reflection stares back, then the mirror cracks."
	case maze.InhabitantMirrorCracked:
		g.message = "Shards of a broken mirror litter the floor."
	}

	if room.Item() == maze.ItemTreasure {
		room.SetItem(maze.ItemNone)
		g.treasureHeld = true
		g.message = "You pick up the treasure. Now find the exit."
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
