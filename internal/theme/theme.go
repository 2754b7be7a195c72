package theme

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dmahoney/labyrinth/internal/maze"
)

// Theme defines the glyphs and colors used to draw the map. Glyphs are
// strings so box-drawing runes work, but each should occupy one cell.
type Theme struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	WallHorizontal string `json:"wallHorizontal"` // border between vertically adjacent rooms
	WallVertical   string `json:"wallVertical"`   // border between horizontally adjacent rooms
	Corner         string `json:"corner"`
	Open           string `json:"open"`
	Exit           string `json:"exit"`

	Room          string `json:"room"` // empty room
	Treasure      string `json:"treasure"`
	Player        string `json:"player"`
	Minotaur      string `json:"minotaur"`
	MinotaurDead  string `json:"minotaurDead"`
	Mirror        string `json:"mirror"`
	MirrorCracked string `json:"mirrorCracked"`

	WallColor       string `json:"wallColor"`
	ExitColor       string `json:"exitColor"`
	TreasureColor   string `json:"treasureColor"`
	PlayerColor     string `json:"playerColor"`
	InhabitantColor string `json:"inhabitantColor"`
}

// InhabitantGlyph returns the glyph for a room occupant.
func (t *Theme) InhabitantGlyph(inh maze.Inhabitant) string {
	switch inh {
	case maze.InhabitantMinotaur:
		return t.Minotaur
	case maze.InhabitantMinotaurDead:
		return t.MinotaurDead
	case maze.InhabitantMirror:
		return t.Mirror
	case maze.InhabitantMirrorCracked:
		return t.MirrorCracked
	default:
		return t.Room
	}
}

func (t *Theme) color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// WallTCellColor returns the wall color as a tcell.Color.
func (t *Theme) WallTCellColor() tcell.Color { return t.color(t.WallColor) }

// ExitTCellColor returns the exit color as a tcell.Color.
func (t *Theme) ExitTCellColor() tcell.Color { return t.color(t.ExitColor) }

// TreasureTCellColor returns the treasure color as a tcell.Color.
func (t *Theme) TreasureTCellColor() tcell.Color { return t.color(t.TreasureColor) }

// PlayerTCellColor returns the player color as a tcell.Color.
func (t *Theme) PlayerTCellColor() tcell.Color { return t.color(t.PlayerColor) }

// InhabitantTCellColor returns the inhabitant color as a tcell.Color.
func (t *Theme) InhabitantTCellColor() tcell.Color { return t.color(t.InhabitantColor) }

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]Theme, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// Registry holds loaded themes keyed by ID.
type Registry struct {
	themes map[string]*Theme
	all    []Theme
}

// NewRegistry creates a registry from loaded theme definitions.
func NewRegistry(themes []Theme) *Registry {
	registry := &Registry{
		themes: make(map[string]*Theme),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(themes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the theme with the given ID, or nil if not found.
func (r *Registry) Get(id string) *Theme {
	return r.themes[id]
}

// Default returns the first loaded theme.
func (r *Registry) Default() *Theme {
	return &r.all[0]
}

// Count returns the number of loaded themes.
func (r *Registry) Count() int {
	return len(r.all)
}
