package theme

import (
	"testing"

	"github.com/dmahoney/labyrinth/internal/maze"
)

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(themes) != 2 {
		t.Errorf("Expected 2 themes, got %d", len(themes))
	}

	expectedIDs := map[string]bool{"ascii": false, "unicode": false}
	for _, th := range themes {
		if _, ok := expectedIDs[th.ID]; ok {
			expectedIDs[th.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected theme %q not found", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 themes, got %d", registry.Count())
	}

	ascii := registry.Get("ascii")
	if ascii == nil {
		t.Fatal("ascii theme not found by ID")
	}
	if ascii.Exit == "" || ascii.Exit == ascii.WallHorizontal || ascii.Exit == ascii.Open {
		t.Errorf("ascii exit glyph %q is not distinct from wall %q and open %q",
			ascii.Exit, ascii.WallHorizontal, ascii.Open)
	}

	if registry.Get("missing") != nil {
		t.Error("Get of unknown ID should return nil")
	}
	if registry.Default() == nil {
		t.Error("Default() returned nil")
	}
}

func TestThemeGlyphsDistinct(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	// The three border classifications must be told apart visually.
	for _, th := range themes {
		if th.Exit == th.Open || th.Exit == th.WallHorizontal || th.Exit == th.WallVertical {
			t.Errorf("theme %q: exit glyph %q collides with wall or open", th.ID, th.Exit)
		}
		if th.Open == th.WallHorizontal || th.Open == th.WallVertical {
			t.Errorf("theme %q: open glyph %q collides with a wall glyph", th.ID, th.Open)
		}
	}
}

func TestInhabitantGlyph(t *testing.T) {
	th := MustLoadRegistry().Get("ascii")

	tests := []struct {
		inhabitant maze.Inhabitant
		expected   string
	}{
		{maze.InhabitantMinotaur, th.Minotaur},
		{maze.InhabitantMinotaurDead, th.MinotaurDead},
		{maze.InhabitantMirror, th.Mirror},
		{maze.InhabitantMirrorCracked, th.MirrorCracked},
		{maze.InhabitantNone, th.Room},
	}

	for _, tt := range tests {
		if got := th.InhabitantGlyph(tt.inhabitant); got != tt.expected {
			t.Errorf("InhabitantGlyph(%v) = %q, want %q", tt.inhabitant, got, tt.expected)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
