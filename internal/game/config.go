package game

import (
	"os"
	"strconv"
)

const (
	// DefaultXSize and DefaultYSize are the labyrinth dimensions used
	// when the environment does not say otherwise.
	DefaultXSize = 8
	DefaultYSize = 8
	// DefaultTheme is the theme ID used when LABYRINTH_THEME is unset.
	DefaultTheme = "ascii"
)

// Config holds game options.
type Config struct {
	// Seed for random number generation. Used for reproducible
	// labyrinth generation. A seed of 0 means a random seed.
	Seed int64

	// XSize and YSize are the labyrinth dimensions in rooms.
	XSize int
	YSize int

	// Theme is the display theme ID.
	Theme string
}

// FromEnv builds a Config from LABYRINTH_* environment variables,
// falling back to defaults for unset or malformed values.
func FromEnv() Config {
	cfg := Config{
		XSize: DefaultXSize,
		YSize: DefaultYSize,
		Theme: DefaultTheme,
	}

	if v, err := strconv.ParseInt(os.Getenv("LABYRINTH_SEED"), 10, 64); err == nil {
		cfg.Seed = v
	}
	if v, err := strconv.Atoi(os.Getenv("LABYRINTH_X_SIZE")); err == nil && v > 0 {
		cfg.XSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("LABYRINTH_Y_SIZE")); err == nil && v > 0 {
		cfg.YSize = v
	}
	if v := os.Getenv("LABYRINTH_THEME"); v != "" {
		cfg.Theme = v
	}
	return cfg
}
