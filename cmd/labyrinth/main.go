// Package main is the entry point for the labyrinth game.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmahoney/labyrinth/internal/game"
	"github.com/dmahoney/labyrinth/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Telemetry is best-effort: the game runs fine without it.
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.FromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
