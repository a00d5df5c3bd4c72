// Package main is the entry point for PyRPG.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/Headmann88/Game-PyRPG/internal/game"
	"github.com/Headmann88/Game-PyRPG/internal/gamedata"
	"github.com/Headmann88/Game-PyRPG/internal/telemetry"
	"github.com/Headmann88/Game-PyRPG/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the renderer, so the log goes to a file or nowhere
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.HoneycombOptions(cfg.HoneycombAPIKey, cfg.HoneycombDataset))
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	var bundle *gamedata.Bundle
	if cfg.DataDir != "" {
		bundle, err = gamedata.LoadDir(cfg.DataDir)
	} else {
		bundle, err = gamedata.LoadEmbedded()
	}
	if err != nil {
		// A malformed map stops the program before the screen opens
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load game data: %v", err)
	}

	g, err := game.New(ctx, bundle, cfg, nil)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to open terminal: %v", err)
	}

	runErr := ui.Run(ctx, screen, g, cfg.FrameInterval())
	screen.Close()

	if runErr != nil && ctx.Err() == nil {
		log.Printf("Game error: %v", runErr)
	}
}
