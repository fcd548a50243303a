// Package main is the entry point for Bobby's Columns.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/bobbyscolumns/internal/game"
	"github.com/samdwyer/bobbyscolumns/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run starts the game and returns the process exit code. Deferred cleanup,
// including the telemetry flush, finishes before main exits.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		return 1
	}
	return 0
}

// setupOTelEnv maps HONEYCOMB_COLUMNS_* variables onto the standard OTEL_*
// ones. Explicit OTEL_* settings win.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_COLUMNS_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_COLUMNS_DATASET")
	if dataset == "" {
		dataset = "bobbyscolumns"
	}

	if os.Getenv(telemetry.EndpointEnv) == "" {
		os.Setenv(telemetry.EndpointEnv, "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
