// Package main is the entry point for Horizon.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/samdwyer/horizon/internal/config"
	"github.com/samdwyer/horizon/internal/game"
	"github.com/samdwyer/horizon/internal/logging"
	"github.com/samdwyer/horizon/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run wires and runs the game, returning the process exit code. Deferred
// flushes run before main exits.
func run() int {
	// Not fatal: settings may come from the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, path, err := config.FromEnv()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer logger.Sync()

	if path == "" {
		logger.Info("no config file, using defaults")
	} else {
		logger.Info("config loaded", zap.String("path", path))
	}

	setupOTelEnv()
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		cfg.Telemetry.Enabled = true
	}
	// Exporter errors must not reach the terminal the UI owns.
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("telemetry", zap.Error(err))
	}))

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// The game still works without observability.
		logger.Warn("telemetry setup failed", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown", zap.Error(err))
			}
		}()
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize game", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		logger.Error("game stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// setupOTelEnv fills the OTEL_* exporter variables from HORIZON_* ones
// when they are not already set.
func setupOTelEnv() {
	apiKey := os.Getenv("HORIZON_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HORIZON_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "horizon"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
