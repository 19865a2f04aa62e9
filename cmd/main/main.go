package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/abdullahzahoor404/telco-scanner/internal/bot"
	"github.com/abdullahzahoor404/telco-scanner/internal/config"
	"github.com/abdullahzahoor404/telco-scanner/internal/extractor"
	"github.com/abdullahzahoor404/telco-scanner/internal/fetcher"
	"github.com/abdullahzahoor404/telco-scanner/internal/inference"
	"github.com/abdullahzahoor404/telco-scanner/internal/repository/sqlite"
	"github.com/abdullahzahoor404/telco-scanner/internal/services/watcher"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init repository: %v", err)
	}
	defer repo.Close()

	strategy := buildStrategy(ctx, logger, cfg)
	watch := watcher.NewWatcher(logger, fetcher.NewFetcher(logger), strategy, repo, cfg.Sources)

	scanBot, err := bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout, repo, watch)
	if err != nil {
		log.Fatalf("Failed to init bot: %v", err)
	}

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the bot in a goroutine to allow main to listen for signals.
	go scanBot.Start()

	// One scan on startup; further scans are triggered with /check.
	rows, err := watch.Scan(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Initial scan failed", "error", err)
	} else if err = scanBot.Notify(ctx, rows); err != nil {
		logger.ErrorContext(ctx, "Failed to notify subscribers", "error", err)
	}

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Stop the bot gracefully.
	scanBot.Stop()

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// buildStrategy assembles the extraction strategy: the pattern engine
// alone, or the pattern engine with an inference fallback when an API
// key is configured.
func buildStrategy(ctx context.Context, logger *slog.Logger, cfg *config.Config) extractor.Strategy {
	pattern := extractor.NewPattern()
	if !cfg.Inference.Enabled {
		return pattern
	}

	client := inference.NewClient(cfg.Inference.APIKey, cfg.Inference.BaseURL, cfg.Inference.Timeout)
	model := resolveModel(ctx, logger, client, cfg.Inference.Models)
	retry := extractor.RetryPolicy{
		MaxAttempts: cfg.Inference.MaxAttempts,
		Delay:       cfg.Inference.RetryDelay,
		Sleep:       time.Sleep,
	}
	infer := extractor.NewInference(logger, client, model, retry)

	return extractor.NewChain(logger, pattern, infer)
}

// resolveModel matches the configured preference list against the
// models the endpoint actually serves.
func resolveModel(ctx context.Context, logger *slog.Logger, client *inference.Client, preferred []string) string {
	fallback := ""
	if len(preferred) > 0 {
		fallback = preferred[0]
	}

	available, err := client.ListModels(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to query available models, using first preference",
			"fallback", fallback, "error", err)
		return fallback
	}

	model, found := inference.ResolveModel(preferred, available)
	if !found {
		logger.WarnContext(ctx, "No preferred model available, using first preference",
			"preferred", preferred, "fallback", fallback)
		return fallback
	}

	return model
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
