package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snack-depot/internal/auth"
	"snack-depot/internal/config"
	"snack-depot/internal/database"
	"snack-depot/internal/handler"
	"snack-depot/internal/repository"
	"snack-depot/internal/router"
	"snack-depot/internal/seed"
	"snack-depot/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting snack-depot API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool. The pool is the one shared
	// store handle for the whole process: opened here, closed on shutdown.
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Initialize repositories
	foodItemRepo := repository.NewFoodItemRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the catalog if configured
	if cfg.Seed.Enabled {
		fileLoader := seed.NewFileLoader(logger)
		var loader seed.Loader = fileLoader

		if cfg.Seed.S3Enabled {
			s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 seed loader, falling back to local file system only")
			} else {
				loader = seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3Prefix, logger)
			}
		}

		items, err := loader.Load(ctx, cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("failed to load seed catalog: %w", err)
		}

		created, err := seed.NewSeeder(foodItemRepo, logger).Seed(ctx, items)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info().Int("items_created", created).Msg("catalog seeding complete")
	}

	// Initialize the admin gate and services
	gate := auth.NewGate(cfg.Auth.AdminSecret, logger)
	catalogService := service.NewCatalogService(foodItemRepo, gate, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(catalogHandler, orderHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
