package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vemmiehq/vemmie-storefront/internal/catalog"
	"github.com/vemmiehq/vemmie-storefront/internal/config"
	"github.com/vemmiehq/vemmie-storefront/internal/handlers"
	"github.com/vemmiehq/vemmie-storefront/internal/routes"
	"github.com/vemmiehq/vemmie-storefront/internal/shopify"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("no .env file found, relying on system environment variables")
	}

	mainCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Get(logger)

	// --- Shopify Storefront Client ---
	// Construction fails fast on missing credentials, before any network call.
	client, err := shopify.New(shopify.Config{
		StoreDomain:  cfg.Shopify.StoreDomain,
		PrivateToken: cfg.Shopify.PrivateToken,
		APIVersion:   cfg.Shopify.APIVersion,
		Revalidate:   cfg.Revalidate(),
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize shopify client")
	}

	// --- Collection Classifier ---
	var classifier catalog.Classifier
	switch cfg.Catalog.Strategy {
	case "title":
		classifier = catalog.NewTitleClassifier(catalog.DefaultCollections)
	case "tags":
		classifier = catalog.TagClassifier{}
	default:
		logger.Fatal().Str("strategy", cfg.Catalog.Strategy).Msg("unknown catalog strategy")
	}
	logger.Info().Str("strategy", cfg.Catalog.Strategy).Msg("collection classifier selected")

	// --- Application Setup ---
	app := &handlers.Handlers{
		Catalog:     client,
		Classifier:  classifier,
		StoreDomain: cfg.Shopify.StoreDomain,
		Logger:      logger,
	}

	router := routes.SetupRouter(app, cfg, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting vemmie storefront API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-mainCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
