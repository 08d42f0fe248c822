// Package main provides the TravelPal HTTP API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travelpal/travelpal/internal/auth"
	"github.com/travelpal/travelpal/internal/concierge"
	"github.com/travelpal/travelpal/internal/config"
	"github.com/travelpal/travelpal/internal/dataset"
	"github.com/travelpal/travelpal/internal/geo"
	"github.com/travelpal/travelpal/internal/llm"
	"github.com/travelpal/travelpal/internal/metrics"
	"github.com/travelpal/travelpal/internal/server"
	"github.com/travelpal/travelpal/internal/store"
)

func main() {
	cfg := config.Load()

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("failed to close log file", "error", err)
		}
	}()
	slog.SetDefault(logger)

	slog.Info("starting travelpal-server", "port", cfg.Port, "provider", cfg.LLMProvider)

	collector := metrics.NewCollector()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dbClient, err := store.NewClient(ctx, store.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase}, collector, logger)
	if err != nil {
		cancel()
		slog.Error("failed to connect to credential store", "error", err)
		os.Exit(1)
	}
	if err := dbClient.EnsureIndexes(ctx); err != nil {
		cancel()
		slog.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}
	cancel()
	defer func() {
		if err := dbClient.Close(context.Background()); err != nil {
			slog.Error("failed to close credential store", "error", err)
		}
	}()

	model, err := llm.NewModel(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to create chat model", "error", err)
		os.Exit(1)
	}
	slog.Info("chat model ready", "provider", cfg.LLMProvider, "model", model.Model())

	geocoder := geo.NewNominatimClient(cfg.NominatimURL, cfg.HTTPTimeout)
	hotels := geo.NewOverpassClient(cfg.OverpassURL, cfg.HTTPTimeout)
	data := dataset.MustLoad()

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(dbClient.Users(), tokens, logger)
	conciergeSvc := concierge.NewService(model, geocoder, hotels, data, collector, logger)

	srv := server.New(authSvc, tokens, conciergeSvc, hotels, collector, logger, server.Options{
		AllowedOrigin: cfg.AllowedOrigin,
		DevMode:       cfg.DevMode,
		RequireAuth:   cfg.RequireAuth,
	})

	go func() {
		if err := srv.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("server running", "url", "http://localhost:"+cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
