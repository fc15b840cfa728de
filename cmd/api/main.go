// Package main is the entry point for the TorqueHub API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/torquehub/internal/config"
	"github.com/pkordes/torquehub/internal/handler"
	"github.com/pkordes/torquehub/internal/middleware"
	"github.com/pkordes/torquehub/internal/service"
	"github.com/pkordes/torquehub/internal/storage"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Default logger; the configured one needs cfg.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// A medium that fails to open degrades to "storage unavailable": the
	// catalogs run on seed data and nothing is persisted.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	medium, err := storage.Open(startCtx, cfg.StorageDriver, cfg.StorageLocation())
	cancelStart()
	if err != nil {
		slog.Warn("storage unavailable, running on seed data",
			"driver", cfg.StorageDriver, "error", err)
		medium = nil
	} else {
		slog.Info("storage ready", "driver", cfg.StorageDriver, "available", medium != nil)
	}
	slots := storage.NewSlots(medium, logger)

	// --- Catalogs ---------------------------------------------------------
	builds := service.NewBuildCatalog(slots, logger)
	meetups := service.NewMeetupBoard(slots, logger)
	builds.Hydrate(context.Background())
	meetups.Hydrate(context.Background())

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", handler.NewServer(builds, meetups, logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before closing the storage medium.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	exitCode := 0
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		exitCode = 1
	}
	cancel()

	if medium != nil {
		if err := medium.Close(); err != nil {
			slog.Error("close storage", "error", err)
			exitCode = 1
		}
	}
	slog.Info("server stopped")
	os.Exit(exitCode)
}
