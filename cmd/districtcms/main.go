// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the District CMS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"districtcms/internal/cache"
	"districtcms/internal/config"
	"districtcms/internal/database"
	"districtcms/internal/handlers"
	"districtcms/internal/middleware"
	"districtcms/internal/router"
	"districtcms/internal/session"
	"districtcms/internal/storage"
	"districtcms/internal/store"
)

func main() {
	// Structured logger on stdout for the container runtime to collect.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the first admin account and the section scaffold (no-op once
	// any user exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. Outside development, session cookies
	// are Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Data stores.
	userStore := store.NewUserStore(db)
	projectStore := store.NewProjectStore(db)
	serviceStore := store.NewServiceStore(db)
	collectionStore := store.NewCollectionItemStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	clientLogoStore := store.NewClientLogoStore(db)
	statStore := store.NewStatStore(db)
	mediaStore := store.NewMediaStore(db)
	sectionStore := store.NewSectionStore(db)

	// Connect to S3-compatible object storage (optional — the app works
	// without it; uploads are disabled, pasted URLs still function).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3BucketMedia, cfg.S3BucketVideo, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"media_bucket", cfg.S3BucketMedia,
			"video_bucket", cfg.S3BucketVideo,
		)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Public list cache in Valkey, invalidated on admin mutations.
	listCache := cache.NewListCache(valkeyClient, cache.DefaultListTTL)

	// Login rate limiter: 10 attempts per minute per IP.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()

	// Handler groups.
	adminHandlers := handlers.NewAdmin(
		projectStore, serviceStore, collectionStore, testimonialStore,
		clientLogoStore, statStore, mediaStore, sectionStore, userStore,
		storageClient, listCache,
	)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	publicHandlers := handlers.NewPublic(
		projectStore, serviceStore, collectionStore, testimonialStore,
		clientLogoStore, statStore, sectionStore, listCache,
	)

	// Chi router with all middleware and routes.
	r := router.New(sessionStore, loginLimiter, adminHandlers, authHandlers, publicHandlers)

	// HTTP server with sensible timeouts. WriteTimeout accommodates the
	// 100 MB video uploads on slower office connections.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
