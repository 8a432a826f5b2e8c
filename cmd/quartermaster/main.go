package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/Quartermaster/internal/api"
	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/config"
	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/passion"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scanner"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Definitions
	provider, err := defs.Load(cfg.Defs.Dir)
	if err != nil {
		logger.Error("failed to load definitions", "error", err)
		os.Exit(1)
	}
	logger.Info("definitions loaded", "stats", len(provider.Stats()), "roles", len(provider.Roles()))

	// Database
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Passion provider
	var passions passion.Provider
	switch cfg.Passion.Provider {
	case "external":
		ext := passion.NewExternalProvider(cfg.Passion.URL)
		if err := ext.Fetch(ctx); err != nil {
			logger.Error("failed to fetch external passion ladder", "error", err)
			os.Exit(1)
		}
		passions = ext
		logger.Info("external passion provider ready", "levels", len(ext.Levels()))
	default:
		passions = passion.NewNativeProvider()
	}

	// Scoring engine
	engine, err := scoring.NewEngine(provider, logger)
	if err != nil {
		logger.Error("failed to build scoring engine", "error", err)
		os.Exit(1)
	}
	logger.Info("scoring engine ready", "dimensions", engine.Catalog.Size())

	// Restore persisted rules over the seeded defaults
	records, err := db.ListRules(ctx)
	if err != nil {
		logger.Error("failed to load persisted rules", "error", err)
		os.Exit(1)
	}
	for _, rec := range records {
		engine.Rules.Restore(scoring.RuleDocument{RoleID: rec.RoleID, Weights: rec.Weights})
	}
	logger.Info("rules restored", "count", len(records))

	// Colony feed (optional)
	feed := colony.NewFeed(logger)
	var colonyClient colony.Client
	if cfg.Colony.URL != "" {
		cc, err := colony.NewNATSClient(ctx, cfg.Colony.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to colony bus, running without live feed", "error", err)
		} else {
			colonyClient = cc
			defer cc.Close()
			if err := feed.Attach(cc); err != nil {
				logger.Error("failed to subscribe to colony subjects", "error", err)
				os.Exit(1)
			}
			logger.Info("connected to colony bus")
		}
	}

	// Scanner
	if cfg.Scan.Enabled {
		sc := scanner.New(feed, engine, colonyClient, cfg, logger)
		sc.Start(ctx)
		defer sc.Stop()
		logger.Info("scanner started", "interval", cfg.ScanInterval())
	}

	// API server
	router := api.NewRouter(db, feed, engine, provider, passions, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
