package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"health-portal-server/internal/config"
	"health-portal-server/internal/fixtures"
	"health-portal-server/internal/logs"
	"health-portal-server/internal/middleware"
	"health-portal-server/internal/models"
	"health-portal-server/internal/routes"
	"health-portal-server/internal/session"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := logs.New(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Error("failed to load fixtures", "source", cfg.FixtureSource, "error", err)
		os.Exit(1)
	}

	store := session.NewStore(catalog, session.Options{
		TTL:          cfg.SessionTTL,
		RefreshDelay: cfg.RefreshDelay,
		Logger:       logger,
	})
	go store.RunJanitor(ctx, time.Minute)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, store, cfg)
	routes.WarnUnroutableLinks(router, catalog, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	logger.Info("server running", "port", cfg.Port, "fixtures", cfg.FixtureSource)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// loadCatalog returns the fixture catalog from the configured source. The
// MySQL source is seeded from the compiled-in catalog on first use.
func loadCatalog(ctx context.Context, cfg *config.Config) (*fixtures.Catalog, error) {
	if cfg.FixtureSource != config.FixtureSourceMySQL {
		return fixtures.StaticSource{}.Load(ctx)
	}

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	src := fixtures.NewGormSource(db)
	if err := src.Seed(ctx, fixtures.Static()); err != nil {
		return nil, err
	}
	return src.Load(ctx)
}
