// Package internal provides the main application initialization and runtime logic.
package internal

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/mosgid/gid/internal/api"
	"github.com/mosgid/gid/internal/catalog"
	"github.com/mosgid/gid/internal/events"
	"github.com/mosgid/gid/internal/ledger"
	"github.com/mosgid/gid/internal/models"
	"github.com/mosgid/gid/internal/sse"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("dataset_path", cfg.Catalog.DatasetPath),
		slog.String("ledger_backend", cfg.Ledger.Backend),
		slog.String("ledger_path", cfg.Ledger.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Load the catalog. A bad dataset degrades to an empty catalog with a
	// visible error; the service still comes up.
	engine := catalog.NewEngine()
	records, err := loadDataset(cfg)
	if err != nil {
		logger.Error("dataset load failed, starting with empty catalog", slog.String("error", err.Error()))
	} else {
		engine.Load(records)
		logger.Info("catalog loaded", slog.Int("count", engine.Len()))
	}

	// Event catalog: no live source is wired in this build.
	src := app.eventSource
	if src == nil {
		src = events.NullSource{}
	}
	eventCatalog, err := events.NewCatalog(src)
	if err != nil {
		logger.Warn("event source failed, starting empty", slog.String("error", err.Error()))
	}

	// Open the booking ledger on the configured store.
	store, closeStore, err := openLedgerStore(cfg)
	if err != nil {
		return fmt.Errorf("init ledger store: %w", err)
	}
	defer closeStore()
	led := ledger.Open(store, logger)
	logger.Info("ledger loaded", slog.Int("bookings", led.Len()))

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Build API handler and router.
	h := api.NewHandler(engine, eventCatalog, led, broker)
	apiRouter := api.NewRouter(h, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// The consumer is a browser single-page app, possibly served from
	// another origin.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the dataset file for edits when one is configured.
	if cfg.Catalog.Watch && cfg.Catalog.DatasetPath != "" {
		g.Go(func() error {
			return catalog.Watch(gCtx, engine, cfg.Catalog.DatasetPath, logger, func(count int) {
				broker.PublishCatalogReloaded(count)
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// loadDataset reads the configured dataset file, or the embedded dataset
// when no path is set.
func loadDataset(cfg *Config) ([]models.Restaurant, error) {
	if cfg.Catalog.DatasetPath == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFile(cfg.Catalog.DatasetPath)
}

// openLedgerStore builds the configured blob store. The returned closer is a
// no-op for the file backend.
func openLedgerStore(cfg *Config) (ledger.Store, func(), error) {
	switch cfg.Ledger.Backend {
	case LedgerBackendSQLite:
		s, err := ledger.OpenSQLite(cfg.Ledger.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		s, err := ledger.NewFileStore(cfg.Ledger.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
