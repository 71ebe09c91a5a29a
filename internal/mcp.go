package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mosgid/gid/internal/catalog"
	"github.com/mosgid/gid/internal/ledger"
	"github.com/mosgid/gid/internal/mcpserver"
)

// RunMCP serves the guide tools over MCP stdio. Logs go to stderr so stdout
// stays clean for the protocol.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	engine := catalog.NewEngine()
	records, err := loadDataset(cfg)
	if err != nil {
		logger.Error("dataset load failed, starting with empty catalog", slog.String("error", err.Error()))
	} else {
		engine.Load(records)
	}

	store, closeStore, err := openLedgerStore(cfg)
	if err != nil {
		return fmt.Errorf("init ledger store: %w", err)
	}
	defer closeStore()
	led := ledger.Open(store, logger)

	return mcpserver.New(engine, led).ServeStdio()
}
