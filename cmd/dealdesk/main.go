package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dealdesk/internal/cli"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/alexanderramin/dealdesk/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dealdesk/dealdesk.db
	dbPath := os.Getenv("DEALDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dealdesk", "dealdesk.db")
	}

	// Open database
	database, err := storage.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kv := storage.NewSQLiteKV(database)
	persister := storage.NewSnapshotPersister(kv, os.Getenv("DEALDESK_SNAPSHOT_KEY"))

	// Optional debug logging to stderr
	var logger *slog.Logger
	var observers []service.UseCaseObserver
	if os.Getenv("DEALDESK_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Load the saved collection, aging stale leads before first use.
	deals, err := service.Open(context.Background(), persister, logger)
	if err != nil {
		return err
	}

	app := &cli.App{
		Deals: service.NewDealService(deals, observers...),
	}

	// Detect interactive terminal for forms and the board TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
