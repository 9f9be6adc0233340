package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/dealdesk/internal/pipeline"
	"github.com/alexanderramin/dealdesk/internal/store"
)

// Open loads the last saved collection, runs lead auto-aging once, and
// returns a seeded store. Auto-aging happens before any other mutation
// is accepted so due-today views never see stale leads; when it changed
// anything, the aged collection is saved straight back.
func Open(ctx context.Context, persister store.Persister, logger *slog.Logger) (*store.Store, error) {
	s := store.New(persister, logger)

	deals, ok, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deal collection: %w", err)
	}
	if !ok {
		return s, nil
	}

	aged, changed := pipeline.AutoAge(deals, time.Now())
	s.Seed(aged)
	if changed {
		s.Flush(ctx)
	}
	return s, nil
}
