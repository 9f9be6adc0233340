// Package store holds the authoritative in-memory deal collection and
// its derived views. The tool is single-user with exactly one logical
// writer, so the collection is unsynchronized by design; durability is
// best-effort via full-snapshot saves after each mutation.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/reminder"
)

// Persister is the persistence collaborator contract: load the last
// saved snapshot (ok=false when none exists) and save a full snapshot.
type Persister interface {
	Load(ctx context.Context) (deals []domain.Deal, ok bool, err error)
	Save(ctx context.Context, deals []domain.Deal) error
}

// Store owns the deal collection. Mutations commit in memory first and
// then issue a best-effort save; a failed save is logged and swallowed,
// leaving the in-memory state authoritative for the session.
type Store struct {
	deals     []domain.Deal
	persister Persister
	logger    *slog.Logger
}

// New creates an empty store backed by the given persister. A nil logger
// discards save failures silently.
func New(persister Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{persister: persister, logger: logger}
}

// Seed replaces the collection without persisting, for load-time setup.
func (s *Store) Seed(deals []domain.Deal) {
	s.deals = cloneAll(deals)
}

// Flush forces a snapshot save of the current collection.
func (s *Store) Flush(ctx context.Context) {
	s.save(ctx)
}

// Add appends a deal to the collection.
func (s *Store) Add(ctx context.Context, deal domain.Deal) {
	s.deals = append(s.deals, deal.Clone())
	s.save(ctx)
}

// Update replaces the deal with a matching ID.
func (s *Store) Update(ctx context.Context, deal domain.Deal) error {
	for i := range s.deals {
		if s.deals[i].ID == deal.ID {
			s.deals[i] = deal.Clone()
			s.save(ctx)
			return nil
		}
	}
	return fmt.Errorf("deal %q: %w", deal.ID, domain.ErrNotFound)
}

// Delete removes the deal with the given ID. Deleting an absent deal is
// a no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	for i := range s.deals {
		if s.deals[i].ID == id {
			s.deals = append(s.deals[:i], s.deals[i+1:]...)
			s.save(ctx)
			return
		}
	}
}

// Get returns a copy of the deal with the given ID.
func (s *Store) Get(id string) (domain.Deal, error) {
	for i := range s.deals {
		if s.deals[i].ID == id {
			return s.deals[i].Clone(), nil
		}
	}
	return domain.Deal{}, fmt.Errorf("deal %q: %w", id, domain.ErrNotFound)
}

// List returns a copy of the whole collection in insertion order.
func (s *Store) List() []domain.Deal {
	return cloneAll(s.deals)
}

// Len returns the number of deals in the collection.
func (s *Store) Len() int {
	return len(s.deals)
}

// DueToday returns the deals requiring follow-up on the given date, in
// insertion order.
func (s *Store) DueToday(today time.Time) []domain.Deal {
	var due []domain.Deal
	for i := range s.deals {
		if reminder.IsDueToday(s.deals[i], today) {
			due = append(due, s.deals[i].Clone())
		}
	}
	return due
}

// OpenNeedsDeals returns active deals that still have at least one
// unfinished needs item.
func (s *Store) OpenNeedsDeals() []domain.Deal {
	var open []domain.Deal
	for i := range s.deals {
		if s.deals[i].Stage == domain.StageActiveDeal && s.deals[i].OpenNeedsCount() > 0 {
			open = append(open, s.deals[i].Clone())
		}
	}
	return open
}

// FilterByStage returns the deals in a stage whose name or referral
// contains the query, case-insensitively. An empty query matches all.
// Insertion order is preserved.
func (s *Store) FilterByStage(stage domain.Stage, query string) []domain.Deal {
	q := strings.ToLower(strings.TrimSpace(query))
	var matched []domain.Deal
	for i := range s.deals {
		d := &s.deals[i]
		if d.Stage != stage {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Referral), q) {
			continue
		}
		matched = append(matched, d.Clone())
	}
	return matched
}

// CountsByStage returns the deal count per stage. Every pipeline stage
// is present in the result even when zero.
func (s *Store) CountsByStage() map[domain.Stage]int {
	counts := make(map[domain.Stage]int, len(domain.Stages))
	for _, stage := range domain.Stages {
		counts[stage] = 0
	}
	for i := range s.deals {
		counts[s.deals[i].Stage]++
	}
	return counts
}

func (s *Store) save(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.deals); err != nil {
		s.logger.Warn("snapshot save failed", "deals", len(s.deals), "error", err)
	}
}

func cloneAll(deals []domain.Deal) []domain.Deal {
	out := make([]domain.Deal, len(deals))
	for i, d := range deals {
		out[i] = d.Clone()
	}
	return out
}
