package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPersister captures saves so tests can assert the snapshot
// contract without a real database.
type recordingPersister struct {
	saves   [][]domain.Deal
	saveErr error
}

func (p *recordingPersister) Load(context.Context) ([]domain.Deal, bool, error) {
	return nil, false, nil
}

func (p *recordingPersister) Save(_ context.Context, deals []domain.Deal) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	snapshot := make([]domain.Deal, len(deals))
	copy(snapshot, deals)
	p.saves = append(p.saves, snapshot)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func deal(id, name string, stage domain.Stage, entered time.Time) domain.Deal {
	return domain.Deal{
		ID:             id,
		Name:           name,
		Type:           domain.TypePurchase,
		Stage:          stage,
		CreatedAt:      entered,
		StageEnteredAt: entered,
	}
}

func TestStore_AddGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	s := New(p, nil)

	d := deal("d-1", "Smith Purchase", domain.StageActiveLead, date(2025, 1, 1))
	s.Add(ctx, d)

	got, err := s.Get("d-1")
	require.NoError(t, err)
	assert.Equal(t, "Smith Purchase", got.Name)

	got.Name = "Smith Refinance"
	require.NoError(t, s.Update(ctx, got))
	got, err = s.Get("d-1")
	require.NoError(t, err)
	assert.Equal(t, "Smith Refinance", got.Name)

	s.Delete(ctx, "d-1")
	_, err = s.Get("d-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Add, update, and delete each persisted a full snapshot.
	require.Len(t, p.saves, 3)
	assert.Empty(t, p.saves[2], "final snapshot is the emptied collection")
}

func TestStore_UpdateUnknownDealFails(t *testing.T) {
	s := New(&recordingPersister{}, nil)
	err := s.Update(context.Background(), deal("ghost", "x", domain.StageActiveLead, date(2025, 1, 1)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteAbsentIsNoOp(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, nil)
	s.Delete(context.Background(), "ghost")
	assert.Empty(t, p.saves, "no save when nothing changed")
}

func TestStore_SaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{saveErr: errors.New("disk full")}
	s := New(p, nil)

	s.Add(ctx, deal("d-1", "Smith", domain.StageActiveLead, date(2025, 1, 1)))

	got, err := s.Get("d-1")
	require.NoError(t, err, "read-after-write observes in-memory state")
	assert.Equal(t, "Smith", got.Name)
}

func TestStore_DueToday(t *testing.T) {
	ctx := context.Background()
	s := New(&recordingPersister{}, nil)

	// 2025-01-06 is a Monday: the weekly active_lead rule fires.
	monday := date(2025, 1, 6)
	s.Add(ctx, deal("lead", "Weekly Lead", domain.StageActiveLead, date(2025, 1, 1)))
	s.Add(ctx, deal("old", "Stale Old Lead", domain.StageOldLead, date(2024, 11, 1)))
	s.Add(ctx, deal("closed", "Closed", domain.StageClosedDeal, date(2024, 1, 1)))

	due := s.DueToday(monday)
	require.Len(t, due, 2)
	assert.Equal(t, "lead", due[0].ID)
	assert.Equal(t, "old", due[1].ID)
}

func TestStore_OpenNeedsDeals(t *testing.T) {
	ctx := context.Background()
	s := New(&recordingPersister{}, nil)

	withOpen := deal("d-1", "Has Open", domain.StageActiveDeal, date(2025, 1, 1))
	withOpen.NeedsList = []domain.NeedsItem{
		{ID: "n-1", Text: "W-2", Done: true},
		{ID: "n-2", Text: "bank statements", Done: false},
	}
	allDone := deal("d-2", "All Done", domain.StageActiveDeal, date(2025, 1, 1))
	allDone.NeedsList = []domain.NeedsItem{{ID: "n-3", Text: "appraisal", Done: true}}
	wrongStage := deal("d-3", "Lead With Needs", domain.StageActiveLead, date(2025, 1, 1))
	wrongStage.NeedsList = []domain.NeedsItem{{ID: "n-4", Text: "id copy", Done: false}}

	s.Add(ctx, withOpen)
	s.Add(ctx, allDone)
	s.Add(ctx, wrongStage)

	open := s.OpenNeedsDeals()
	require.Len(t, open, 1)
	assert.Equal(t, "d-1", open[0].ID)
}

func TestStore_FilterByStage(t *testing.T) {
	ctx := context.Background()
	s := New(&recordingPersister{}, nil)

	first := deal("d-1", "Alice Johnson", domain.StageActiveLead, date(2025, 1, 1))
	first.Referral = "Zillow"
	second := deal("d-2", "Bob Smith", domain.StageActiveLead, date(2025, 1, 2))
	second.Referral = "Agent referral"
	third := deal("d-3", "Carol Smith", domain.StagePreApproval, date(2025, 1, 3))

	s.Add(ctx, first)
	s.Add(ctx, second)
	s.Add(ctx, third)

	all := s.FilterByStage(domain.StageActiveLead, "")
	require.Len(t, all, 2)
	assert.Equal(t, "d-1", all[0].ID, "insertion order preserved")

	byName := s.FilterByStage(domain.StageActiveLead, "SMITH")
	require.Len(t, byName, 1)
	assert.Equal(t, "d-2", byName[0].ID)

	byReferral := s.FilterByStage(domain.StageActiveLead, "zillow")
	require.Len(t, byReferral, 1)
	assert.Equal(t, "d-1", byReferral[0].ID)

	assert.Empty(t, s.FilterByStage(domain.StageClosedDeal, ""))
}

func TestStore_CountsByStage(t *testing.T) {
	ctx := context.Background()
	s := New(&recordingPersister{}, nil)

	s.Add(ctx, deal("d-1", "A", domain.StageActiveLead, date(2025, 1, 1)))
	s.Add(ctx, deal("d-2", "B", domain.StageActiveLead, date(2025, 1, 1)))
	s.Add(ctx, deal("d-3", "C", domain.StageClosedDeal, date(2025, 1, 1)))

	counts := s.CountsByStage()
	require.Len(t, counts, len(domain.Stages), "all stages present")
	assert.Equal(t, 2, counts[domain.StageActiveLead])
	assert.Equal(t, 0, counts[domain.StageOldLead])
	assert.Equal(t, 0, counts[domain.StagePreApproval])
	assert.Equal(t, 0, counts[domain.StageActiveDeal])
	assert.Equal(t, 1, counts[domain.StageClosedDeal])
}

func TestStore_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New(&recordingPersister{}, nil)

	d := deal("d-1", "Original", domain.StageActiveLead, date(2025, 1, 1))
	d.NeedsList = []domain.NeedsItem{{ID: "n-1", Text: "W-2"}}
	s.Add(ctx, d)

	listed := s.List()
	listed[0].Name = "Mutated"
	listed[0].NeedsList[0].Text = "Mutated"

	got, err := s.Get("d-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
	assert.Equal(t, "W-2", got.NeedsList[0].Text)
}

func TestStore_SeedDoesNotPersist(t *testing.T) {
	p := &recordingPersister{}
	s := New(p, nil)

	s.Seed([]domain.Deal{deal("d-1", "Loaded", domain.StageOldLead, date(2025, 1, 1))})
	assert.Empty(t, p.saves)
	assert.Equal(t, 1, s.Len())

	s.Flush(context.Background())
	require.Len(t, p.saves, 1)
}
