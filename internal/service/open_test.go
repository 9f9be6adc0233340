package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPersister(t *testing.T) *storage.SnapshotPersister {
	t.Helper()
	db, err := storage.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewSnapshotPersister(storage.NewSQLiteKV(db), "")
}

func TestOpen_EmptyDatabase(t *testing.T) {
	s, err := Open(context.Background(), openTestPersister(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestOpen_AgesStaleLeadsAndSavesBack(t *testing.T) {
	ctx := context.Background()
	p := openTestPersister(t)

	staleEntered := time.Now().AddDate(0, 0, -35)
	freshEntered := time.Now().AddDate(0, 0, -5)
	require.NoError(t, p.Save(ctx, []domain.Deal{
		{
			ID:             "stale",
			Name:           "Stale Lead",
			Type:           domain.TypePurchase,
			Stage:          domain.StageActiveLead,
			CreatedAt:      staleEntered,
			StageEnteredAt: staleEntered,
		},
		{
			ID:             "fresh",
			Name:           "Fresh Lead",
			Type:           domain.TypePurchase,
			Stage:          domain.StageActiveLead,
			CreatedAt:      freshEntered,
			StageEnteredAt: freshEntered,
		},
	}))

	s, err := Open(ctx, p, nil)
	require.NoError(t, err)

	stale, err := s.Get("stale")
	require.NoError(t, err)
	assert.Equal(t, domain.StageOldLead, stale.Stage)

	fresh, err := s.Get("fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.StageActiveLead, fresh.Stage)

	// The aged collection was saved back: a second load needs no aging.
	reloaded, ok, err := p.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, reloaded, 2)
	assert.Equal(t, domain.StageOldLead, reloaded[0].Stage)
}

func TestOpen_RoundTripThroughRealStorage(t *testing.T) {
	ctx := context.Background()
	p := openTestPersister(t)

	s, err := Open(ctx, p, nil)
	require.NoError(t, err)
	svc := NewDealService(s)

	deal, err := svc.Create(ctx, CreateDealInput{Name: "Persistent", Referral: "Zillow"})
	require.NoError(t, err)
	_, err = svc.AddNeed(ctx, deal.ID, "bank statements")
	require.NoError(t, err)

	// Fresh store over the same database sees everything.
	s2, err := Open(ctx, p, nil)
	require.NoError(t, err)
	got, err := s2.Get(deal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persistent", got.Name)
	assert.Equal(t, "Zillow", got.Referral)
	require.Len(t, got.NeedsList, 1)
	assert.Equal(t, "bank statements", got.NeedsList[0].Text)
}

func TestLogUseCaseObserver_WritesEvents(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	p := openTestPersister(t)
	s, err := Open(ctx, p, nil)
	require.NoError(t, err)
	svc := NewDealService(s, NewLogUseCaseObserver(&buf))

	_, err = svc.Create(ctx, CreateDealInput{Name: "Observed"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_case=deal_create")
	assert.Contains(t, buf.String(), "success=true")

	_, err = svc.Create(ctx, CreateDealInput{Name: ""})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "success=false")
}
