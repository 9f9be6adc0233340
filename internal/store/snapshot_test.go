package store

import (
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCollection() []domain.Deal {
	created := time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
	entered := time.Date(2025, 1, 15, 14, 0, 0, 0, time.Local)
	followUp := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	return []domain.Deal{
		{
			ID:             "d-1",
			Name:           "Smith Purchase",
			Type:           domain.TypePurchase,
			Referral:       "Zillow",
			Stage:          domain.StagePreApproval,
			CreatedAt:      created,
			StageEnteredAt: entered,
			LastFollowUp:   &followUp,
			Notes:          "prefers evening calls",
			NeedsList: []domain.NeedsItem{
				{ID: "n-1", Text: "2023 W-2", Done: false, AddedAt: entered},
				{ID: "n-2", Text: "bank statements", Done: true, AddedAt: entered},
			},
		},
		{
			ID:             "d-2",
			Name:           "Jones Refinance",
			Type:           domain.TypeRefinance,
			Stage:          domain.StageActiveLead,
			CreatedAt:      created,
			StageEnteredAt: created,
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleCollection()

	data, err := EncodeSnapshot(original)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	for i, want := range original {
		got := decoded[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Referral, got.Referral)
		assert.Equal(t, want.Stage, got.Stage)
		assert.Equal(t, want.Notes, got.Notes)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt")
		assert.True(t, want.StageEnteredAt.Equal(got.StageEnteredAt), "stageEnteredAt")

		if want.LastFollowUp == nil {
			assert.Nil(t, got.LastFollowUp)
		} else {
			require.NotNil(t, got.LastFollowUp)
			// Follow-ups persist at date granularity.
			assert.True(t, got.LastFollowUp.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)))
		}

		require.Len(t, got.NeedsList, len(want.NeedsList))
		for j, wantItem := range want.NeedsList {
			gotItem := got.NeedsList[j]
			assert.Equal(t, wantItem.ID, gotItem.ID)
			assert.Equal(t, wantItem.Text, gotItem.Text)
			assert.Equal(t, wantItem.Done, gotItem.Done)
			assert.True(t, wantItem.AddedAt.Equal(gotItem.AddedAt))
		}
	}
}

func TestSnapshotRoundTripTwice_Stable(t *testing.T) {
	first, err := EncodeSnapshot(sampleCollection())
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(first)
	require.NoError(t, err)

	second, err := EncodeSnapshot(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestDecodeSnapshot_AcceptsDateOnlyTimestamps(t *testing.T) {
	// Older snapshots stored stageEnteredAt as a plain date after
	// auto-aging rewrote it.
	data := []byte(`[{
		"id": "d-1",
		"name": "Legacy Deal",
		"type": "Purchase",
		"referral": "",
		"stage": "old_lead",
		"createdAt": "2025-01-01",
		"stageEnteredAt": "2025-02-05",
		"lastFollowUp": null,
		"needsList": [],
		"notes": ""
	}]`)

	deals, err := DecodeSnapshot(data)
	require.NoError(t, err)
	require.Len(t, deals, 1)

	assert.Equal(t, domain.StageOldLead, deals[0].Stage)
	assert.True(t, deals[0].StageEnteredAt.Equal(time.Date(2025, 2, 5, 0, 0, 0, 0, time.Local)))
	assert.Nil(t, deals[0].LastFollowUp)
	assert.Empty(t, deals[0].NeedsList)
}

func TestDecodeSnapshot_RejectsUnknownStage(t *testing.T) {
	data := []byte(`[{
		"id": "d-1",
		"name": "Bad Stage",
		"type": "Purchase",
		"stage": "escrow",
		"createdAt": "2025-01-01",
		"stageEnteredAt": "2025-01-01"
	}]`)

	_, err := DecodeSnapshot(data)
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
}

func TestDecodeSnapshot_RejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestEncodeSnapshot_EmptyCollection(t *testing.T) {
	data, err := EncodeSnapshot(nil)
	require.NoError(t, err)

	deals, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, deals)
}
