package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// The snapshot is a JSON array of deal records in collection order.
// Timestamps are RFC3339; LastFollowUp is a plain date because follow-ups
// are tracked at date granularity. The decoder accepts either layout in
// any field so snapshots written by older versions keep loading.

const dateLayout = "2006-01-02"

type needsItemRecord struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	AddedAt string `json:"addedAt"`
}

type dealRecord struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Referral       string            `json:"referral"`
	Stage          string            `json:"stage"`
	CreatedAt      string            `json:"createdAt"`
	StageEnteredAt string            `json:"stageEnteredAt"`
	LastFollowUp   *string           `json:"lastFollowUp"`
	NeedsList      []needsItemRecord `json:"needsList"`
	Notes          string            `json:"notes"`
}

// EncodeSnapshot serializes the full deal collection.
func EncodeSnapshot(deals []domain.Deal) ([]byte, error) {
	records := make([]dealRecord, len(deals))
	for i, d := range deals {
		rec := dealRecord{
			ID:             d.ID,
			Name:           d.Name,
			Type:           string(d.Type),
			Referral:       d.Referral,
			Stage:          string(d.Stage),
			CreatedAt:      d.CreatedAt.Format(time.RFC3339),
			StageEnteredAt: d.StageEnteredAt.Format(time.RFC3339),
			NeedsList:      make([]needsItemRecord, len(d.NeedsList)),
			Notes:          d.Notes,
		}
		if d.LastFollowUp != nil {
			followUp := d.LastFollowUp.Format(dateLayout)
			rec.LastFollowUp = &followUp
		}
		for j, item := range d.NeedsList {
			rec.NeedsList[j] = needsItemRecord{
				ID:      item.ID,
				Text:    item.Text,
				Done:    item.Done,
				AddedAt: item.AddedAt.Format(time.RFC3339),
			}
		}
		records[i] = rec
	}
	return json.Marshal(records)
}

// DecodeSnapshot deserializes a snapshot back into a deal collection.
func DecodeSnapshot(data []byte) ([]domain.Deal, error) {
	var records []dealRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}

	deals := make([]domain.Deal, len(records))
	for i, rec := range records {
		stage, err := domain.ParseStage(rec.Stage)
		if err != nil {
			return nil, fmt.Errorf("deal %q: stage %q: %w", rec.ID, rec.Stage, err)
		}
		createdAt, err := parseStamp(rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("deal %q: createdAt: %w", rec.ID, err)
		}
		enteredAt, err := parseStamp(rec.StageEnteredAt)
		if err != nil {
			return nil, fmt.Errorf("deal %q: stageEnteredAt: %w", rec.ID, err)
		}

		deal := domain.Deal{
			ID:             rec.ID,
			Name:           rec.Name,
			Type:           domain.DealType(rec.Type),
			Referral:       rec.Referral,
			Stage:          stage,
			CreatedAt:      createdAt,
			StageEnteredAt: enteredAt,
			Notes:          rec.Notes,
		}
		if rec.LastFollowUp != nil && *rec.LastFollowUp != "" {
			followUp, err := parseStamp(*rec.LastFollowUp)
			if err != nil {
				return nil, fmt.Errorf("deal %q: lastFollowUp: %w", rec.ID, err)
			}
			deal.LastFollowUp = &followUp
		}
		if len(rec.NeedsList) > 0 {
			deal.NeedsList = make([]domain.NeedsItem, len(rec.NeedsList))
			for j, item := range rec.NeedsList {
				addedAt, err := parseStamp(item.AddedAt)
				if err != nil {
					return nil, fmt.Errorf("deal %q: needs item %q: addedAt: %w", rec.ID, item.ID, err)
				}
				deal.NeedsList[j] = domain.NeedsItem{
					ID:      item.ID,
					Text:    item.Text,
					Done:    item.Done,
					AddedAt: addedAt,
				}
			}
		}
		deals[i] = deal
	}
	return deals, nil
}

// parseStamp accepts an RFC3339 timestamp or a plain date. Plain dates
// load as local midnight to keep day arithmetic on local-date granularity.
func parseStamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}
