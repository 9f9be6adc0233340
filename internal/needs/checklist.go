// Package needs manages a deal's borrower-requested items checklist.
// Operations return a new deal value with the updated list.
package needs

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/google/uuid"
)

// AddItem appends a new unfinished item to the deal's needs list. The
// text is trimmed; blank text is rejected.
func AddItem(deal domain.Deal, text string, now time.Time) (domain.Deal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Deal{}, domain.ErrEmptyText
	}
	out := deal.Clone()
	out.NeedsList = append(out.NeedsList, domain.NeedsItem{
		ID:      uuid.New().String(),
		Text:    trimmed,
		Done:    false,
		AddedAt: now,
	})
	return out, nil
}

// ToggleItem flips the done flag of the item with the given ID, leaving
// its position in the list unchanged.
func ToggleItem(deal domain.Deal, itemID string) (domain.Deal, error) {
	out := deal.Clone()
	for i := range out.NeedsList {
		if out.NeedsList[i].ID == itemID {
			out.NeedsList[i].Done = !out.NeedsList[i].Done
			return out, nil
		}
	}
	return domain.Deal{}, fmt.Errorf("needs item %q: %w", itemID, domain.ErrNotFound)
}

// RemoveItem deletes the item with the given ID. Removing an absent item
// is a no-op, not an error.
func RemoveItem(deal domain.Deal, itemID string) domain.Deal {
	out := deal.Clone()
	filtered := out.NeedsList[:0]
	for _, item := range out.NeedsList {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	out.NeedsList = filtered
	return out
}

// OpenItems returns the unfinished items in insertion order.
func OpenItems(deal domain.Deal) []domain.NeedsItem {
	var items []domain.NeedsItem
	for _, item := range deal.NeedsList {
		if !item.Done {
			items = append(items, item)
		}
	}
	return items
}

// CompletedItems returns the finished items in insertion order.
func CompletedItems(deal domain.Deal) []domain.NeedsItem {
	var items []domain.NeedsItem
	for _, item := range deal.NeedsList {
		if item.Done {
			items = append(items, item)
		}
	}
	return items
}

// DisplayOrder returns the checklist with open items first, then
// completed ones, each group in insertion order.
func DisplayOrder(deal domain.Deal) []domain.NeedsItem {
	return append(OpenItems(deal), CompletedItems(deal)...)
}
