package pipeline

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/reminder"
)

// LeadAgingDays is the number of days an active lead may sit in its stage
// before it is automatically demoted to old_lead.
const LeadAgingDays = 30

// AutoAge demotes every active lead that has sat untouched for
// LeadAgingDays or more to old_lead, resetting its stage clock to today.
// Returns the updated collection and whether anything changed so the
// caller can decide whether to persist.
//
// Running it twice on the same day is a no-op the second time: the first
// run already advanced StageEnteredAt to today.
func AutoAge(deals []domain.Deal, today time.Time) ([]domain.Deal, bool) {
	changed := false
	out := make([]domain.Deal, len(deals))
	for i, d := range deals {
		anchor := d.StageEnteredAt
		if anchor.IsZero() {
			anchor = d.CreatedAt
		}
		if d.Stage == domain.StageActiveLead && reminder.DaysBetween(anchor, today) >= LeadAgingDays {
			aged, err := MoveStage(d, domain.StageOldLead, reminder.DateOf(today))
			if err != nil {
				// old_lead is always a valid stage; keep the deal as-is
				// rather than dropping it if that ever changes.
				out[i] = d.Clone()
				continue
			}
			out[i] = aged
			changed = true
			continue
		}
		out[i] = d.Clone()
	}
	return out, changed
}
