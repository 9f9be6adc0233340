// Package reminder decides when a deal is due for follow-up. All queries
// are pure functions of the deal's stage, its anchor dates, and the
// caller-supplied current date.
package reminder

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// Anchor returns the reference date an interval rule counts elapsed days
// from: last follow-up first, then stage entry, then creation.
func Anchor(deal domain.Deal) time.Time {
	if deal.LastFollowUp != nil {
		return *deal.LastFollowUp
	}
	if !deal.StageEnteredAt.IsZero() {
		return deal.StageEnteredAt
	}
	return deal.CreatedAt
}

// IsDueToday reports whether the deal requires a follow-up on the given
// date per its stage's rule. Weekly rules match on weekday alone and
// ignore the follow-up anchor.
func IsDueToday(deal domain.Deal, today time.Time) bool {
	rule := RuleForStage(deal.Stage)
	switch rule.Kind {
	case KindWeekly:
		for _, d := range rule.DaysOfWeek {
			if today.Weekday() == d {
				return true
			}
		}
		return false
	case KindInterval:
		return DaysBetween(Anchor(deal), today) >= rule.IntervalDays
	default:
		return false
	}
}

// NextDue returns the next follow-up date for the deal, or nil when its
// stage has no scheduled follow-up. For weekly rules the result is always
// 1-7 days ahead: a weekday matching today wraps to next week, mirroring
// the dashboard's "done for today, see you next <day>" reading.
func NextDue(deal domain.Deal, today time.Time) *time.Time {
	rule := RuleForStage(deal.Stage)
	switch rule.Kind {
	case KindWeekly:
		if len(rule.DaysOfWeek) == 0 {
			return nil
		}
		minOffset := 8
		for _, d := range rule.DaysOfWeek {
			offset := int(d) - int(today.Weekday())
			if offset <= 0 {
				offset += 7
			}
			if offset < minOffset {
				minOffset = offset
			}
		}
		next := DateOf(today).AddDate(0, 0, minOffset)
		return &next
	case KindInterval:
		next := DateOf(Anchor(deal)).AddDate(0, 0, rule.IntervalDays)
		return &next
	default:
		return nil
	}
}
