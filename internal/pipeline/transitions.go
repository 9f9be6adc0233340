// Package pipeline holds the validated stage mutations. Every function
// returns a new deal value; callers commit the result to the store.
package pipeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/reminder"
)

// MoveStage returns a copy of the deal placed in newStage with its stage
// clock reset to now. This is the only path that changes a deal's stage.
// Moving to the current stage is allowed and still resets StageEnteredAt.
func MoveStage(deal domain.Deal, newStage domain.Stage, now time.Time) (domain.Deal, error) {
	if !domain.ValidStages[newStage] {
		return domain.Deal{}, fmt.Errorf("move to %q: %w", newStage, domain.ErrInvalidStage)
	}
	out := deal.Clone()
	out.Stage = newStage
	out.StageEnteredAt = now
	return out, nil
}

// MarkFollowedUp records a completed follow-up, resetting the interval
// reminder anchor without touching the stage or its entry time.
func MarkFollowedUp(deal domain.Deal, today time.Time) domain.Deal {
	out := deal.Clone()
	followedUp := reminder.DateOf(today)
	out.LastFollowUp = &followedUp
	return out
}
