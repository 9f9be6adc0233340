package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// CreateDealInput carries the user-supplied fields for a new deal.
// Zero-value Type and Stage default to Purchase and active_lead.
type CreateDealInput struct {
	Name     string
	Type     domain.DealType
	Referral string
	Stage    domain.Stage
	Notes    string
}

// UpdateDealInput edits a deal's descriptive fields. Stage and the
// reminder anchors only change through MoveStage / MarkFollowedUp.
type UpdateDealInput struct {
	Name     string
	Type     domain.DealType
	Referral string
	Notes    string
}

type DealService interface {
	Create(ctx context.Context, input CreateDealInput) (domain.Deal, error)
	Get(ctx context.Context, id string) (domain.Deal, error)
	List(ctx context.Context) []domain.Deal
	Update(ctx context.Context, id string, input UpdateDealInput) (domain.Deal, error)
	Delete(ctx context.Context, id string)

	MoveStage(ctx context.Context, id string, stage domain.Stage) (domain.Deal, error)
	MarkFollowedUp(ctx context.Context, id string) (domain.Deal, error)

	AddNeed(ctx context.Context, dealID, text string) (domain.Deal, error)
	ToggleNeed(ctx context.Context, dealID, itemID string) (domain.Deal, error)
	RemoveNeed(ctx context.Context, dealID, itemID string) (domain.Deal, error)

	DueToday(ctx context.Context) []domain.Deal
	OpenNeeds(ctx context.Context) []domain.Deal
	Counts(ctx context.Context) map[domain.Stage]int
	FilterByStage(ctx context.Context, stage domain.Stage, query string) []domain.Deal
	NextDue(deal domain.Deal) *time.Time
}
