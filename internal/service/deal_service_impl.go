package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/needs"
	"github.com/alexanderramin/dealdesk/internal/pipeline"
	"github.com/alexanderramin/dealdesk/internal/reminder"
	"github.com/alexanderramin/dealdesk/internal/store"
	"github.com/google/uuid"
)

type dealService struct {
	store    *store.Store
	observer UseCaseObserver
	now      func() time.Time
}

// NewDealService creates the deal use-case layer over a seeded store.
func NewDealService(s *store.Store, observers ...UseCaseObserver) DealService {
	return &dealService{
		store:    s,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *dealService) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}

func (s *dealService) Create(ctx context.Context, input CreateDealInput) (deal domain.Deal, err error) {
	start := s.now()
	defer func() { s.observe(ctx, "deal_create", start, err, map[string]any{"stage": string(deal.Stage)}) }()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Deal{}, domain.ErrEmptyName
	}

	dealType := input.Type
	if dealType == "" {
		dealType = domain.TypePurchase
	} else if _, err = domain.ParseDealType(string(dealType)); err != nil {
		return domain.Deal{}, err
	}

	stage := input.Stage
	if stage == "" {
		stage = domain.StageActiveLead
	} else if _, err = domain.ParseStage(string(stage)); err != nil {
		return domain.Deal{}, err
	}

	now := s.now()
	deal = domain.Deal{
		ID:             uuid.New().String(),
		Name:           name,
		Type:           dealType,
		Referral:       input.Referral,
		Stage:          stage,
		CreatedAt:      now,
		StageEnteredAt: now,
		Notes:          input.Notes,
	}
	s.store.Add(ctx, deal)
	return deal, nil
}

func (s *dealService) Get(_ context.Context, id string) (domain.Deal, error) {
	return s.store.Get(id)
}

func (s *dealService) List(context.Context) []domain.Deal {
	return s.store.List()
}

func (s *dealService) Update(ctx context.Context, id string, input UpdateDealInput) (deal domain.Deal, err error) {
	start := s.now()
	defer func() { s.observe(ctx, "deal_update", start, err, map[string]any{"deal_id": id}) }()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Deal{}, domain.ErrEmptyName
	}
	deal, err = s.store.Get(id)
	if err != nil {
		return domain.Deal{}, err
	}

	deal.Name = name
	if input.Type != "" {
		if _, err = domain.ParseDealType(string(input.Type)); err != nil {
			return domain.Deal{}, err
		}
		deal.Type = input.Type
	}
	deal.Referral = input.Referral
	deal.Notes = input.Notes

	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) Delete(ctx context.Context, id string) {
	start := s.now()
	s.store.Delete(ctx, id)
	s.observe(ctx, "deal_delete", start, nil, map[string]any{"deal_id": id})
}

func (s *dealService) MoveStage(ctx context.Context, id string, stage domain.Stage) (deal domain.Deal, err error) {
	start := s.now()
	defer func() {
		s.observe(ctx, "deal_move_stage", start, err, map[string]any{"deal_id": id, "stage": string(stage)})
	}()

	deal, err = s.store.Get(id)
	if err != nil {
		return domain.Deal{}, err
	}
	deal, err = pipeline.MoveStage(deal, stage, s.now())
	if err != nil {
		return domain.Deal{}, err
	}
	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) MarkFollowedUp(ctx context.Context, id string) (deal domain.Deal, err error) {
	start := s.now()
	defer func() { s.observe(ctx, "deal_followed_up", start, err, map[string]any{"deal_id": id}) }()

	deal, err = s.store.Get(id)
	if err != nil {
		return domain.Deal{}, err
	}
	deal = pipeline.MarkFollowedUp(deal, s.now())
	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) AddNeed(ctx context.Context, dealID, text string) (deal domain.Deal, err error) {
	deal, err = s.store.Get(dealID)
	if err != nil {
		return domain.Deal{}, err
	}
	deal, err = needs.AddItem(deal, text, s.now())
	if err != nil {
		return domain.Deal{}, err
	}
	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) ToggleNeed(ctx context.Context, dealID, itemID string) (deal domain.Deal, err error) {
	deal, err = s.store.Get(dealID)
	if err != nil {
		return domain.Deal{}, err
	}
	deal, err = needs.ToggleItem(deal, itemID)
	if err != nil {
		return domain.Deal{}, err
	}
	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) RemoveNeed(ctx context.Context, dealID, itemID string) (deal domain.Deal, err error) {
	deal, err = s.store.Get(dealID)
	if err != nil {
		return domain.Deal{}, err
	}
	deal = needs.RemoveItem(deal, itemID)
	if err = s.store.Update(ctx, deal); err != nil {
		return domain.Deal{}, err
	}
	return deal, nil
}

func (s *dealService) DueToday(context.Context) []domain.Deal {
	return s.store.DueToday(s.now())
}

func (s *dealService) OpenNeeds(context.Context) []domain.Deal {
	return s.store.OpenNeedsDeals()
}

func (s *dealService) Counts(context.Context) map[domain.Stage]int {
	return s.store.CountsByStage()
}

func (s *dealService) FilterByStage(_ context.Context, stage domain.Stage, query string) []domain.Deal {
	return s.store.FilterByStage(stage, query)
}

func (s *dealService) NextDue(deal domain.Deal) *time.Time {
	return reminder.NextDue(deal, s.now())
}
