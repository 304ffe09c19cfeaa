package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// PlanService manages the plan catalog.
type PlanService interface {
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error)
	GetPlanByLookupKey(ctx context.Context, lookupKey string) (*dto.PlanResponse, error)
	ListPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error)
	UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id string) error
}

type planService struct {
	ServiceParams
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{
		ServiceParams: params,
	}
}

func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan := req.ToPlan(ctx)
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.PlanRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return &dto.PlanResponse{Plan: plan}, nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error) {
	if id == "" {
		return nil, ierr.NewError("plan ID is required").
			WithHint("Please provide a valid plan ID").
			Mark(ierr.ErrValidation)
	}

	plan, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.PlanResponse{Plan: plan}, nil
}

func (s *planService) GetPlanByLookupKey(ctx context.Context, lookupKey string) (*dto.PlanResponse, error) {
	if lookupKey == "" {
		return nil, ierr.NewError("lookup key is required").
			WithHint("Please provide a valid plan lookup key").
			Mark(ierr.ErrValidation)
	}

	plan, err := s.PlanRepo.GetByLookupKey(ctx, lookupKey)
	if err != nil {
		return nil, err
	}

	return &dto.PlanResponse{Plan: plan}, nil
}

func (s *planService) ListPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error) {
	if filter == nil {
		filter = types.NewPlanFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	plans, err := s.PlanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListPlansResponse{
		Items: make([]*dto.PlanResponse, len(plans)),
		Total: len(plans),
	}
	for i, plan := range plans {
		response.Items[i] = &dto.PlanResponse{Plan: plan}
	}
	return response, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.TrialDays != nil {
		plan.TrialDays = *req.TrialDays
	}
	if req.Features != nil {
		plan.Features = req.Features
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.PlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return &dto.PlanResponse{Plan: plan}, nil
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	plan, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	// Plans with live subscribers cannot be removed.
	subs, err := s.SubRepo.List(ctx, &types.SubscriptionFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		PlanIDs:     []string{plan.ID},
		SubscriptionStatuses: []types.SubscriptionStatus{
			types.SubscriptionStatusActive,
			types.SubscriptionStatusTrialing,
		},
	})
	if err != nil {
		return err
	}
	if len(subs) > 0 {
		return ierr.NewError("plan has active subscriptions").
			WithHint("Move or cancel the plan's subscriptions first").
			WithReportableDetails(map[string]interface{}{
				"plan_id":       plan.ID,
				"subscriptions": len(subs),
			}).
			Mark(ierr.ErrValidation)
	}

	return s.PlanRepo.Delete(ctx, id)
}
