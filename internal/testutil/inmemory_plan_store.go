package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/plan"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryPlanStore implements plan.Repository
type InMemoryPlanStore struct {
	*InMemoryStore[*plan.Plan]
}

// NewInMemoryPlanStore creates a new in-memory plan store
func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{
		InMemoryStore: NewInMemoryStore[*plan.Plan](),
	}
}

func copyPlan(p *plan.Plan) *plan.Plan {
	if p == nil {
		return nil
	}
	copied := *p
	if p.Features != nil {
		copied.Features = lo.Assign(map[string]interface{}{}, p.Features)
	}
	return &copied
}

func (s *InMemoryPlanStore) Create(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, p.ID, copyPlan(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create plan").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryPlanStore) Get(ctx context.Context, id string) (*plan.Plan, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusDeleted {
		return nil, ierr.NewError("plan not found").
			WithHint("Plan not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPlan(p), nil
}

func (s *InMemoryPlanStore) GetByLookupKey(ctx context.Context, lookupKey string) (*plan.Plan, error) {
	plans, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, p *plan.Plan, _ interface{}) bool {
		return p.LookupKey == lookupKey && p.Status == types.StatusPublished
	}, nil)

	if len(plans) == 0 {
		return nil, ierr.NewError("plan not found").
			WithHint("No plan registered for this lookup key").
			WithReportableDetails(map[string]interface{}{
				"lookup_key": lookupKey,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPlan(plans[0]), nil
}

func (s *InMemoryPlanStore) List(ctx context.Context, filter *types.PlanFilter) ([]*plan.Plan, error) {
	plans, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, p *plan.Plan, f interface{}) bool {
		pf, ok := f.(*types.PlanFilter)
		if !ok || pf == nil {
			return p.Status == types.StatusPublished
		}
		if p.Status != pf.GetStatus() {
			return false
		}
		if len(pf.PlanIDs) > 0 && !lo.Contains(pf.PlanIDs, p.ID) {
			return false
		}
		if len(pf.LookupKeys) > 0 && !lo.Contains(pf.LookupKeys, p.LookupKey) {
			return false
		}
		return true
	}, func(a, b *plan.Plan) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	return lo.Map(plans, func(p *plan.Plan, _ int) *plan.Plan {
		return copyPlan(p)
	}), nil
}

func (s *InMemoryPlanStore) Update(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, p.ID, copyPlan(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Plan not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryPlanStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Status = types.StatusDeleted
	return s.Update(ctx, p)
}
