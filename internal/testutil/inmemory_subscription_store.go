package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemorySubscriptionStore implements subscription.Repository
type InMemorySubscriptionStore struct {
	*InMemoryStore[*subscription.Subscription]

	mu               sync.Mutex
	updateStatusErrs map[string]error
	listExpiredErr   error
}

// NewInMemorySubscriptionStore creates a new in-memory subscription store
func NewInMemorySubscriptionStore() *InMemorySubscriptionStore {
	return &InMemorySubscriptionStore{
		InMemoryStore:    NewInMemoryStore[*subscription.Subscription](),
		updateStatusErrs: make(map[string]error),
	}
}

// FailUpdateStatus makes UpdateStatus fail for the given subscription id,
// used to exercise partial failure paths.
func (s *InMemorySubscriptionStore) FailUpdateStatus(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateStatusErrs[id] = err
}

// FailListExpired makes ListExpired fail, used to exercise the scan failure
// path of the expiry check.
func (s *InMemorySubscriptionStore) FailListExpired(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listExpiredErr = err
}

func copySubscription(sub *subscription.Subscription) *subscription.Subscription {
	if sub == nil {
		return nil
	}
	copied := *sub
	copied.Metadata = lo.Assign(map[string]string{}, sub.Metadata)
	if sub.CancelledAt != nil {
		cancelledAt := *sub.CancelledAt
		copied.CancelledAt = &cancelledAt
	}
	return &copied
}

func (s *InMemorySubscriptionStore) Create(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			WithHint("Subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, sub.ID, copySubscription(sub)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemorySubscriptionStore) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	sub, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || sub.Status == types.StatusDeleted {
		return nil, ierr.NewError("subscription not found").
			WithHint("Subscription not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySubscription(sub), nil
}

func (s *InMemorySubscriptionStore) GetCurrentByTenant(ctx context.Context, tenantID string) (*subscription.Subscription, error) {
	currentStatuses := []types.SubscriptionStatus{
		types.SubscriptionStatusActive,
		types.SubscriptionStatusTrialing,
		types.SubscriptionStatusPending,
	}

	subs, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, sub *subscription.Subscription, _ interface{}) bool {
		return sub.TenantID == tenantID &&
			sub.Status == types.StatusPublished &&
			lo.Contains(currentStatuses, sub.SubscriptionStatus)
	}, nil)

	if len(subs) == 0 {
		return nil, nil
	}
	return copySubscription(subs[0]), nil
}

func (s *InMemorySubscriptionStore) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	subs, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, sub *subscription.Subscription, f interface{}) bool {
		sf, ok := f.(*types.SubscriptionFilter)
		if !ok || sf == nil {
			return sub.Status == types.StatusPublished
		}
		if sub.Status != sf.GetStatus() {
			return false
		}
		if len(sf.TenantIDs) > 0 && !lo.Contains(sf.TenantIDs, sub.TenantID) {
			return false
		}
		if len(sf.PlanIDs) > 0 && !lo.Contains(sf.PlanIDs, sub.PlanID) {
			return false
		}
		if len(sf.SubscriptionStatuses) > 0 && !lo.Contains(sf.SubscriptionStatuses, sub.SubscriptionStatus) {
			return false
		}
		if sf.ExpiresBefore != nil && sub.ExpiresAt.After(*sf.ExpiresBefore) {
			return false
		}
		return true
	}, func(a, b *subscription.Subscription) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	return lo.Map(subs, func(sub *subscription.Subscription, _ int) *subscription.Subscription {
		return copySubscription(sub)
	}), nil
}

func (s *InMemorySubscriptionStore) ListExpired(ctx context.Context, asOf time.Time) ([]*subscription.Subscription, error) {
	s.mu.Lock()
	forced := s.listExpiredErr
	s.mu.Unlock()
	if forced != nil {
		return nil, forced
	}

	subs, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, sub *subscription.Subscription, _ interface{}) bool {
		return sub.Status == types.StatusPublished &&
			sub.SubscriptionStatus == types.SubscriptionStatusActive &&
			!sub.ExpiresAt.After(asOf)
	}, func(a, b *subscription.Subscription) bool {
		return a.ExpiresAt.Before(b.ExpiresAt)
	})

	return lo.Map(subs, func(sub *subscription.Subscription, _ int) *subscription.Subscription {
		return copySubscription(sub)
	}), nil
}

func (s *InMemorySubscriptionStore) Update(ctx context.Context, sub *subscription.Subscription) error {
	if sub == nil {
		return ierr.NewError("subscription cannot be nil").
			WithHint("Subscription cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, sub.ID, copySubscription(sub)); err != nil {
		return ierr.WithError(err).
			WithHint("Subscription not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemorySubscriptionStore) UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) error {
	s.mu.Lock()
	forced := s.updateStatusErrs[id]
	s.mu.Unlock()
	if forced != nil {
		return forced
	}

	sub, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	sub.SubscriptionStatus = status
	return s.Update(ctx, sub)
}
