package testutil

import (
	"context"
	"sync"

	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryTenantStore implements tenant.Repository
type InMemoryTenantStore struct {
	*InMemoryStore[*tenant.Tenant]

	mu             sync.Mutex
	setEnabledErrs map[string]error
}

// NewInMemoryTenantStore creates a new in-memory tenant store
func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		InMemoryStore:  NewInMemoryStore[*tenant.Tenant](),
		setEnabledErrs: make(map[string]error),
	}
}

// FailSetEnabled makes SetEnabled fail for the given tenant id, used to
// exercise partial failure paths.
func (s *InMemoryTenantStore) FailSetEnabled(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setEnabledErrs[id] = err
}

func copyTenant(t *tenant.Tenant) *tenant.Tenant {
	if t == nil {
		return nil
	}
	copied := *t
	copied.Metadata = lo.Assign(map[string]string{}, t.Metadata)
	return &copied
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, t.ID, copyTenant(t)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || t.Status == types.StatusDeleted {
		return nil, ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyTenant(t), nil
}

func (s *InMemoryTenantStore) GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error) {
	tenants, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, t *tenant.Tenant, _ interface{}) bool {
		return t.Subdomain == subdomain && t.Status != types.StatusDeleted
	}, nil)

	if len(tenants) == 0 {
		return nil, ierr.NewError("tenant not found").
			WithHint("No tenant registered for this subdomain").
			WithReportableDetails(map[string]interface{}{
				"subdomain": subdomain,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyTenant(tenants[0]), nil
}

func (s *InMemoryTenantStore) List(ctx context.Context, filter *types.QueryFilter) ([]*tenant.Tenant, error) {
	tenants, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, t *tenant.Tenant, f interface{}) bool {
		if qf, ok := f.(*types.QueryFilter); ok && qf != nil {
			return t.Status == qf.GetStatus()
		}
		return t.Status == types.StatusPublished
	}, func(a, b *tenant.Tenant) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	return lo.Map(tenants, func(t *tenant.Tenant, _ int) *tenant.Tenant {
		return copyTenant(t)
	}), nil
}

func (s *InMemoryTenantStore) Update(ctx context.Context, t *tenant.Tenant) error {
	if t == nil {
		return ierr.NewError("tenant cannot be nil").
			WithHint("Tenant cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, t.ID, copyTenant(t)); err != nil {
		return ierr.WithError(err).
			WithHint("Tenant not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryTenantStore) SetEnabled(ctx context.Context, id string, enabled bool) error {
	s.mu.Lock()
	forced := s.setEnabledErrs[id]
	s.mu.Unlock()
	if forced != nil {
		return forced
	}

	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	t.Enabled = enabled
	return s.Update(ctx, t)
}

func (s *InMemoryTenantStore) Delete(ctx context.Context, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	t.Status = types.StatusDeleted
	return s.Update(ctx, t)
}
