package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/user"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryUserStore implements user.Repository
type InMemoryUserStore struct {
	*InMemoryStore[*user.User]
}

// NewInMemoryUserStore creates a new in-memory user store
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func copyUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}

func (s *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, u.ID, copyUser(u)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	u, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || u.Status == types.StatusDeleted {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUser(u), nil
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	users, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, u *user.User, _ interface{}) bool {
		return u.Email == email && u.Status != types.StatusDeleted
	}, nil)

	if len(users) == 0 {
		return nil, ierr.NewError("user not found").
			WithHint("No user registered for this email").
			WithReportableDetails(map[string]interface{}{
				"email": email,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUser(users[0]), nil
}

func (s *InMemoryUserStore) List(ctx context.Context, filter *types.QueryFilter) ([]*user.User, error) {
	users, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, u *user.User, f interface{}) bool {
		if qf, ok := f.(*types.QueryFilter); ok && qf != nil {
			return u.Status == qf.GetStatus()
		}
		return u.Status == types.StatusPublished
	}, func(a, b *user.User) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	return lo.Map(users, func(u *user.User, _ int) *user.User {
		return copyUser(u)
	}), nil
}

func (s *InMemoryUserStore) Update(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, u.ID, copyUser(u)); err != nil {
		return ierr.WithError(err).
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryUserStore) Delete(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	u.Status = types.StatusDeleted
	return s.Update(ctx, u)
}
