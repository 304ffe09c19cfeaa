package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/bondcompany"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryBondCompanyStore implements bondcompany.Repository
type InMemoryBondCompanyStore struct {
	*InMemoryStore[*bondcompany.BondCompany]
}

// NewInMemoryBondCompanyStore creates a new in-memory bond company store
func NewInMemoryBondCompanyStore() *InMemoryBondCompanyStore {
	return &InMemoryBondCompanyStore{
		InMemoryStore: NewInMemoryStore[*bondcompany.BondCompany](),
	}
}

func copyBondCompany(b *bondcompany.BondCompany) *bondcompany.BondCompany {
	if b == nil {
		return nil
	}
	copied := *b
	return &copied
}

func (s *InMemoryBondCompanyStore) Create(ctx context.Context, b *bondcompany.BondCompany) error {
	if b == nil {
		return ierr.NewError("bond company cannot be nil").
			WithHint("Bond company cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, b.ID, copyBondCompany(b)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create bond company").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryBondCompanyStore) Get(ctx context.Context, id string) (*bondcompany.BondCompany, error) {
	b, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("bond company not found").
			WithHint("Bond company not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyBondCompany(b), nil
}

func (s *InMemoryBondCompanyStore) GetByCode(ctx context.Context, code string) (*bondcompany.BondCompany, error) {
	companies, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, b *bondcompany.BondCompany, _ interface{}) bool {
		return b.Code == code && b.Status == types.StatusPublished
	}, nil)

	if len(companies) == 0 {
		return nil, ierr.NewError("bond company not found").
			WithHint("No bond company registered for this code").
			WithReportableDetails(map[string]interface{}{
				"code": code,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyBondCompany(companies[0]), nil
}

func (s *InMemoryBondCompanyStore) List(ctx context.Context, filter *types.QueryFilter) ([]*bondcompany.BondCompany, error) {
	companies, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, b *bondcompany.BondCompany, f interface{}) bool {
		if qf, ok := f.(*types.QueryFilter); ok && qf != nil {
			return b.Status == qf.GetStatus()
		}
		return b.Status == types.StatusPublished
	}, func(a, b *bondcompany.BondCompany) bool {
		return a.Code < b.Code
	})

	return lo.Map(companies, func(b *bondcompany.BondCompany, _ int) *bondcompany.BondCompany {
		return copyBondCompany(b)
	}), nil
}
