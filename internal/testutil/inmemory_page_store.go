package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/page"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryPageStore implements page.Repository
type InMemoryPageStore struct {
	*InMemoryStore[*page.Page]
}

// NewInMemoryPageStore creates a new in-memory page store
func NewInMemoryPageStore() *InMemoryPageStore {
	return &InMemoryPageStore{
		InMemoryStore: NewInMemoryStore[*page.Page](),
	}
}

func copyPage(p *page.Page) *page.Page {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryPageStore) Create(ctx context.Context, p *page.Page) error {
	if p == nil {
		return ierr.NewError("page cannot be nil").
			WithHint("Page cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Create(ctx, p.ID, copyPage(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create page").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryPageStore) Get(ctx context.Context, id string) (*page.Page, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusDeleted {
		return nil, ierr.NewError("page not found").
			WithHint("Page not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPage(p), nil
}

func (s *InMemoryPageStore) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	pages, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, p *page.Page, _ interface{}) bool {
		return p.Slug == slug && p.Status == types.StatusPublished
	}, nil)

	if len(pages) == 0 {
		return nil, ierr.NewError("page not found").
			WithHint("No page registered for this slug").
			WithReportableDetails(map[string]interface{}{
				"slug": slug,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPage(pages[0]), nil
}

func (s *InMemoryPageStore) List(ctx context.Context, filter *types.QueryFilter) ([]*page.Page, error) {
	pages, _ := s.InMemoryStore.List(ctx, filter, func(_ context.Context, p *page.Page, f interface{}) bool {
		if qf, ok := f.(*types.QueryFilter); ok && qf != nil {
			return p.Status == qf.GetStatus()
		}
		return p.Status == types.StatusPublished
	}, func(a, b *page.Page) bool {
		return a.Slug < b.Slug
	})

	return lo.Map(pages, func(p *page.Page, _ int) *page.Page {
		return copyPage(p)
	}), nil
}

func (s *InMemoryPageStore) Update(ctx context.Context, p *page.Page) error {
	if p == nil {
		return ierr.NewError("page cannot be nil").
			WithHint("Page cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := s.InMemoryStore.Update(ctx, p.ID, copyPage(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Page not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryPageStore) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Status = types.StatusDeleted
	return s.Update(ctx, p)
}
