package page

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/types"
)

// Repository defines the interface for storefront page persistence against a
// tenant's isolated database, resolved from the request context.
type Repository interface {
	Create(ctx context.Context, page *Page) error
	Get(ctx context.Context, id string) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Page, error)
	Update(ctx context.Context, page *Page) error
	Delete(ctx context.Context, id string) error
}
