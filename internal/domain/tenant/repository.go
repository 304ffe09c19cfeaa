package tenant

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/types"
)

// Repository defines the interface for tenant persistence operations against
// the shared catalog database.
type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	Get(ctx context.Context, id string) (*Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	// SetEnabled flips the tenant's active flag without touching anything
	// else; used by the expiry checker's cascade.
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}
