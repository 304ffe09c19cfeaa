package subscription

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/internal/types"
)

// Repository defines the interface for subscription persistence operations
// against the shared catalog database.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Get(ctx context.Context, id string) (*Subscription, error)
	// GetCurrentByTenant returns the subscription currently governing the
	// tenant's access; at most one exists per tenant.
	GetCurrentByTenant(ctx context.Context, tenantID string) (*Subscription, error)
	List(ctx context.Context, filter *types.SubscriptionFilter) ([]*Subscription, error)
	// ListExpired returns every subscription still marked active whose
	// expiry timestamp is at or before asOf. Rows already expired are not
	// re-selected, which makes the expiry check idempotent.
	ListExpired(ctx context.Context, asOf time.Time) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	// UpdateStatus transitions only the subscription status.
	UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) error
}
