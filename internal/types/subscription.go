package types

import (
	"time"

	ierr "github.com/pacsflow/pacsflow/internal/errors"
)

// SubscriptionStatus is the billing state of a tenant's subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) Validate() error {
	switch s {
	case SubscriptionStatusActive,
		SubscriptionStatusTrialing,
		SubscriptionStatusPending,
		SubscriptionStatusExpired,
		SubscriptionStatusCancelled:
		return nil
	}
	return ierr.NewError("invalid subscription status").
		WithHint("Invalid subscription status").
		WithReportableDetails(map[string]interface{}{
			"status": s,
		}).
		Mark(ierr.ErrValidation)
}

// SubscriptionFilter represents the filter options for subscriptions
type SubscriptionFilter struct {
	*QueryFilter
	TenantIDs            []string             `json:"tenant_ids,omitempty" form:"tenant_ids"`
	PlanIDs              []string             `json:"plan_ids,omitempty" form:"plan_ids"`
	SubscriptionStatuses []SubscriptionStatus `json:"subscription_statuses,omitempty" form:"subscription_statuses"`
	ExpiresBefore        *time.Time           `json:"expires_before,omitempty" form:"expires_before"`
}

// NewSubscriptionFilter creates a new subscription filter with default values
func NewSubscriptionFilter() *SubscriptionFilter {
	return &SubscriptionFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *SubscriptionFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, status := range f.SubscriptionStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}
