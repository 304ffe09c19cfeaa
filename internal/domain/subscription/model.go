package subscription

import (
	"time"

	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// Subscription represents the billing relationship governing a tenant's
// access. The owning tenant is BaseModel.TenantID.
type Subscription struct {
	ID                 string                   `json:"id"`
	PlanID             string                   `json:"plan_id"`
	SubscriptionStatus types.SubscriptionStatus `json:"subscription_status"`
	StartDate          time.Time                `json:"start_date"`
	ExpiresAt          time.Time                `json:"expires_at"`
	CancelledAt        *time.Time               `json:"cancelled_at,omitempty"`
	Metadata           map[string]string        `json:"metadata,omitempty"`
	types.BaseModel
}

// FromEnt converts ent.Subscription to domain Subscription
func FromEnt(s *ent.Subscription) *Subscription {
	if s == nil {
		return nil
	}

	return &Subscription{
		ID:                 s.ID,
		PlanID:             s.PlanID,
		SubscriptionStatus: s.SubscriptionStatus,
		StartDate:          s.StartDate,
		ExpiresAt:          s.ExpiresAt,
		CancelledAt:        s.CancelledAt,
		Metadata:           s.Metadata,
		BaseModel: types.BaseModel{
			TenantID:  s.TenantID,
			Status:    types.Status(s.Status),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
			CreatedBy: s.CreatedBy,
			UpdatedBy: s.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.Subscription to []*Subscription
func FromEntList(subs []*ent.Subscription) []*Subscription {
	result := make([]*Subscription, len(subs))
	for i, s := range subs {
		result[i] = FromEnt(s)
	}
	return result
}

// IsExpired reports whether the subscription's expiry timestamp has passed
// as of the given instant.
func (s *Subscription) IsExpired(asOf time.Time) bool {
	return !s.ExpiresAt.After(asOf)
}

// Validate validates the subscription
func (s *Subscription) Validate() error {
	if s.TenantID == "" {
		return ierr.NewError("tenant_id is required").Mark(ierr.ErrValidation)
	}
	if s.PlanID == "" {
		return ierr.NewError("plan_id is required").Mark(ierr.ErrValidation)
	}
	if s.ExpiresAt.IsZero() {
		return ierr.NewError("expires_at is required").Mark(ierr.ErrValidation)
	}
	return s.SubscriptionStatus.Validate()
}
