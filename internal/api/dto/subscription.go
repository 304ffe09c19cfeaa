package dto

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type CreateSubscriptionRequest struct {
	TenantID  string            `json:"tenant_id" validate:"required"`
	PlanID    string            `json:"plan_id" validate:"required"`
	StartDate *time.Time        `json:"start_date,omitempty"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.StartDate != nil && r.ExpiresAt != nil && !r.ExpiresAt.After(*r.StartDate) {
		return ierr.NewError("expires_at must be after start_date").
			WithHint("Subscription expiry must come after its start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateSubscriptionRequest) ToSubscription(ctx context.Context) *subscription.Subscription {
	now := time.Now().UTC()
	startDate := now
	if r.StartDate != nil {
		startDate = r.StartDate.UTC()
	}

	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		PlanID:             r.PlanID,
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          startDate,
		Metadata:           r.Metadata,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	sub.TenantID = r.TenantID
	if r.ExpiresAt != nil {
		sub.ExpiresAt = r.ExpiresAt.UTC()
	}
	return sub
}

type SubscriptionResponse struct {
	*subscription.Subscription
}

type ListSubscriptionsResponse struct {
	Items []*SubscriptionResponse `json:"items"`
	Total int                     `json:"total"`
}

// SubscriptionCheckOutcome is the result of processing one expired
// subscription during a billing check run.
type SubscriptionCheckOutcome struct {
	SubscriptionID    string `json:"subscription_id"`
	TenantID          string `json:"tenant_id"`
	Expired           bool   `json:"expired"`
	TenantDeactivated bool   `json:"tenant_deactivated"`
	Error             string `json:"error,omitempty"`
}

// SubscriptionCheckResponse is the aggregate result of a billing check run.
// Success is true only when every expired subscription was processed.
type SubscriptionCheckResponse struct {
	Success   bool                       `json:"success"`
	Error     string                     `json:"error,omitempty"`
	CheckedAt time.Time                  `json:"checked_at"`
	Outcomes  []SubscriptionCheckOutcome `json:"outcomes,omitempty"`
}
