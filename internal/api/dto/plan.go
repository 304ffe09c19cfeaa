package dto

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	Name          string                 `json:"name" validate:"required"`
	LookupKey     string                 `json:"lookup_key"`
	Description   string                 `json:"description"`
	Price         decimal.Decimal        `json:"price"`
	Currency      string                 `json:"currency" validate:"required,len=3"`
	BillingPeriod types.BillingPeriod    `json:"billing_period" validate:"required"`
	TrialDays     int                    `json:"trial_days" validate:"min=0"`
	Features      map[string]interface{} `json:"features,omitempty"`
}

func (r *CreatePlanRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.BillingPeriod.Validate()
}

func (r *CreatePlanRequest) ToPlan(ctx context.Context) *plan.Plan {
	return &plan.Plan{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		LookupKey:     r.LookupKey,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Currency:      r.Currency,
		BillingPeriod: r.BillingPeriod,
		TrialDays:     r.TrialDays,
		Features:      r.Features,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePlanRequest struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Price       *decimal.Decimal       `json:"price,omitempty"`
	TrialDays   *int                   `json:"trial_days,omitempty" validate:"omitempty,min=0"`
	Features    map[string]interface{} `json:"features,omitempty"`
}

func (r *UpdatePlanRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type PlanResponse struct {
	*plan.Plan
}

type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
	Total int             `json:"total"`
}
