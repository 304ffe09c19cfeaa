package plan

import (
	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
)

// Plan represents a priced feature bundle tenants subscribe to.
type Plan struct {
	ID            string                 `json:"id"`
	LookupKey     string                 `json:"lookup_key,omitempty"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	Price         decimal.Decimal        `json:"price"`
	Currency      string                 `json:"currency"`
	BillingPeriod types.BillingPeriod    `json:"billing_period"`
	TrialDays     int                    `json:"trial_days"`
	Features      map[string]interface{} `json:"features,omitempty"`
	types.BaseModel
}

// FromEnt converts ent.Plan to domain Plan
func FromEnt(p *ent.Plan) *Plan {
	if p == nil {
		return nil
	}

	return &Plan{
		ID:            p.ID,
		LookupKey:     p.LookupKey,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Currency:      p.Currency,
		BillingPeriod: p.BillingPeriod,
		TrialDays:     p.TrialDays,
		Features:      p.Features,
		BaseModel: types.BaseModel{
			TenantID:  p.TenantID,
			Status:    types.Status(p.Status),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.Plan to []*Plan
func FromEntList(plans []*ent.Plan) []*Plan {
	result := make([]*Plan, len(plans))
	for i, p := range plans {
		result[i] = FromEnt(p)
	}
	return result
}

// Validate validates the plan
func (p *Plan) Validate() error {
	if p.Name == "" {
		return ierr.NewError("name is required").Mark(ierr.ErrValidation)
	}
	if p.Currency == "" {
		return ierr.NewError("currency is required").Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("price must not be negative").Mark(ierr.ErrValidation)
	}
	if p.TrialDays < 0 {
		return ierr.NewError("trial_days must not be negative").Mark(ierr.ErrValidation)
	}
	return p.BillingPeriod.Validate()
}
