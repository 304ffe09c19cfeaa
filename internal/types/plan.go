package types

import ierr "github.com/pacsflow/pacsflow/internal/errors"

// BillingPeriod is the renewal cadence of a plan.
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodAnnual  BillingPeriod = "annual"
)

func (p BillingPeriod) Validate() error {
	switch p {
	case BillingPeriodMonthly, BillingPeriodAnnual:
		return nil
	}
	return ierr.NewError("invalid billing period").
		WithHint("Billing period must be monthly or annual").
		WithReportableDetails(map[string]interface{}{
			"billing_period": p,
		}).
		Mark(ierr.ErrValidation)
}

// PlanFilter represents the filter options for plans
type PlanFilter struct {
	*QueryFilter
	PlanIDs    []string `json:"plan_ids,omitempty" form:"plan_ids"`
	LookupKeys []string `json:"lookup_keys,omitempty" form:"lookup_keys"`
}

// NewPlanFilter creates a new plan filter with default values
func NewPlanFilter() *PlanFilter {
	return &PlanFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *PlanFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	return f.QueryFilter.Validate()
}
