package contract

import (
	"time"

	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
)

// Contract is the record a service agreement template is rendered against.
type Contract struct {
	Tenant        *tenant.Tenant             `json:"tenant"`
	Plan          *plan.Plan                 `json:"plan"`
	Subscription  *subscription.Subscription `json:"subscription,omitempty"`
	EffectiveDate time.Time                  `json:"effective_date"`
}
