package contract

import (
	"testing"
	"time"

	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testContract() *Contract {
	return &Contract{
		Tenant: &tenant.Tenant{
			Name:       "Radiology Clinic",
			Subdomain:  "clinic-one",
			AdminEmail: "admin@clinic-one.example.com",
		},
		Plan: &plan.Plan{
			Name:          "Standard",
			Price:         decimal.NewFromFloat(99.5),
			Currency:      "usd",
			BillingPeriod: types.BillingPeriodMonthly,
		},
		Subscription: &subscription.Subscription{
			ExpiresAt: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		EffectiveDate: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderSubstitutesVariables(t *testing.T) {
	c := testContract()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "tenant fields",
			text:     "This agreement is between PACSFlow and {{tenant_name}} ({{tenant_subdomain}}).",
			expected: "This agreement is between PACSFlow and Radiology Clinic (clinic-one).",
		},
		{
			name:     "plan fields",
			text:     "Plan: {{plan_name}} at {{plan_price}} per {{billing_period}}.",
			expected: "Plan: Standard at 99.50 USD per monthly.",
		},
		{
			name:     "dates",
			text:     "Effective {{effective_date}}, expires {{expiry_date}}.",
			expected: "Effective February 15, 2026, expires March 15, 2026.",
		},
		{
			name:     "contact",
			text:     "Notices go to {{admin_email}}.",
			expected: "Notices go to admin@clinic-one.example.com.",
		},
		{
			name:     "repeated variable",
			text:     "{{tenant_name}} and {{tenant_name}}",
			expected: "Radiology Clinic and Radiology Clinic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.text, c))
		})
	}
}

func TestRenderToleratesWhitespace(t *testing.T) {
	c := testContract()

	assert.Equal(t, "Radiology Clinic", Render("{{ tenant_name }}", c))
	assert.Equal(t, "Radiology Clinic", Render("{{tenant_name }}", c))
	assert.Equal(t, "Radiology Clinic", Render("{{  tenant_name  }}", c))
}

func TestRenderLeavesUnknownVariables(t *testing.T) {
	c := testContract()

	assert.Equal(t, "Hello {{unknown_var}}!", Render("Hello {{unknown_var}}!", c))
}

func TestRenderMissingRecordParts(t *testing.T) {
	c := &Contract{
		Tenant:        &tenant.Tenant{Name: "Radiology Clinic"},
		EffectiveDate: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
	}

	// Plan and subscription variables render empty when absent
	assert.Equal(t, "Plan:  Price: ", Render("Plan: {{plan_name}} Price: {{plan_price}}", c))
	assert.Equal(t, "Expires: ", Render("Expires: {{expiry_date}}", c))
}
