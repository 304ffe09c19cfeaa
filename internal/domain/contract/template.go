package contract

import (
	"regexp"
	"strings"
)

// VariableRenderer renders one template variable from a contract record.
// Renderers must be pure: same contract in, same string out.
type VariableRenderer func(c *Contract) string

const dateLayout = "January 2, 2006"

var variablePattern = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

// Variables is the table of supported template variables.
var Variables = map[string]VariableRenderer{
	"tenant_name": func(c *Contract) string {
		if c.Tenant == nil {
			return ""
		}
		return c.Tenant.Name
	},
	"tenant_subdomain": func(c *Contract) string {
		if c.Tenant == nil {
			return ""
		}
		return c.Tenant.Subdomain
	},
	"admin_email": func(c *Contract) string {
		if c.Tenant == nil {
			return ""
		}
		return c.Tenant.AdminEmail
	},
	"plan_name": func(c *Contract) string {
		if c.Plan == nil {
			return ""
		}
		return c.Plan.Name
	},
	"plan_price": func(c *Contract) string {
		if c.Plan == nil {
			return ""
		}
		return c.Plan.Price.StringFixed(2) + " " + strings.ToUpper(c.Plan.Currency)
	},
	"billing_period": func(c *Contract) string {
		if c.Plan == nil {
			return ""
		}
		return string(c.Plan.BillingPeriod)
	},
	"effective_date": func(c *Contract) string {
		return c.EffectiveDate.Format(dateLayout)
	},
	"expiry_date": func(c *Contract) string {
		if c.Subscription == nil {
			return ""
		}
		return c.Subscription.ExpiresAt.Format(dateLayout)
	},
}

// Render substitutes every known {{variable}} occurrence in text using the
// contract record. Unknown variables are left untouched so broken templates
// stay visible in the rendered output.
func Render(text string, c *Contract) string {
	return variablePattern.ReplaceAllStringFunc(text, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]
		renderer, ok := Variables[name]
		if !ok {
			return match
		}
		return renderer(c)
	})
}
