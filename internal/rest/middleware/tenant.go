package middleware

import (
	"strings"

	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/gin-gonic/gin"
)

// TenantResolverMiddleware resolves the tenant for the request from the
// X-Tenant-Subdomain header, falling back to the first label of the Host.
// The resolved tenant id and subdomain are stored on the request context so
// the connection resolver and repositories can pick them up. Requests for
// unknown or deactivated tenants are rejected.
func TenantResolverMiddleware(tenantService service.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subdomain := c.GetHeader(types.HeaderTenantSubdomain)
		if subdomain == "" {
			subdomain = subdomainFromHost(c.Request.Host)
		}

		if subdomain == "" {
			c.Error(ierr.NewError("tenant subdomain is required").
				WithHint("Send the X-Tenant-Subdomain header or use a tenant host").
				Mark(ierr.ErrValidation))
			c.Abort()
			return
		}

		resp, err := tenantService.GetTenantBySubdomain(c.Request.Context(), subdomain)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		if !resp.Enabled || resp.Status != types.StatusPublished {
			c.Error(ierr.NewError("tenant is deactivated").
				WithHint("This workspace is currently suspended").
				WithReportableDetails(map[string]interface{}{
					"subdomain": subdomain,
				}).
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}

		ctx := types.SetTenantSubdomain(c.Request.Context(), subdomain)
		ctx = types.SetTenantID(ctx, resp.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// subdomainFromHost extracts the tenant label from a host like
// "acme.pacsflow.io:8080". Hosts without at least three labels carry no
// tenant.
func subdomainFromHost(host string) string {
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	label := parts[0]
	if label == "www" || label == "api" {
		return ""
	}
	return label
}
