package middleware

import (
	"time"

	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/types"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// SentryMiddleware returns a middleware that captures errors and performance data
func SentryMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	if !cfg.Sentry.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// SentryTenantContextMiddleware tags the Sentry scope with the resolved
// tenant so auto-captured spans carry it. Add this after
// TenantResolverMiddleware.
func SentryTenantContextMiddleware(c *gin.Context) {
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		c.Next()
		return
	}
	ctx := c.Request.Context()
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		hub.Scope().SetTag("tenant_id", tenantID)
	}
	if subdomain := types.GetTenantSubdomain(ctx); subdomain != "" {
		hub.Scope().SetTag("tenant_subdomain", subdomain)
	}
	c.Next()
}
