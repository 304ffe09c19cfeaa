package middleware

import (
	"strings"

	"github.com/pacsflow/pacsflow/internal/auth"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticateMiddleware validates the bearer token and stores the caller's
// user id on the request context. Tokens scoped to a tenant must match the
// tenant resolved for the request.
func AuthenticateMiddleware(authService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(types.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.Error(ierr.NewError("authorization token is required").
				WithHint("Send a Bearer token in the Authorization header").
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		if claims.TenantSubdomain != "" {
			if subdomain := types.GetTenantSubdomain(ctx); subdomain != "" && subdomain != claims.TenantSubdomain {
				c.Error(ierr.NewError("token is not valid for this tenant").
					WithHint("The token was issued for a different workspace").
					Mark(ierr.ErrPermissionDenied))
				c.Abort()
				return
			}
		}

		c.Request = c.Request.WithContext(types.SetUserID(ctx, claims.UserID))
		c.Next()
	}
}
