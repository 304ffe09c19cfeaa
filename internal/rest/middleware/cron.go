package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware guards cron routes. When a secret is configured the
// request must carry it in the X-Cron-Secret header; with no secret
// configured the routes stay open for platform-level schedulers.
func CronSecretMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := cfg.Cron.Secret
		if secret == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(types.HeaderCronSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid cron secret",
			})
			return
		}

		c.Next()
	}
}
