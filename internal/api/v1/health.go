package v1

import (
	"net/http"

	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	resolver postgres.TenantClientResolver
	log      *logger.Logger
}

func NewHealthHandler(resolver postgres.TenantClientResolver, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		resolver: resolver,
		log:      log,
	}
}

// Health reports liveness. The catalog connection is lazy, so this only
// proves the process is serving.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
