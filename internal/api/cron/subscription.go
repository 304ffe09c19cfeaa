package cron

import (
	"net/http"
	"time"

	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/gin-gonic/gin"
)

// SubscriptionCronHandler handles subscription related cron jobs
type SubscriptionCronHandler struct {
	subscriptionService service.SubscriptionService
	logger              *logger.Logger
}

// NewSubscriptionCronHandler creates a new subscription cron handler
func NewSubscriptionCronHandler(
	subscriptionService service.SubscriptionService,
	logger *logger.Logger,
) *SubscriptionCronHandler {
	return &SubscriptionCronHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// CheckSubscriptions expires lapsed subscriptions and suspends their
// tenants. The response always carries a top level success flag so platform
// schedulers can alert on the status code alone.
func (h *SubscriptionCronHandler) CheckSubscriptions(c *gin.Context) {
	h.logger.Infow("starting subscription check cron job", "time", time.Now().UTC().Format(time.RFC3339))

	resp, err := h.subscriptionService.CheckSubscriptions(c.Request.Context())
	if err != nil {
		h.logger.Errorw("subscription check cron job failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if !resp.Success {
		h.logger.Errorw("subscription check cron job completed with failures", "error", resp.Error)
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	h.logger.Infow("completed subscription check cron job", "expired", len(resp.Outcomes))
	c.JSON(http.StatusOK, resp)
}
