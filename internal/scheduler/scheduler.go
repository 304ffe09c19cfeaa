package scheduler

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the subscription expiry check on an internal cron when no
// platform scheduler is available. Disabled by default; production deploys
// normally hit /api/cron/subscription-check from the platform instead.
type Scheduler struct {
	cron                *cron.Cron
	subscriptionService service.SubscriptionService
	cfg                 *config.Configuration
	log                 *logger.Logger
}

func New(cfg *config.Configuration, subscriptionService service.SubscriptionService, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:                cron.New(),
		subscriptionService: subscriptionService,
		cfg:                 cfg,
		log:                 log,
	}
}

// Start registers the subscription check job and starts the cron loop.
// Returns immediately when the scheduler is disabled.
func (s *Scheduler) Start() error {
	if !s.cfg.Scheduler.Enabled {
		s.log.Infow("internal scheduler disabled")
		return nil
	}

	spec := s.cfg.Scheduler.SubscriptionCheckSpec
	if _, err := s.cron.AddFunc(spec, s.runSubscriptionCheck); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Infow("internal scheduler started", "subscription_check_spec", spec)
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSubscriptionCheck() {
	ctx := types.SetUserID(context.Background(), types.DefaultUserID)

	resp, err := s.subscriptionService.CheckSubscriptions(ctx)
	if err != nil {
		s.log.Errorw("scheduled subscription check failed", "error", err)
		return
	}
	if !resp.Success {
		s.log.Errorw("scheduled subscription check completed with failures", "error", resp.Error)
		return
	}
	s.log.Infow("scheduled subscription check completed", "expired", len(resp.Outcomes))
}
