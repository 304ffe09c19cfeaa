package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/email"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// SubscriptionService manages the billing relationship between tenants and
// plans, including the periodic expiry check that suspends lapsed tenants.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error)
	CancelSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	RenewSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	// CheckSubscriptions expires every active subscription whose expiry
	// timestamp has passed and optionally deactivates the owning tenants.
	// Safe to run repeatedly; already expired rows are never re-selected.
	CheckSubscriptions(ctx context.Context) (*dto.SubscriptionCheckResponse, error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tenant, err := s.TenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	plan, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	current, err := s.SubRepo.GetCurrentByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, ierr.NewError("tenant already has a current subscription").
			WithHint("Cancel the existing subscription before creating a new one").
			WithReportableDetails(map[string]interface{}{
				"tenant_id":       tenant.ID,
				"subscription_id": current.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	sub := req.ToSubscription(ctx)
	if sub.ExpiresAt.IsZero() {
		sub.ExpiresAt = nextExpiry(sub.StartDate, plan.BillingPeriod)
	}
	if plan.TrialDays > 0 {
		sub.SubscriptionStatus = types.SubscriptionStatusTrialing
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if err := s.SubRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"tenant_id", sub.TenantID,
		"plan_id", sub.PlanID,
		"expires_at", sub.ExpiresAt,
	)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	if id == "" {
		return nil, ierr.NewError("subscription ID is required").
			WithHint("Please provide a valid subscription ID").
			Mark(ierr.ErrValidation)
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error) {
	if filter == nil {
		filter = types.NewSubscriptionFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	subs, err := s.SubRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListSubscriptionsResponse{
		Items: make([]*dto.SubscriptionResponse, len(subs)),
		Total: len(subs),
	}
	for i, sub := range subs {
		response.Items[i] = &dto.SubscriptionResponse{Subscription: sub}
	}
	return response, nil
}

func (s *subscriptionService) CancelSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch sub.SubscriptionStatus {
	case types.SubscriptionStatusCancelled:
		return nil, ierr.NewError("subscription is already cancelled").
			WithHint("The subscription has already been cancelled").
			Mark(ierr.ErrValidation)
	case types.SubscriptionStatusExpired:
		return nil, ierr.NewError("subscription has expired").
			WithHint("Expired subscriptions cannot be cancelled").
			Mark(ierr.ErrValidation)
	}

	now := time.Now().UTC()
	sub.SubscriptionStatus = types.SubscriptionStatusCancelled
	sub.CancelledAt = &now

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("cancelled subscription",
		"subscription_id", sub.ID,
		"tenant_id", sub.TenantID,
	)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) RenewSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	plan, err := s.PlanRepo.Get(ctx, sub.PlanID)
	if err != nil {
		return nil, err
	}

	// Renewal extends from the current expiry when it is still in the
	// future, otherwise from now.
	now := time.Now().UTC()
	base := sub.ExpiresAt
	if base.Before(now) {
		base = now
	}

	wasExpired := sub.SubscriptionStatus == types.SubscriptionStatusExpired

	sub.SubscriptionStatus = types.SubscriptionStatusActive
	sub.ExpiresAt = nextExpiry(base, plan.BillingPeriod)
	sub.CancelledAt = nil

	if err := s.SubRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	// Renewing an expired subscription reinstates the tenant suspended by
	// the expiry check. A tenant disabled by an operator stays disabled.
	if wasExpired {
		if err := s.TenantRepo.SetEnabled(ctx, sub.TenantID, true); err != nil {
			s.Logger.Errorw("failed to re-enable tenant after renewal",
				"tenant_id", sub.TenantID,
				"subscription_id", sub.ID,
				"error", err,
			)
		}
	}

	s.Logger.Infow("renewed subscription",
		"subscription_id", sub.ID,
		"tenant_id", sub.TenantID,
		"expires_at", sub.ExpiresAt,
	)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) CheckSubscriptions(ctx context.Context) (*dto.SubscriptionCheckResponse, error) {
	now := time.Now().UTC()

	expired, err := s.SubRepo.ListExpired(ctx, now)
	if err != nil {
		s.Logger.Errorw("failed to list expired subscriptions", "error", err)
		return nil, err
	}

	response := &dto.SubscriptionCheckResponse{
		Success:   true,
		CheckedAt: now,
		Outcomes:  make([]dto.SubscriptionCheckOutcome, 0, len(expired)),
	}

	if len(expired) == 0 {
		s.Logger.Infow("subscription check found nothing to expire", "checked_at", now)
		return response, nil
	}

	var failed int
	for _, sub := range expired {
		outcome := dto.SubscriptionCheckOutcome{
			SubscriptionID: sub.ID,
			TenantID:       sub.TenantID,
		}

		if err := s.SubRepo.UpdateStatus(ctx, sub.ID, types.SubscriptionStatusExpired); err != nil {
			s.Logger.Errorw("failed to expire subscription",
				"subscription_id", sub.ID,
				"tenant_id", sub.TenantID,
				"error", err,
			)
			outcome.Error = err.Error()
			failed++
			response.Outcomes = append(response.Outcomes, outcome)
			continue
		}
		outcome.Expired = true

		if s.Config.Billing.DeactivateTenantOnExpiry {
			if err := s.TenantRepo.SetEnabled(ctx, sub.TenantID, false); err != nil {
				s.Logger.Errorw("failed to deactivate tenant for expired subscription",
					"subscription_id", sub.ID,
					"tenant_id", sub.TenantID,
					"error", err,
				)
				outcome.Error = err.Error()
				failed++
				response.Outcomes = append(response.Outcomes, outcome)
				continue
			}
			outcome.TenantDeactivated = true
		}

		s.notifyExpiry(ctx, sub.TenantID, sub.PlanID, sub.ExpiresAt)

		response.Outcomes = append(response.Outcomes, outcome)
	}

	if failed > 0 {
		response.Success = false
		response.Error = fmt.Sprintf("failed to process %d of %d expired subscriptions", failed, len(expired))
	}

	s.Logger.Infow("subscription check completed",
		"checked_at", now,
		"expired", len(expired),
		"failed", failed,
	)

	return response, nil
}

// notifyExpiry sends the expiry notice email. Failures are logged and never
// fail the check run.
func (s *subscriptionService) notifyExpiry(ctx context.Context, tenantID, planID string, expiredAt time.Time) {
	if s.EmailService == nil {
		return
	}

	tenant, err := s.TenantRepo.Get(ctx, tenantID)
	if err != nil {
		s.Logger.Warnw("failed to load tenant for expiry notice", "tenant_id", tenantID, "error", err)
		return
	}

	planName := ""
	if plan, err := s.PlanRepo.Get(ctx, planID); err == nil {
		planName = plan.Name
	}

	_, err = s.EmailService.SendEmailWithTemplate(ctx, email.SendEmailWithTemplateRequest{
		ToAddress:    tenant.AdminEmail,
		Subject:      "Your PACSFlow subscription has expired",
		TemplatePath: email.TemplateSubscriptionExpired,
		Data: map[string]interface{}{
			"tenant_name": tenant.Name,
			"subdomain":   tenant.Subdomain,
			"plan_name":   planName,
			"expired_at":  expiredAt.Format("January 2, 2006"),
		},
	})
	if err != nil {
		s.Logger.Warnw("failed to send expiry notice", "tenant_id", tenantID, "error", err)
	}
}

// nextExpiry advances an expiry timestamp by one billing period.
func nextExpiry(from time.Time, period types.BillingPeriod) time.Time {
	switch period {
	case types.BillingPeriodAnnual:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
