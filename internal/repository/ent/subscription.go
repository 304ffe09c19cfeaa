package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entSubscription "github.com/pacsflow/pacsflow/ent/subscription"
	domainSubscription "github.com/pacsflow/pacsflow/internal/domain/subscription"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

// currentStatuses are the subscription statuses that can govern a tenant's
// access right now.
var currentStatuses = []types.SubscriptionStatus{
	types.SubscriptionStatusActive,
	types.SubscriptionStatusTrialing,
	types.SubscriptionStatusPending,
}

type subscriptionRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewSubscriptionRepository creates a new subscription repository over the
// shared catalog client.
func NewSubscriptionRepository(client postgres.IClient, logger *logger.Logger) domainSubscription.Repository {
	return &subscriptionRepository{
		client: client,
		logger: logger,
	}
}

func (r *subscriptionRepository) Create(ctx context.Context, s *domainSubscription.Subscription) error {
	r.logger.Debugw("creating subscription", "subscription_id", s.ID, "tenant_id", s.TenantID)

	span := StartRepositorySpan(ctx, "subscription", "create", map[string]interface{}{
		"subscription_id": s.ID,
		"tenant_id":       s.TenantID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Subscription.
		Create().
		SetID(s.ID).
		SetPlanID(s.PlanID).
		SetSubscriptionStatus(s.SubscriptionStatus).
		SetStartDate(s.StartDate).
		SetExpiresAt(s.ExpiresAt).
		SetNillableCancelledAt(s.CancelledAt).
		SetMetadata(s.Metadata).
		SetTenantID(s.TenantID).
		SetStatus(string(s.Status)).
		SetCreatedBy(s.CreatedBy).
		SetUpdatedBy(s.UpdatedBy).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A subscription with this id already exists").
				WithReportableDetails(map[string]interface{}{
					"subscription_id": s.ID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*domainSubscription.Subscription, error) {
	span := StartRepositorySpan(ctx, "subscription", "get", map[string]interface{}{
		"subscription_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Subscription.Query().
		Where(
			entSubscription.ID(id),
			entSubscription.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Subscription not found").
				WithReportableDetails(map[string]interface{}{
					"subscription_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get subscription").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainSubscription.FromEnt(result), nil
}

// GetCurrentByTenant returns nil, nil when the tenant has no current
// subscription; callers treat that as an unsubscribed tenant.
func (r *subscriptionRepository) GetCurrentByTenant(ctx context.Context, tenantID string) (*domainSubscription.Subscription, error) {
	span := StartRepositorySpan(ctx, "subscription", "get_current_by_tenant", map[string]interface{}{
		"tenant_id": tenantID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Subscription.Query().
		Where(
			entSubscription.TenantID(tenantID),
			entSubscription.SubscriptionStatusIn(currentStatuses...),
			entSubscription.Status(string(types.StatusPublished)),
		).
		Order(ent.Desc(entSubscription.FieldCreatedAt)).
		First(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get current subscription").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": tenantID,
			}).
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainSubscription.FromEnt(result), nil
}

func (r *subscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*domainSubscription.Subscription, error) {
	if filter == nil {
		filter = types.NewSubscriptionFilter()
	}

	span := StartRepositorySpan(ctx, "subscription", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	query := client.Subscription.Query().
		Where(entSubscription.Status(string(filter.GetStatus()))).
		Order(ent.Desc(entSubscription.FieldCreatedAt))

	if len(filter.TenantIDs) > 0 {
		query = query.Where(entSubscription.TenantIDIn(filter.TenantIDs...))
	}
	if len(filter.PlanIDs) > 0 {
		query = query.Where(entSubscription.PlanIDIn(filter.PlanIDs...))
	}
	if len(filter.SubscriptionStatuses) > 0 {
		query = query.Where(entSubscription.SubscriptionStatusIn(filter.SubscriptionStatuses...))
	}
	if filter.ExpiresBefore != nil {
		query = query.Where(entSubscription.ExpiresAtLTE(*filter.ExpiresBefore))
	}
	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainSubscription.FromEntList(results), nil
}

func (r *subscriptionRepository) ListExpired(ctx context.Context, asOf time.Time) ([]*domainSubscription.Subscription, error) {
	span := StartRepositorySpan(ctx, "subscription", "list_expired", map[string]interface{}{
		"as_of": asOf,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	results, err := client.Subscription.Query().
		Where(
			entSubscription.SubscriptionStatusEQ(types.SubscriptionStatusActive),
			entSubscription.ExpiresAtLTE(asOf),
			entSubscription.Status(string(types.StatusPublished)),
		).
		All(ctx)

	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list expired subscriptions").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainSubscription.FromEntList(results), nil
}

func (r *subscriptionRepository) Update(ctx context.Context, s *domainSubscription.Subscription) error {
	r.logger.Debugw("updating subscription", "subscription_id", s.ID)

	span := StartRepositorySpan(ctx, "subscription", "update", map[string]interface{}{
		"subscription_id": s.ID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Subscription.UpdateOneID(s.ID).
		SetSubscriptionStatus(s.SubscriptionStatus).
		SetStartDate(s.StartDate).
		SetExpiresAt(s.ExpiresAt).
		SetNillableCancelledAt(s.CancelledAt).
		SetMetadata(s.Metadata).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Subscription not found").
				WithReportableDetails(map[string]interface{}{
					"subscription_id": s.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, id string, status types.SubscriptionStatus) error {
	r.logger.Debugw("updating subscription status", "subscription_id", id, "subscription_status", status)

	span := StartRepositorySpan(ctx, "subscription", "update_status", map[string]interface{}{
		"subscription_id":     id,
		"subscription_status": status,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Subscription.UpdateOneID(id).
		SetSubscriptionStatus(status).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Subscription not found").
				WithReportableDetails(map[string]interface{}{
					"subscription_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update subscription status").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
