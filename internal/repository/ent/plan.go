package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entPlan "github.com/pacsflow/pacsflow/ent/plan"
	domainPlan "github.com/pacsflow/pacsflow/internal/domain/plan"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

type planRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewPlanRepository creates a new plan repository over the shared catalog
// client.
func NewPlanRepository(client postgres.IClient, logger *logger.Logger) domainPlan.Repository {
	return &planRepository{
		client: client,
		logger: logger,
	}
}

func (r *planRepository) Create(ctx context.Context, p *domainPlan.Plan) error {
	r.logger.Debugw("creating plan", "plan_id", p.ID, "name", p.Name)

	span := StartRepositorySpan(ctx, "plan", "create", map[string]interface{}{
		"plan_id": p.ID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Plan.
		Create().
		SetID(p.ID).
		SetLookupKey(p.LookupKey).
		SetName(p.Name).
		SetDescription(p.Description).
		SetPrice(p.Price).
		SetCurrency(p.Currency).
		SetBillingPeriod(p.BillingPeriod).
		SetTrialDays(p.TrialDays).
		SetFeatures(p.Features).
		SetTenantID(p.TenantID).
		SetStatus(string(p.Status)).
		SetCreatedBy(p.CreatedBy).
		SetUpdatedBy(p.UpdatedBy).
		SetCreatedAt(p.CreatedAt).
		SetUpdatedAt(p.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A plan with this lookup key already exists").
				WithReportableDetails(map[string]interface{}{
					"lookup_key": p.LookupKey,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create plan").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*domainPlan.Plan, error) {
	span := StartRepositorySpan(ctx, "plan", "get", map[string]interface{}{
		"plan_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Plan.Query().
		Where(
			entPlan.ID(id),
			entPlan.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Plan not found").
				WithReportableDetails(map[string]interface{}{
					"plan_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get plan").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPlan.FromEnt(result), nil
}

func (r *planRepository) GetByLookupKey(ctx context.Context, lookupKey string) (*domainPlan.Plan, error) {
	span := StartRepositorySpan(ctx, "plan", "get_by_lookup_key", map[string]interface{}{
		"lookup_key": lookupKey,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Plan.Query().
		Where(
			entPlan.LookupKey(lookupKey),
			entPlan.StatusNEQ(string(types.StatusDeleted)),
		).
		First(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Plan not found").
				WithReportableDetails(map[string]interface{}{
					"lookup_key": lookupKey,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get plan by lookup key").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPlan.FromEnt(result), nil
}

func (r *planRepository) List(ctx context.Context, filter *types.PlanFilter) ([]*domainPlan.Plan, error) {
	if filter == nil {
		filter = types.NewPlanFilter()
	}

	span := StartRepositorySpan(ctx, "plan", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	query := client.Plan.Query().
		Where(entPlan.Status(string(filter.GetStatus()))).
		Order(ent.Desc(entPlan.FieldCreatedAt))

	if len(filter.PlanIDs) > 0 {
		query = query.Where(entPlan.IDIn(filter.PlanIDs...))
	}
	if len(filter.LookupKeys) > 0 {
		query = query.Where(entPlan.LookupKeyIn(filter.LookupKeys...))
	}
	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list plans").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPlan.FromEntList(results), nil
}

func (r *planRepository) Update(ctx context.Context, p *domainPlan.Plan) error {
	r.logger.Debugw("updating plan", "plan_id", p.ID)

	span := StartRepositorySpan(ctx, "plan", "update", map[string]interface{}{
		"plan_id": p.ID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Plan.UpdateOneID(p.ID).
		SetLookupKey(p.LookupKey).
		SetName(p.Name).
		SetDescription(p.Description).
		SetPrice(p.Price).
		SetCurrency(p.Currency).
		SetBillingPeriod(p.BillingPeriod).
		SetTrialDays(p.TrialDays).
		SetFeatures(p.Features).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Plan not found").
				WithReportableDetails(map[string]interface{}{
					"plan_id": p.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update plan").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting plan", "plan_id", id)

	span := StartRepositorySpan(ctx, "plan", "delete", map[string]interface{}{
		"plan_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Plan.UpdateOneID(id).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Plan not found").
				WithReportableDetails(map[string]interface{}{
					"plan_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete plan").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
