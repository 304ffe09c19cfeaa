package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entTenant "github.com/pacsflow/pacsflow/ent/tenant"
	domainTenant "github.com/pacsflow/pacsflow/internal/domain/tenant"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

type tenantRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewTenantRepository creates a new tenant repository over the shared
// catalog client.
func NewTenantRepository(client postgres.IClient, logger *logger.Logger) domainTenant.Repository {
	return &tenantRepository{
		client: client,
		logger: logger,
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *domainTenant.Tenant) error {
	r.logger.Debugw("creating tenant", "tenant_id", t.ID, "subdomain", t.Subdomain)

	span := StartRepositorySpan(ctx, "tenant", "create", map[string]interface{}{
		"tenant_id": t.ID,
		"subdomain": t.Subdomain,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Tenant.
		Create().
		SetID(t.ID).
		SetName(t.Name).
		SetSubdomain(t.Subdomain).
		SetAdminEmail(t.AdminEmail).
		SetPlanID(t.PlanID).
		SetEnabled(t.Enabled).
		SetNillableAeTitle(lo.EmptyableToPtr(t.AETitle)).
		SetNillableServiceAddress(lo.EmptyableToPtr(t.ServiceAddress)).
		SetMetadata(t.Metadata).
		SetTenantID(t.TenantID).
		SetStatus(string(t.Status)).
		SetCreatedBy(t.CreatedBy).
		SetUpdatedBy(t.UpdatedBy).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A tenant with this subdomain already exists").
				WithReportableDetails(map[string]interface{}{
					"subdomain": t.Subdomain,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]interface{}{
				"subdomain": t.Subdomain,
			}).
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*domainTenant.Tenant, error) {
	span := StartRepositorySpan(ctx, "tenant", "get", map[string]interface{}{
		"tenant_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Tenant.Query().
		Where(
			entTenant.ID(id),
			entTenant.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"tenant_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get tenant").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainTenant.FromEnt(result), nil
}

func (r *tenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domainTenant.Tenant, error) {
	span := StartRepositorySpan(ctx, "tenant", "get_by_subdomain", map[string]interface{}{
		"subdomain": subdomain,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.Tenant.Query().
		Where(
			entTenant.Subdomain(subdomain),
			entTenant.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"subdomain": subdomain,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get tenant by subdomain").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainTenant.FromEnt(result), nil
}

func (r *tenantRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainTenant.Tenant, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	span := StartRepositorySpan(ctx, "tenant", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	query := client.Tenant.Query().
		Where(entTenant.Status(string(filter.GetStatus()))).
		Order(ent.Desc(entTenant.FieldCreatedAt))

	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainTenant.FromEntList(results), nil
}

func (r *tenantRepository) Update(ctx context.Context, t *domainTenant.Tenant) error {
	r.logger.Debugw("updating tenant", "tenant_id", t.ID)

	span := StartRepositorySpan(ctx, "tenant", "update", map[string]interface{}{
		"tenant_id": t.ID,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Tenant.UpdateOneID(t.ID).
		SetName(t.Name).
		SetAdminEmail(t.AdminEmail).
		SetPlanID(t.PlanID).
		SetEnabled(t.Enabled).
		SetNillableAeTitle(lo.EmptyableToPtr(t.AETitle)).
		SetNillableServiceAddress(lo.EmptyableToPtr(t.ServiceAddress)).
		SetMetadata(t.Metadata).
		SetStatus(string(t.Status)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"tenant_id": t.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *tenantRepository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	r.logger.Debugw("setting tenant enabled flag", "tenant_id", id, "enabled", enabled)

	span := StartRepositorySpan(ctx, "tenant", "set_enabled", map[string]interface{}{
		"tenant_id": id,
		"enabled":   enabled,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Tenant.UpdateOneID(id).
		SetEnabled(enabled).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"tenant_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update tenant enabled flag").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *tenantRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting tenant", "tenant_id", id)

	span := StartRepositorySpan(ctx, "tenant", "delete", map[string]interface{}{
		"tenant_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.Tenant.UpdateOneID(id).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"tenant_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete tenant").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
