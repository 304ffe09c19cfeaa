package ent

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/ent"
	entPage "github.com/pacsflow/pacsflow/ent/page"
	domainPage "github.com/pacsflow/pacsflow/internal/domain/page"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

// pageRepository persists storefront pages in the tenant database resolved
// from the request context.
type pageRepository struct {
	resolver postgres.TenantClientResolver
	logger   *logger.Logger
}

// NewPageRepository creates a new page repository over the tenant client
// resolver.
func NewPageRepository(resolver postgres.TenantClientResolver, logger *logger.Logger) domainPage.Repository {
	return &pageRepository{
		resolver: resolver,
		logger:   logger,
	}
}

func (r *pageRepository) querier(ctx context.Context) (*ent.Client, error) {
	client, err := r.resolver.ClientForContext(ctx)
	if err != nil {
		return nil, err
	}
	return client.Querier(ctx), nil
}

func (r *pageRepository) Create(ctx context.Context, p *domainPage.Page) error {
	r.logger.Debugw("creating page", "page_id", p.ID, "slug", p.Slug)

	span := StartRepositorySpan(ctx, "page", "create", map[string]interface{}{
		"page_id": p.ID,
		"slug":    p.Slug,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.Page.
		Create().
		SetID(p.ID).
		SetSlug(p.Slug).
		SetTitle(p.Title).
		SetBody(p.Body).
		SetPublished(p.Published).
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
				WithHint("A page with this slug already exists").
				WithReportableDetails(map[string]interface{}{
					"slug": p.Slug,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create page").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *pageRepository) Get(ctx context.Context, id string) (*domainPage.Page, error) {
	span := StartRepositorySpan(ctx, "page", "get", map[string]interface{}{
		"page_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.Page.Query().
		Where(
			entPage.ID(id),
			entPage.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Page not found").
				WithReportableDetails(map[string]interface{}{
					"page_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get page").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPage.FromEnt(result), nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*domainPage.Page, error) {
	span := StartRepositorySpan(ctx, "page", "get_by_slug", map[string]interface{}{
		"slug": slug,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	result, err := client.Page.Query().
		Where(
			entPage.Slug(slug),
			entPage.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Page not found").
				WithReportableDetails(map[string]interface{}{
					"slug": slug,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get page by slug").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPage.FromEnt(result), nil
}

func (r *pageRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainPage.Page, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	span := StartRepositorySpan(ctx, "page", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	query := client.Page.Query().
		Where(entPage.Status(string(filter.GetStatus()))).
		Order(ent.Asc(entPage.FieldSlug))

	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list pages").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainPage.FromEntList(results), nil
}

func (r *pageRepository) Update(ctx context.Context, p *domainPage.Page) error {
	r.logger.Debugw("updating page", "page_id", p.ID)

	span := StartRepositorySpan(ctx, "page", "update", map[string]interface{}{
		"page_id": p.ID,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.Page.UpdateOneID(p.ID).
		SetSlug(p.Slug).
		SetTitle(p.Title).
		SetBody(p.Body).
		SetPublished(p.Published).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Page not found").
				WithReportableDetails(map[string]interface{}{
					"page_id": p.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update page").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *pageRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("deleting page", "page_id", id)

	span := StartRepositorySpan(ctx, "page", "delete", map[string]interface{}{
		"page_id": id,
	})
	defer FinishSpan(span)

	client, err := r.querier(ctx)
	if err != nil {
		SetSpanError(span, err)
		return err
	}

	_, err = client.Page.UpdateOneID(id).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Page not found").
				WithReportableDetails(map[string]interface{}{
					"page_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete page").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}
