package ent

import (
	"context"

	"github.com/pacsflow/pacsflow/ent"
	entBondCompany "github.com/pacsflow/pacsflow/ent/bondcompany"
	domainBondCompany "github.com/pacsflow/pacsflow/internal/domain/bondcompany"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	"github.com/pacsflow/pacsflow/internal/types"
)

type bondCompanyRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewBondCompanyRepository creates a new bond company repository over the
// shared catalog client.
func NewBondCompanyRepository(client postgres.IClient, logger *logger.Logger) domainBondCompany.Repository {
	return &bondCompanyRepository{
		client: client,
		logger: logger,
	}
}

func (r *bondCompanyRepository) Create(ctx context.Context, b *domainBondCompany.BondCompany) error {
	r.logger.Debugw("creating bond company", "bond_company_id", b.ID, "code", b.Code)

	span := StartRepositorySpan(ctx, "bond_company", "create", map[string]interface{}{
		"code": b.Code,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	_, err := client.BondCompany.
		Create().
		SetID(b.ID).
		SetCode(b.Code).
		SetName(b.Name).
		SetAddress(b.Address).
		SetPhone(b.Phone).
		SetTenantID(b.TenantID).
		SetStatus(string(b.Status)).
		SetCreatedBy(b.CreatedBy).
		SetUpdatedBy(b.UpdatedBy).
		SetCreatedAt(b.CreatedAt).
		SetUpdatedAt(b.UpdatedAt).
		Save(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A bond company with this code already exists").
				WithReportableDetails(map[string]interface{}{
					"code": b.Code,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create bond company").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *bondCompanyRepository) Get(ctx context.Context, id string) (*domainBondCompany.BondCompany, error) {
	span := StartRepositorySpan(ctx, "bond_company", "get", map[string]interface{}{
		"bond_company_id": id,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.BondCompany.Query().
		Where(
			entBondCompany.ID(id),
			entBondCompany.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Bond company not found").
				WithReportableDetails(map[string]interface{}{
					"bond_company_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get bond company").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainBondCompany.FromEnt(result), nil
}

func (r *bondCompanyRepository) GetByCode(ctx context.Context, code string) (*domainBondCompany.BondCompany, error) {
	span := StartRepositorySpan(ctx, "bond_company", "get_by_code", map[string]interface{}{
		"code": code,
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	result, err := client.BondCompany.Query().
		Where(
			entBondCompany.Code(code),
			entBondCompany.StatusNEQ(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		SetSpanError(span, err)
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Bond company not found").
				WithReportableDetails(map[string]interface{}{
					"code": code,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get bond company by code").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainBondCompany.FromEnt(result), nil
}

func (r *bondCompanyRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainBondCompany.BondCompany, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	span := StartRepositorySpan(ctx, "bond_company", "list", map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	})
	defer FinishSpan(span)

	client := r.client.Querier(ctx)
	query := client.BondCompany.Query().
		Where(entBondCompany.Status(string(filter.GetStatus()))).
		Order(ent.Asc(entBondCompany.FieldName))

	if !filter.IsUnlimited() {
		query = query.Limit(filter.GetLimit()).Offset(filter.GetOffset())
	}

	results, err := query.All(ctx)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list bond companies").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return domainBondCompany.FromEntList(results), nil
}
