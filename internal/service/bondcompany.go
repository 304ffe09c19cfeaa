package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// BondCompanyService serves security bond company lookups from the shared
// catalog.
type BondCompanyService interface {
	CreateBondCompany(ctx context.Context, req dto.CreateBondCompanyRequest) (*dto.BondCompanyResponse, error)
	GetBondCompany(ctx context.Context, id string) (*dto.BondCompanyResponse, error)
	GetBondCompanyByCode(ctx context.Context, code string) (*dto.BondCompanyResponse, error)
	ListBondCompanies(ctx context.Context, filter *types.QueryFilter) (*dto.ListBondCompaniesResponse, error)
}

type bondCompanyService struct {
	ServiceParams
}

func NewBondCompanyService(params ServiceParams) BondCompanyService {
	return &bondCompanyService{
		ServiceParams: params,
	}
}

func (s *bondCompanyService) CreateBondCompany(ctx context.Context, req dto.CreateBondCompanyRequest) (*dto.BondCompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	company := req.ToBondCompany(ctx)
	if err := company.Validate(); err != nil {
		return nil, err
	}

	if err := s.BondCompanyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return &dto.BondCompanyResponse{BondCompany: company}, nil
}

func (s *bondCompanyService) GetBondCompany(ctx context.Context, id string) (*dto.BondCompanyResponse, error) {
	if id == "" {
		return nil, ierr.NewError("bond company ID is required").
			WithHint("Please provide a valid bond company ID").
			Mark(ierr.ErrValidation)
	}

	company, err := s.BondCompanyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.BondCompanyResponse{BondCompany: company}, nil
}

func (s *bondCompanyService) GetBondCompanyByCode(ctx context.Context, code string) (*dto.BondCompanyResponse, error) {
	if code == "" {
		return nil, ierr.NewError("code is required").
			WithHint("Please provide a valid bond company code").
			Mark(ierr.ErrValidation)
	}

	company, err := s.BondCompanyRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return &dto.BondCompanyResponse{BondCompany: company}, nil
}

func (s *bondCompanyService) ListBondCompanies(ctx context.Context, filter *types.QueryFilter) (*dto.ListBondCompaniesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	companies, err := s.BondCompanyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListBondCompaniesResponse{
		Items: make([]*dto.BondCompanyResponse, len(companies)),
		Total: len(companies),
	}
	for i, company := range companies {
		response.Items[i] = &dto.BondCompanyResponse{BondCompany: company}
	}
	return response, nil
}
