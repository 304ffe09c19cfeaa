package dto

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/bondcompany"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type CreateBondCompanyRequest struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r *CreateBondCompanyRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateBondCompanyRequest) ToBondCompany(ctx context.Context) *bondcompany.BondCompany {
	return &bondcompany.BondCompany{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOND_COMPANY),
		Code:      r.Code,
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type BondCompanyResponse struct {
	*bondcompany.BondCompany
}

type ListBondCompaniesResponse struct {
	Items []*BondCompanyResponse `json:"items"`
	Total int                    `json:"total"`
}
