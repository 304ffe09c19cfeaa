package bondcompany

import (
	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
)

// BondCompany is a shared catalog lookup row for security bond companies.
type BondCompany struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	types.BaseModel
}

// FromEnt converts ent.BondCompany to domain BondCompany
func FromEnt(b *ent.BondCompany) *BondCompany {
	if b == nil {
		return nil
	}

	return &BondCompany{
		ID:      b.ID,
		Code:    b.Code,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		BaseModel: types.BaseModel{
			TenantID:  b.TenantID,
			Status:    types.Status(b.Status),
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
			CreatedBy: b.CreatedBy,
			UpdatedBy: b.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.BondCompany to []*BondCompany
func FromEntList(companies []*ent.BondCompany) []*BondCompany {
	result := make([]*BondCompany, len(companies))
	for i, b := range companies {
		result[i] = FromEnt(b)
	}
	return result
}

// Validate validates the bond company
func (b *BondCompany) Validate() error {
	if b.Code == "" {
		return ierr.NewError("code is required").Mark(ierr.ErrValidation)
	}
	if b.Name == "" {
		return ierr.NewError("name is required").Mark(ierr.ErrValidation)
	}
	return nil
}
