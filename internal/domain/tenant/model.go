package tenant

import (
	"github.com/pacsflow/pacsflow/ent"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

// Tenant represents the domain model for one customer instance, identified
// by its subdomain.
type Tenant struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Subdomain      string            `json:"subdomain"`
	AdminEmail     string            `json:"admin_email"`
	PlanID         string            `json:"plan_id,omitempty"`
	Enabled        bool              `json:"enabled"`
	AETitle        string            `json:"ae_title,omitempty"`
	ServiceAddress string            `json:"service_address,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	types.BaseModel
}

// FromEnt converts ent.Tenant to domain Tenant
func FromEnt(t *ent.Tenant) *Tenant {
	if t == nil {
		return nil
	}

	return &Tenant{
		ID:             t.ID,
		Name:           t.Name,
		Subdomain:      t.Subdomain,
		AdminEmail:     t.AdminEmail,
		PlanID:         t.PlanID,
		Enabled:        t.Enabled,
		AETitle:        lo.FromPtr(t.AeTitle),
		ServiceAddress: lo.FromPtr(t.ServiceAddress),
		Metadata:       t.Metadata,
		BaseModel: types.BaseModel{
			TenantID:  t.TenantID,
			Status:    types.Status(t.Status),
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
			CreatedBy: t.CreatedBy,
			UpdatedBy: t.UpdatedBy,
		},
	}
}

// FromEntList converts []*ent.Tenant to []*Tenant
func FromEntList(tenants []*ent.Tenant) []*Tenant {
	result := make([]*Tenant, len(tenants))
	for i, t := range tenants {
		result[i] = FromEnt(t)
	}
	return result
}

// Validate validates the tenant
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return ierr.NewError("name is required").Mark(ierr.ErrValidation)
	}
	if t.Subdomain == "" {
		return ierr.NewError("subdomain is required").Mark(ierr.ErrValidation)
	}
	if t.AdminEmail == "" {
		return ierr.NewError("admin_email is required").Mark(ierr.ErrValidation)
	}
	// DICOM AE titles are at most 16 characters
	if len(t.AETitle) > 16 {
		return ierr.NewError("ae_title must be at most 16 characters").Mark(ierr.ErrValidation)
	}
	return nil
}
