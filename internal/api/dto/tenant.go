package dto

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/pacsflow/pacsflow/internal/validator"
)

type CreateTenantRequest struct {
	Name           string            `json:"name" validate:"required"`
	Subdomain      string            `json:"subdomain" validate:"required,hostname_rfc1123"`
	AdminEmail     string            `json:"admin_email" validate:"required,email"`
	PlanID         string            `json:"plan_id,omitempty"`
	PlanLookupKey  string            `json:"plan_lookup_key,omitempty"`
	AETitle        string            `json:"ae_title,omitempty" validate:"max=16"`
	ServiceAddress string            `json:"service_address,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

func (r *CreateTenantRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTenantRequest) ToTenant(ctx context.Context) *tenant.Tenant {
	return &tenant.Tenant{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		Name:           r.Name,
		Subdomain:      r.Subdomain,
		AdminEmail:     r.AdminEmail,
		PlanID:         r.PlanID,
		Enabled:        true,
		AETitle:        r.AETitle,
		ServiceAddress: r.ServiceAddress,
		Metadata:       r.Metadata,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTenantRequest struct {
	Name           *string           `json:"name,omitempty"`
	AdminEmail     *string           `json:"admin_email,omitempty" validate:"omitempty,email"`
	AETitle        *string           `json:"ae_title,omitempty" validate:"omitempty,max=16"`
	ServiceAddress *string           `json:"service_address,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

func (r *UpdateTenantRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type TenantResponse struct {
	*tenant.Tenant
}

type ListTenantsResponse struct {
	Items []*TenantResponse `json:"items"`
	Total int               `json:"total"`
}

// TenantLocationResponse is a geocoded tenant service address
type TenantLocationResponse struct {
	TenantID    string `json:"tenant_id"`
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
