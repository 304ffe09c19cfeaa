package dto

import (
	"github.com/pacsflow/pacsflow/internal/validator"
)

type RenderContractRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
	// Template overrides the default contract template when set. Variables
	// use the {{name}} form; unknown variables are left untouched.
	Template string `json:"template,omitempty"`
}

func (r *RenderContractRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RenderContractResponse struct {
	TenantID string `json:"tenant_id"`
	Content  string `json:"content"`
}
