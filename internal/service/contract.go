package service

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/domain/contract"
)

// defaultContractTemplate is the service agreement rendered when a request
// does not carry its own template.
const defaultContractTemplate = `SERVICE AGREEMENT

This agreement is entered into on {{effective_date}} between PACSFlow and
{{tenant_name}} ("Customer"), reachable at {{admin_email}}.

Customer subscribes to the {{plan_name}} plan at {{plan_price}} per
{{billing_period}} period, served at https://{{tenant_subdomain}}.pacsflow.io.

Unless renewed, this agreement expires on {{expiry_date}}.`

// ContractService renders service agreement documents from tenant, plan and
// subscription records.
type ContractService interface {
	RenderContract(ctx context.Context, req dto.RenderContractRequest) (*dto.RenderContractResponse, error)
}

type contractService struct {
	ServiceParams
}

func NewContractService(params ServiceParams) ContractService {
	return &contractService{
		ServiceParams: params,
	}
}

func (s *contractService) RenderContract(ctx context.Context, req dto.RenderContractRequest) (*dto.RenderContractResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	c := &contract.Contract{Tenant: t}

	// Plan and subscription are optional inputs; a tenant without either
	// still renders, with those variables blank.
	if t.PlanID != "" {
		if p, err := s.PlanRepo.Get(ctx, t.PlanID); err == nil {
			c.Plan = p
		} else {
			s.Logger.Warnw("failed to load plan for contract", "tenant_id", t.ID, "plan_id", t.PlanID, "error", err)
		}
	}

	sub, err := s.SubRepo.GetCurrentByTenant(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		c.Subscription = sub
		c.EffectiveDate = sub.StartDate
	} else {
		c.EffectiveDate = t.CreatedAt
	}

	text := req.Template
	if text == "" {
		text = defaultContractTemplate
	}

	return &dto.RenderContractResponse{
		TenantID: t.ID,
		Content:  contract.Render(text, c),
	}, nil
}
