package service

import (
	"strings"
	"testing"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ContractServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ContractService
	params  ServiceParams
}

func TestContractService(t *testing.T) {
	suite.Run(t, new(ContractServiceSuite))
}

func (s *ContractServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:     s.GetLogger(),
		Config:     s.GetConfig(),
		TenantRepo: s.GetStores().TenantRepo,
		PlanRepo:   s.GetStores().PlanRepo,
		SubRepo:    s.GetStores().SubscriptionRepo,
	}
	s.service = NewContractService(s.params)
}

func (s *ContractServiceSuite) seedRecords() {
	p := &plan.Plan{
		ID:            "plan-1",
		Name:          "Standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: types.BillingPeriodMonthly,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))

	t := &tenant.Tenant{
		ID:         "tenant-1",
		Name:       "Radiology Clinic",
		Subdomain:  "clinic-one",
		AdminEmail: "admin@clinic-one.example.com",
		PlanID:     "plan-1",
		Enabled:    true,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), t))

	sub := &subscription.Subscription{
		ID:                 "sub-1",
		PlanID:             "plan-1",
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		ExpiresAt:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}
	sub.TenantID = "tenant-1"
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
}

func (s *ContractServiceSuite) TestRenderContractDefaultTemplate() {
	s.seedRecords()

	resp, err := s.service.RenderContract(s.GetContext(), dto.RenderContractRequest{
		TenantID: "tenant-1",
	})
	s.NoError(err)
	s.Equal("tenant-1", resp.TenantID)
	s.True(strings.Contains(resp.Content, "SERVICE AGREEMENT"))
	s.True(strings.Contains(resp.Content, "Radiology Clinic"))
	s.True(strings.Contains(resp.Content, "admin@clinic-one.example.com"))
	s.True(strings.Contains(resp.Content, "Standard plan at 99.00 USD"))
	s.True(strings.Contains(resp.Content, "February 15, 2026"))
	s.True(strings.Contains(resp.Content, "expires on March 15, 2026"))
	s.False(strings.Contains(resp.Content, "{{"))
}

func (s *ContractServiceSuite) TestRenderContractCustomTemplate() {
	s.seedRecords()

	resp, err := s.service.RenderContract(s.GetContext(), dto.RenderContractRequest{
		TenantID: "tenant-1",
		Template: "Agreement with {{tenant_name}} ({{unknown_var}})",
	})
	s.NoError(err)
	s.Equal("Agreement with Radiology Clinic ({{unknown_var}})", resp.Content)
}

func (s *ContractServiceSuite) TestRenderContractWithoutSubscription() {
	t := &tenant.Tenant{
		ID:         "tenant-2",
		Name:       "New Clinic",
		Subdomain:  "new-clinic",
		AdminEmail: "admin@new-clinic.example.com",
		Enabled:    true,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	t.CreatedAt = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), t))

	resp, err := s.service.RenderContract(s.GetContext(), dto.RenderContractRequest{
		TenantID: "tenant-2",
		Template: "Effective {{effective_date}}, plan {{plan_name}}, expires {{expiry_date}}",
	})
	s.NoError(err)

	// Effective date falls back to the tenant creation date; plan and expiry
	// render blank
	s.Equal("Effective January 10, 2026, plan , expires ", resp.Content)
}

func (s *ContractServiceSuite) TestRenderContractUnknownTenant() {
	resp, err := s.service.RenderContract(s.GetContext(), dto.RenderContractRequest{
		TenantID: "nonexistent",
	})
	s.Error(err)
	s.Nil(resp)
}

func (s *ContractServiceSuite) TestRenderContractRequiresTenantID() {
	resp, err := s.service.RenderContract(s.GetContext(), dto.RenderContractRequest{})
	s.Error(err)
	s.Nil(resp)
}
