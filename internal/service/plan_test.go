package service

import (
	"testing"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanService
	params  ServiceParams
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		Cache:           s.GetCache(),
		TenantRepo:      s.GetStores().TenantRepo,
		PlanRepo:        s.GetStores().PlanRepo,
		SubRepo:         s.GetStores().SubscriptionRepo,
		BondCompanyRepo: s.GetStores().BondCompanyRepo,
		UserRepo:        s.GetStores().UserRepo,
		PageRepo:        s.GetStores().PageRepo,
		StudyRepo:       s.GetStores().StudyRepo,
	}
	s.service = NewPlanService(s.params)
}

func (s *PlanServiceSuite) TestCreatePlan() {
	s.Run("Valid Plan", func() {
		req := dto.CreatePlanRequest{
			Name:          "Standard",
			LookupKey:     "standard",
			Description:   "Monthly PACS hosting",
			Price:         decimal.NewFromInt(99),
			Currency:      "usd",
			BillingPeriod: types.BillingPeriodMonthly,
		}

		resp, err := s.service.CreatePlan(s.GetContext(), req)
		s.NoError(err)
		s.NotNil(resp)
		s.Equal(req.Name, resp.Name)
		s.Equal(req.LookupKey, resp.LookupKey)
		s.True(resp.Price.Equal(req.Price))
	})

	s.Run("Invalid Billing Period", func() {
		req := dto.CreatePlanRequest{
			Name:          "Broken",
			Price:         decimal.NewFromInt(99),
			Currency:      "usd",
			BillingPeriod: types.BillingPeriod("weekly"),
		}

		resp, err := s.service.CreatePlan(s.GetContext(), req)
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})

	s.Run("Missing Currency", func() {
		req := dto.CreatePlanRequest{
			Name:          "Broken",
			Price:         decimal.NewFromInt(99),
			BillingPeriod: types.BillingPeriodMonthly,
		}

		resp, err := s.service.CreatePlan(s.GetContext(), req)
		s.Error(err)
		s.Nil(resp)
	})
}

func (s *PlanServiceSuite) TestGetPlanByLookupKey() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:          "Standard",
		LookupKey:     "standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: types.BillingPeriodMonthly,
	})
	s.NoError(err)

	resp, err := s.service.GetPlanByLookupKey(s.GetContext(), "standard")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	resp, err = s.service.GetPlanByLookupKey(s.GetContext(), "nonexistent")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *PlanServiceSuite) TestUpdatePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:          "Standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: types.BillingPeriodMonthly,
	})
	s.NoError(err)

	resp, err := s.service.UpdatePlan(s.GetContext(), created.ID, dto.UpdatePlanRequest{
		Name:  lo.ToPtr("Standard Plus"),
		Price: lo.ToPtr(decimal.NewFromInt(149)),
	})
	s.NoError(err)
	s.Equal("Standard Plus", resp.Name)
	s.True(resp.Price.Equal(decimal.NewFromInt(149)))
}

func (s *PlanServiceSuite) TestDeletePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:          "Standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: types.BillingPeriodMonthly,
	})
	s.NoError(err)

	s.Run("Blocked By Active Subscription", func() {
		sub := &subscription.Subscription{
			ID:                 "sub-1",
			PlanID:             created.ID,
			SubscriptionStatus: types.SubscriptionStatusActive,
			StartDate:          time.Now().UTC(),
			ExpiresAt:          time.Now().UTC().AddDate(0, 1, 0),
			BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
		}
		sub.TenantID = "tenant-1"
		s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))

		err := s.service.DeletePlan(s.GetContext(), created.ID)
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})

	s.Run("Allowed After Subscription Ends", func() {
		s.NoError(s.GetStores().SubscriptionRepo.UpdateStatus(s.GetContext(), "sub-1", types.SubscriptionStatusExpired))

		s.NoError(s.service.DeletePlan(s.GetContext(), created.ID))

		resp, err := s.service.GetPlan(s.GetContext(), created.ID)
		s.Error(err)
		s.Nil(resp)
	})
}
