package service

import (
	"testing"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
	params  ServiceParams
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
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
	s.service = NewSubscriptionService(s.params)
}

func (s *SubscriptionServiceSuite) seedTenant(id, subdomain string) *tenant.Tenant {
	t := &tenant.Tenant{
		ID:         id,
		Name:       "Radiology Clinic",
		Subdomain:  subdomain,
		AdminEmail: "admin@" + subdomain + ".example.com",
		Enabled:    true,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), t))
	return t
}

func (s *SubscriptionServiceSuite) seedPlan(id string, period types.BillingPeriod, trialDays int) *plan.Plan {
	p := &plan.Plan{
		ID:            id,
		Name:          "Standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: period,
		TrialDays:     trialDays,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))
	return p
}

func (s *SubscriptionServiceSuite) seedSubscription(id, tenantID, planID string, status types.SubscriptionStatus, expiresAt time.Time) *subscription.Subscription {
	sub := &subscription.Subscription{
		ID:                 id,
		PlanID:             planID,
		SubscriptionStatus: status,
		StartDate:          expiresAt.AddDate(0, -1, 0),
		ExpiresAt:          expiresAt,
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}
	sub.TenantID = tenantID
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
	return sub
}

func (s *SubscriptionServiceSuite) TestCreateSubscription() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)

	s.Run("Valid Subscription", func() {
		resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			TenantID: "tenant-1",
			PlanID:   "plan-1",
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal(types.SubscriptionStatusActive, resp.SubscriptionStatus)
		s.False(resp.ExpiresAt.IsZero())
		s.WithinDuration(time.Now().UTC().AddDate(0, 1, 0), resp.ExpiresAt, time.Minute)
	})

	s.Run("Tenant Already Has Current Subscription", func() {
		resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			TenantID: "tenant-1",
			PlanID:   "plan-1",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsAlreadyExists(err))
	})

	s.Run("Missing Plan", func() {
		resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			TenantID: "tenant-1",
		})
		s.Error(err)
		s.Nil(resp)
	})
}

func (s *SubscriptionServiceSuite) TestCreateSubscriptionTrialPlan() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-trial", types.BillingPeriodMonthly, 14)

	resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		TenantID: "tenant-1",
		PlanID:   "plan-trial",
	})
	s.NoError(err)
	s.NotNil(resp)
	s.Equal(types.SubscriptionStatusTrialing, resp.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestCancelSubscription() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 1, 0))

	resp, err := s.service.CancelSubscription(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, resp.SubscriptionStatus)
	s.NotNil(resp.CancelledAt)

	// Cancelling twice is rejected
	resp, err = s.service.CancelSubscription(s.GetContext(), "sub-1")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *SubscriptionServiceSuite) TestRenewSubscription() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusExpired, time.Now().UTC().AddDate(0, 0, -10))
	s.NoError(s.GetStores().TenantRepo.SetEnabled(s.GetContext(), "tenant-1", false))

	resp, err := s.service.RenewSubscription(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, resp.SubscriptionStatus)
	s.True(resp.ExpiresAt.After(time.Now().UTC()))

	// Renewal reinstates the suspended tenant
	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.True(t.Enabled)
}

func (s *SubscriptionServiceSuite) TestRenewCancelledSubscriptionKeepsTenantDisabled() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusCancelled, time.Now().UTC().AddDate(0, 0, -10))

	// Disabled by an operator, not by the expiry check
	s.NoError(s.GetStores().TenantRepo.SetEnabled(s.GetContext(), "tenant-1", false))

	resp, err := s.service.RenewSubscription(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, resp.SubscriptionStatus)
	s.Nil(resp.CancelledAt)

	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.False(t.Enabled)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsExpiresLapsed() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.True(resp.Success)
	s.Empty(resp.Error)
	s.Len(resp.Outcomes, 1)
	s.Equal("sub-1", resp.Outcomes[0].SubscriptionID)
	s.True(resp.Outcomes[0].Expired)
	s.True(resp.Outcomes[0].TenantDeactivated)

	sub, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, sub.SubscriptionStatus)

	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.False(t.Enabled)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsLeavesOthersAlone() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedTenant("tenant-2", "clinic-two")
	s.seedTenant("tenant-3", "clinic-three")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)

	// Not yet expired
	s.seedSubscription("sub-future", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, 7))
	// Cancelled subscriptions are never expired by the check
	s.seedSubscription("sub-cancelled", "tenant-2", "plan-1", types.SubscriptionStatusCancelled, time.Now().UTC().AddDate(0, 0, -7))
	// Trialing subscriptions are not selected either
	s.seedSubscription("sub-trialing", "tenant-3", "plan-1", types.SubscriptionStatusTrialing, time.Now().UTC().AddDate(0, 0, -1))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.True(resp.Success)
	s.Empty(resp.Outcomes)

	for id, status := range map[string]types.SubscriptionStatus{
		"sub-future":    types.SubscriptionStatusActive,
		"sub-cancelled": types.SubscriptionStatusCancelled,
		"sub-trialing":  types.SubscriptionStatusTrialing,
	} {
		sub, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), id)
		s.NoError(err)
		s.Equal(status, sub.SubscriptionStatus)
	}

	for _, id := range []string{"tenant-1", "tenant-2", "tenant-3"} {
		t, err := s.GetStores().TenantRepo.Get(s.GetContext(), id)
		s.NoError(err)
		s.True(t.Enabled)
	}
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsIsIdempotent() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	first, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.True(first.Success)
	s.Len(first.Outcomes, 1)

	// The second run finds nothing; already expired rows are not re-selected
	second, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.True(second.Success)
	s.Empty(second.Outcomes)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsPartialFailure() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedTenant("tenant-2", "clinic-two")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -2))
	s.seedSubscription("sub-2", "tenant-2", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	s.GetStores().SubscriptionRepo.FailUpdateStatus("sub-1", ierr.NewError("connection reset").Mark(ierr.ErrDatabase))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.False(resp.Success)
	s.Equal("failed to process 1 of 2 expired subscriptions", resp.Error)
	s.Len(resp.Outcomes, 2)

	// sub-1 failed before any state change
	s.False(resp.Outcomes[0].Expired)
	s.False(resp.Outcomes[0].TenantDeactivated)
	s.NotEmpty(resp.Outcomes[0].Error)

	// sub-2 was processed normally
	s.True(resp.Outcomes[1].Expired)
	s.True(resp.Outcomes[1].TenantDeactivated)

	t1, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.True(t1.Enabled)

	t2, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-2")
	s.NoError(err)
	s.False(t2.Enabled)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsDeactivationFailure() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	s.GetStores().TenantRepo.FailSetEnabled("tenant-1", ierr.NewError("connection reset").Mark(ierr.ErrDatabase))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.False(resp.Success)
	s.Len(resp.Outcomes, 1)

	// The subscription expired but the cascade failed
	s.True(resp.Outcomes[0].Expired)
	s.False(resp.Outcomes[0].TenantDeactivated)
	s.NotEmpty(resp.Outcomes[0].Error)

	sub, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, sub.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsDeactivationDisabled() {
	s.params.Config.Billing.DeactivateTenantOnExpiry = false
	s.service = NewSubscriptionService(s.params)

	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.NoError(err)
	s.True(resp.Success)
	s.Len(resp.Outcomes, 1)
	s.True(resp.Outcomes[0].Expired)
	s.False(resp.Outcomes[0].TenantDeactivated)

	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.True(t.Enabled)
}

func (s *SubscriptionServiceSuite) TestCheckSubscriptionsScanFailure() {
	s.seedTenant("tenant-1", "clinic-one")
	s.seedPlan("plan-1", types.BillingPeriodMonthly, 0)
	s.seedSubscription("sub-1", "tenant-1", "plan-1", types.SubscriptionStatusActive, time.Now().UTC().AddDate(0, 0, -1))

	s.GetStores().SubscriptionRepo.FailListExpired(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	resp, err := s.service.CheckSubscriptions(s.GetContext())
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsDatabase(err))

	// Nothing was touched when the scan itself failed
	sub, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, sub.SubscriptionStatus)

	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), "tenant-1")
	s.NoError(err)
	s.True(t.Enabled)
}

func (s *SubscriptionServiceSuite) TestNextExpiry() {
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	s.Equal(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), nextExpiry(start, types.BillingPeriodMonthly))
	s.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), nextExpiry(start, types.BillingPeriodAnnual))
}
