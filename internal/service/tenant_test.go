package service

import (
	"context"
	"testing"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/integration/geocode"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubGeocodeClient returns canned results without any network calls.
type stubGeocodeClient struct {
	results []geocode.Result
	err     error
}

func (c *stubGeocodeClient) Search(_ context.Context, _ string) ([]geocode.Result, error) {
	return c.results, c.err
}

func (c *stubGeocodeClient) SearchOne(_ context.Context, query string) (*geocode.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(c.results) == 0 {
		return nil, ierr.NewError("no geocoding results").
			WithReportableDetails(map[string]interface{}{"query": query}).
			Mark(ierr.ErrNotFound)
	}
	return &c.results[0], nil
}

type TenantServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TenantService
	geocode *stubGeocodeClient
	params  ServiceParams
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceSuite))
}

func (s *TenantServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.geocode = &stubGeocodeClient{}
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
		GeocodeClient:   s.geocode,
	}
	s.service = NewTenantService(s.params)
}

func (s *TenantServiceSuite) seedPlan(id, lookupKey string, trialDays int) *plan.Plan {
	p := &plan.Plan{
		ID:            id,
		LookupKey:     lookupKey,
		Name:          "Standard",
		Price:         decimal.NewFromInt(99),
		Currency:      "usd",
		BillingPeriod: types.BillingPeriodMonthly,
		TrialDays:     trialDays,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))
	return p
}

func (s *TenantServiceSuite) TestCreateTenant() {
	s.seedPlan("plan-1", "standard", 0)

	s.Run("Valid Tenant", func() {
		resp, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
			Name:       "Radiology Clinic",
			Subdomain:  "clinic-one",
			AdminEmail: "admin@clinic-one.example.com",
			PlanID:     "plan-1",
		})
		s.NoError(err)
		s.NotNil(resp)
		s.Equal("clinic-one", resp.Subdomain)
		s.True(resp.Enabled)

		// Signup opens the initial subscription
		sub, err := s.GetStores().SubscriptionRepo.GetCurrentByTenant(s.GetContext(), resp.ID)
		s.NoError(err)
		s.NotNil(sub)
		s.Equal(types.SubscriptionStatusActive, sub.SubscriptionStatus)
		s.Equal("plan-1", sub.PlanID)
	})

	s.Run("Duplicate Subdomain", func() {
		resp, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
			Name:       "Another Clinic",
			Subdomain:  "clinic-one",
			AdminEmail: "admin@other.example.com",
			PlanID:     "plan-1",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsAlreadyExists(err))
	})

	s.Run("Unknown Plan", func() {
		resp, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
			Name:       "Third Clinic",
			Subdomain:  "clinic-three",
			AdminEmail: "admin@three.example.com",
			PlanID:     "nonexistent",
		})
		s.Error(err)
		s.Nil(resp)
	})

	s.Run("Missing Plan Reference", func() {
		resp, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
			Name:       "Fourth Clinic",
			Subdomain:  "clinic-four",
			AdminEmail: "admin@four.example.com",
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})
}

func (s *TenantServiceSuite) TestCreateTenantWithTrialPlan() {
	s.seedPlan("plan-trial", "trial", 14)

	resp, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
		Name:          "Trial Clinic",
		Subdomain:     "trial-clinic",
		AdminEmail:    "admin@trial.example.com",
		PlanLookupKey: "trial",
	})
	s.NoError(err)
	s.NotNil(resp)

	sub, err := s.GetStores().SubscriptionRepo.GetCurrentByTenant(s.GetContext(), resp.ID)
	s.NoError(err)
	s.NotNil(sub)
	s.Equal(types.SubscriptionStatusTrialing, sub.SubscriptionStatus)
}

func (s *TenantServiceSuite) TestGetTenantBySubdomain() {
	s.seedPlan("plan-1", "standard", 0)
	created, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
		Name:       "Radiology Clinic",
		Subdomain:  "clinic-one",
		AdminEmail: "admin@clinic-one.example.com",
		PlanID:     "plan-1",
	})
	s.NoError(err)

	resp, err := s.service.GetTenantBySubdomain(s.GetContext(), "clinic-one")
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	// The second lookup is served from cache: a direct store change is not
	// visible until the cache entry is invalidated.
	stored, err := s.GetStores().TenantRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	stored.Name = "Renamed Clinic"
	s.NoError(s.GetStores().TenantRepo.Update(s.GetContext(), stored))

	cached, err := s.service.GetTenantBySubdomain(s.GetContext(), "clinic-one")
	s.NoError(err)
	s.Equal("Radiology Clinic", cached.Name)

	// Updating through the service invalidates the cached entry
	newName := "Updated Clinic"
	_, err = s.service.UpdateTenant(s.GetContext(), created.ID, dto.UpdateTenantRequest{Name: &newName})
	s.NoError(err)

	fresh, err := s.service.GetTenantBySubdomain(s.GetContext(), "clinic-one")
	s.NoError(err)
	s.Equal("Updated Clinic", fresh.Name)

	// Unknown subdomain
	resp, err = s.service.GetTenantBySubdomain(s.GetContext(), "nonexistent")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *TenantServiceSuite) TestDeactivateAndReactivateTenant() {
	s.seedPlan("plan-1", "standard", 0)
	created, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
		Name:       "Radiology Clinic",
		Subdomain:  "clinic-one",
		AdminEmail: "admin@clinic-one.example.com",
		PlanID:     "plan-1",
	})
	s.NoError(err)

	resp, err := s.service.DeactivateTenant(s.GetContext(), created.ID)
	s.NoError(err)
	s.False(resp.Enabled)

	t, err := s.GetStores().TenantRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.False(t.Enabled)

	resp, err = s.service.ReactivateTenant(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(resp.Enabled)
}

func (s *TenantServiceSuite) TestDeleteTenant() {
	s.seedPlan("plan-1", "standard", 0)
	created, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
		Name:       "Radiology Clinic",
		Subdomain:  "clinic-one",
		AdminEmail: "admin@clinic-one.example.com",
		PlanID:     "plan-1",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteTenant(s.GetContext(), created.ID))

	// A deleted tenant no longer resolves by subdomain
	resp, err := s.service.GetTenantBySubdomain(s.GetContext(), "clinic-one")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *TenantServiceSuite) TestGeocodeServiceAddress() {
	s.seedPlan("plan-1", "standard", 0)
	created, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
		Name:           "Radiology Clinic",
		Subdomain:      "clinic-one",
		AdminEmail:     "admin@clinic-one.example.com",
		PlanID:         "plan-1",
		ServiceAddress: "1600 Amphitheatre Parkway, Mountain View, CA",
	})
	s.NoError(err)

	s.Run("Successful Lookup", func() {
		s.geocode.results = []geocode.Result{{
			DisplayName: "1600 Amphitheatre Parkway, Mountain View, CA, USA",
			Lat:         "37.4224",
			Lon:         "-122.0842",
		}}

		resp, err := s.service.GeocodeServiceAddress(s.GetContext(), created.ID)
		s.NoError(err)
		s.Equal(created.ID, resp.TenantID)
		s.Equal("37.4224", resp.Lat)
		s.Equal("-122.0842", resp.Lon)
	})

	s.Run("No Service Address", func() {
		bare, err := s.service.CreateTenant(s.GetContext(), dto.CreateTenantRequest{
			Name:       "Bare Clinic",
			Subdomain:  "bare-clinic",
			AdminEmail: "admin@bare.example.com",
			PlanID:     "plan-1",
		})
		s.NoError(err)

		resp, err := s.service.GeocodeServiceAddress(s.GetContext(), bare.ID)
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsValidation(err))
	})

	s.Run("No Results", func() {
		s.geocode.results = nil

		resp, err := s.service.GeocodeServiceAddress(s.GetContext(), created.ID)
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsNotFound(err))
	})
}
