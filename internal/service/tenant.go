package service

import (
	"context"
	"time"

	"github.com/pacsflow/pacsflow/internal/api/dto"
	"github.com/pacsflow/pacsflow/internal/cache"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/email"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/samber/lo"
)

const tenantCachePrefix = "tenant:subdomain:"

// TenantService manages customer instances in the shared catalog database.
type TenantService interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*dto.TenantResponse, error)
	ListTenants(ctx context.Context, filter *types.QueryFilter) (*dto.ListTenantsResponse, error)
	UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	DeactivateTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	ReactivateTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	DeleteTenant(ctx context.Context, id string) error
	GeocodeServiceAddress(ctx context.Context, id string) (*dto.TenantLocationResponse, error)
}

type tenantService struct {
	ServiceParams
}

func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{
		ServiceParams: params,
	}
}

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.TenantRepo.GetBySubdomain(ctx, req.Subdomain)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("subdomain is already taken").
			WithHint("Choose a different subdomain").
			WithReportableDetails(map[string]interface{}{
				"subdomain": req.Subdomain,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	// Resolve the plan up front so signup fails before anything persists.
	p, err := s.resolvePlan(ctx, req.PlanID, req.PlanLookupKey)
	if err != nil {
		return nil, err
	}

	t := req.ToTenant(ctx)
	t.PlanID = p.ID
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	// Open the initial subscription. Trial plans start in trialing with a
	// trial length expiry, paid plans run one full billing period.
	now := time.Now().UTC()
	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		PlanID:             p.ID,
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          now,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	sub.TenantID = t.ID
	if p.TrialDays > 0 {
		sub.SubscriptionStatus = types.SubscriptionStatusTrialing
		sub.ExpiresAt = now.AddDate(0, 0, p.TrialDays)
	} else {
		sub.ExpiresAt = nextExpiry(now, p.BillingPeriod)
	}

	if err := s.SubRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created tenant",
		"tenant_id", t.ID,
		"subdomain", t.Subdomain,
		"plan_id", p.ID,
		"subscription_id", sub.ID,
	)

	s.sendWelcomeEmail(ctx, t, p.Name)

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	if id == "" {
		return nil, ierr.NewError("tenant ID is required").
			WithHint("Please provide a valid tenant ID").
			Mark(ierr.ErrValidation)
	}

	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) GetTenantBySubdomain(ctx context.Context, subdomain string) (*dto.TenantResponse, error) {
	if subdomain == "" {
		return nil, ierr.NewError("subdomain is required").
			WithHint("Please provide a valid subdomain").
			Mark(ierr.ErrValidation)
	}

	if cached := s.getCachedTenant(ctx, subdomain); cached != nil {
		return &dto.TenantResponse{Tenant: cached}, nil
	}

	t, err := s.TenantRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	s.setCachedTenant(ctx, subdomain, t)

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) ListTenants(ctx context.Context, filter *types.QueryFilter) (*dto.ListTenantsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tenants, err := s.TenantRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &dto.ListTenantsResponse{
		Items: make([]*dto.TenantResponse, len(tenants)),
		Total: len(tenants),
	}
	for i, t := range tenants {
		response.Items[i] = &dto.TenantResponse{Tenant: t}
	}
	return response, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.AdminEmail != nil {
		t.AdminEmail = *req.AdminEmail
	}
	if req.AETitle != nil {
		t.AETitle = *req.AETitle
	}
	if req.ServiceAddress != nil {
		t.ServiceAddress = *req.ServiceAddress
	}
	if req.Metadata != nil {
		t.Metadata = req.Metadata
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.invalidateCachedTenant(ctx, t.Subdomain)

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) DeactivateTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	return s.setEnabled(ctx, id, false)
}

func (s *tenantService) ReactivateTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	return s.setEnabled(ctx, id, true)
}

func (s *tenantService) setEnabled(ctx context.Context, id string, enabled bool) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Enabled == enabled {
		return &dto.TenantResponse{Tenant: t}, nil
	}

	if err := s.TenantRepo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}
	t.Enabled = enabled

	s.invalidateCachedTenant(ctx, t.Subdomain)

	s.Logger.Infow("changed tenant enabled state",
		"tenant_id", id,
		"subdomain", t.Subdomain,
		"enabled", enabled,
	)

	return &dto.TenantResponse{Tenant: t}, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, id string) error {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.TenantRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCachedTenant(ctx, t.Subdomain)

	s.Logger.Infow("deleted tenant", "tenant_id", id, "subdomain", t.Subdomain)
	return nil
}

func (s *tenantService) GeocodeServiceAddress(ctx context.Context, id string) (*dto.TenantLocationResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.ServiceAddress == "" {
		return nil, ierr.NewError("tenant has no service address").
			WithHint("Set a service address on the tenant first").
			Mark(ierr.ErrValidation)
	}

	result, err := s.GeocodeClient.SearchOne(ctx, t.ServiceAddress)
	if err != nil {
		return nil, err
	}

	return &dto.TenantLocationResponse{
		TenantID:    t.ID,
		Address:     t.ServiceAddress,
		DisplayName: result.DisplayName,
		Lat:         result.Lat,
		Lon:         result.Lon,
	}, nil
}

func (s *tenantService) resolvePlan(ctx context.Context, planID, lookupKey string) (*plan.Plan, error) {
	switch {
	case planID != "":
		return s.PlanRepo.Get(ctx, planID)
	case lookupKey != "":
		return s.PlanRepo.GetByLookupKey(ctx, lookupKey)
	default:
		return nil, ierr.NewError("plan is required").
			WithHint("Provide a plan_id or plan_lookup_key").
			Mark(ierr.ErrValidation)
	}
}

func (s *tenantService) sendWelcomeEmail(ctx context.Context, t *tenant.Tenant, planName string) {
	if s.EmailService == nil {
		return
	}

	_, err := s.EmailService.SendEmailWithTemplate(ctx, email.SendEmailWithTemplateRequest{
		ToAddress:    t.AdminEmail,
		Subject:      "Welcome to PACSFlow",
		TemplatePath: email.TemplateTenantWelcome,
		Data: map[string]interface{}{
			"tenant_name": t.Name,
			"subdomain":   t.Subdomain,
			"plan_name":   planName,
		},
	})
	if err != nil {
		s.Logger.Warnw("failed to send welcome email", "tenant_id", t.ID, "error", err)
	}
}

func (s *tenantService) getCachedTenant(ctx context.Context, subdomain string) *tenant.Tenant {
	if s.Cache == nil {
		return nil
	}

	value, found := s.Cache.Get(ctx, tenantCachePrefix+subdomain)
	if !found {
		return nil
	}

	t, ok := cache.UnmarshalCacheValue[tenant.Tenant](value)
	if !ok {
		s.Logger.Warnw("failed to unmarshal cached tenant", "subdomain", subdomain)
		return nil
	}
	return t
}

func (s *tenantService) setCachedTenant(ctx context.Context, subdomain string, t *tenant.Tenant) {
	if s.Cache == nil {
		return
	}
	s.Cache.Set(ctx, tenantCachePrefix+subdomain, lo.ToPtr(*t), cache.ExpiryTenantLookup)
}

func (s *tenantService) invalidateCachedTenant(ctx context.Context, subdomain string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Delete(ctx, tenantCachePrefix+subdomain)
}
