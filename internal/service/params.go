package service

import (
	"github.com/pacsflow/pacsflow/internal/cache"
	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/domain/bondcompany"
	"github.com/pacsflow/pacsflow/internal/domain/page"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/study"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/domain/user"
	"github.com/pacsflow/pacsflow/internal/email"
	"github.com/pacsflow/pacsflow/internal/integration/geocode"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
)

// ServiceParams holds the dependencies shared by all services. Services
// embed it so constructors stay flat and new dependencies need no
// signature changes.
type ServiceParams struct {
	Logger   *logger.Logger
	Config   *config.Configuration
	Resolver postgres.TenantClientResolver
	Cache    cache.Cache

	// catalog repositories
	TenantRepo      tenant.Repository
	PlanRepo        plan.Repository
	SubRepo         subscription.Repository
	BondCompanyRepo bondcompany.Repository

	// tenant database repositories
	UserRepo  user.Repository
	PageRepo  page.Repository
	StudyRepo study.Repository

	// integrations
	EmailService  *email.Email
	GeocodeClient geocode.GeocodeClient
}
