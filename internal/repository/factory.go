package repository

import (
	"github.com/pacsflow/pacsflow/internal/domain/bondcompany"
	"github.com/pacsflow/pacsflow/internal/domain/page"
	"github.com/pacsflow/pacsflow/internal/domain/plan"
	"github.com/pacsflow/pacsflow/internal/domain/study"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	"github.com/pacsflow/pacsflow/internal/domain/user"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/postgres"
	entRepo "github.com/pacsflow/pacsflow/internal/repository/ent"
)

// Catalog repositories run against the shared catalog database; tenant
// repositories resolve their connection per request from the context.

func NewTenantRepository(resolver postgres.TenantClientResolver, log *logger.Logger) tenant.Repository {
	return entRepo.NewTenantRepository(resolver.SharedClient(), log)
}

func NewPlanRepository(resolver postgres.TenantClientResolver, log *logger.Logger) plan.Repository {
	return entRepo.NewPlanRepository(resolver.SharedClient(), log)
}

func NewSubscriptionRepository(resolver postgres.TenantClientResolver, log *logger.Logger) subscription.Repository {
	return entRepo.NewSubscriptionRepository(resolver.SharedClient(), log)
}

func NewBondCompanyRepository(resolver postgres.TenantClientResolver, log *logger.Logger) bondcompany.Repository {
	return entRepo.NewBondCompanyRepository(resolver.SharedClient(), log)
}

func NewUserRepository(resolver postgres.TenantClientResolver, log *logger.Logger) user.Repository {
	return entRepo.NewUserRepository(resolver, log)
}

func NewPageRepository(resolver postgres.TenantClientResolver, log *logger.Logger) page.Repository {
	return entRepo.NewPageRepository(resolver, log)
}

func NewStudyRepository(resolver postgres.TenantClientResolver, log *logger.Logger) study.Repository {
	return entRepo.NewStudyRepository(resolver, log)
}
