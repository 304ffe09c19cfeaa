package api

import (
	"github.com/pacsflow/pacsflow/internal/api/cron"
	v1 "github.com/pacsflow/pacsflow/internal/api/v1"
	"github.com/pacsflow/pacsflow/internal/auth"
	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/rest/middleware"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler wired into the router.
type Handlers struct {
	Health           *v1.HealthHandler
	Tenant           *v1.TenantHandler
	Plan             *v1.PlanHandler
	Subscription     *v1.SubscriptionHandler
	BondCompany      *v1.BondCompanyHandler
	User             *v1.UserHandler
	Page             *v1.PageHandler
	Study            *v1.StudyHandler
	SubscriptionCron *cron.SubscriptionCronHandler
}

// NewRouter builds the gin engine with the full middleware chain and all
// route groups. Catalog routes live under /api/v1, tenant scoped routes
// under /api/v1/t and resolve their database from the request's tenant.
func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	log *logger.Logger,
	authService auth.Service,
	tenantService service.TenantService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.SentryMiddleware(cfg))
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware(log))

	router.GET("/health", handlers.Health.Health)

	// Platform scheduler endpoints. Guarded by the shared cron secret, not
	// user auth.
	cronGroup := router.Group("/api/cron")
	cronGroup.Use(middleware.CronSecretMiddleware(cfg))
	{
		cronGroup.GET("/subscription-check", handlers.SubscriptionCron.CheckSubscriptions)
	}

	// Catalog administration over the shared database.
	admin := router.Group("/api/v1")
	if cfg.Auth.Secret != "" {
		admin.Use(middleware.AuthenticateMiddleware(authService))
	}
	{
		admin.POST("/tenants", handlers.Tenant.CreateTenant)
		admin.GET("/tenants", handlers.Tenant.ListTenants)
		admin.GET("/tenants/:id", handlers.Tenant.GetTenant)
		admin.PUT("/tenants/:id", handlers.Tenant.UpdateTenant)
		admin.DELETE("/tenants/:id", handlers.Tenant.DeleteTenant)
		admin.POST("/tenants/:id/deactivate", handlers.Tenant.DeactivateTenant)
		admin.POST("/tenants/:id/reactivate", handlers.Tenant.ReactivateTenant)
		admin.GET("/tenants/:id/location", handlers.Tenant.GeocodeServiceAddress)
		admin.POST("/tenants/:id/contract", handlers.Tenant.RenderContract)

		admin.POST("/plans", handlers.Plan.CreatePlan)
		admin.GET("/plans", handlers.Plan.ListPlans)
		admin.GET("/plans/:id", handlers.Plan.GetPlan)
		admin.PUT("/plans/:id", handlers.Plan.UpdatePlan)
		admin.DELETE("/plans/:id", handlers.Plan.DeletePlan)

		admin.POST("/subscriptions", handlers.Subscription.CreateSubscription)
		admin.GET("/subscriptions", handlers.Subscription.ListSubscriptions)
		admin.GET("/subscriptions/:id", handlers.Subscription.GetSubscription)
		admin.POST("/subscriptions/:id/cancel", handlers.Subscription.CancelSubscription)
		admin.POST("/subscriptions/:id/renew", handlers.Subscription.RenewSubscription)

		admin.POST("/bond-companies", handlers.BondCompany.CreateBondCompany)
		admin.GET("/bond-companies", handlers.BondCompany.ListBondCompanies)
		admin.GET("/bond-companies/lookup", handlers.BondCompany.GetBondCompanyByCode)
		admin.GET("/bond-companies/:id", handlers.BondCompany.GetBondCompany)
	}

	// Tenant scoped routes. The resolver middleware rejects unknown and
	// suspended tenants before any tenant database is touched.
	tenant := router.Group("/api/v1/t")
	tenant.Use(middleware.TenantResolverMiddleware(tenantService))
	tenant.Use(middleware.SentryTenantContextMiddleware)

	// Published pages are the tenant's public storefront.
	tenant.GET("/pages/slug/:slug", handlers.Page.GetPageBySlug)

	private := tenant.Group("")
	if cfg.Auth.Secret != "" {
		private.Use(middleware.AuthenticateMiddleware(authService))
	}
	{
		private.POST("/users", handlers.User.CreateUser)
		private.GET("/users", handlers.User.ListUsers)
		private.GET("/users/:id", handlers.User.GetUser)
		private.PUT("/users/:id", handlers.User.UpdateUser)
		private.DELETE("/users/:id", handlers.User.DeleteUser)

		private.POST("/pages", handlers.Page.CreatePage)
		private.GET("/pages", handlers.Page.ListPages)
		private.GET("/pages/:id", handlers.Page.GetPage)
		private.PUT("/pages/:id", handlers.Page.UpdatePage)
		private.DELETE("/pages/:id", handlers.Page.DeletePage)

		private.POST("/studies", handlers.Study.RegisterStudy)
		private.GET("/studies", handlers.Study.ListStudies)
		private.GET("/studies/uid/:uid", handlers.Study.GetStudyByUID)
		private.GET("/studies/:id", handlers.Study.GetStudy)
		private.DELETE("/studies/:id", handlers.Study.DeleteStudy)
	}

	return router
}
