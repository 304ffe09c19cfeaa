package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/pacsflow/pacsflow/internal/api"
	apiCron "github.com/pacsflow/pacsflow/internal/api/cron"
	v1 "github.com/pacsflow/pacsflow/internal/api/v1"
	"github.com/pacsflow/pacsflow/internal/auth"
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
	redisClient "github.com/pacsflow/pacsflow/internal/redis"
	"github.com/pacsflow/pacsflow/internal/repository"
	"github.com/pacsflow/pacsflow/internal/scheduler"
	"github.com/pacsflow/pacsflow/internal/service"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			provideRedisClient,
			provideCache,
			postgres.NewTenantClientResolver,

			repository.NewTenantRepository,
			repository.NewPlanRepository,
			repository.NewSubscriptionRepository,
			repository.NewBondCompanyRepository,
			repository.NewUserRepository,
			repository.NewPageRepository,
			repository.NewStudyRepository,

			email.NewEmailClient,
			email.NewEmail,
			geocode.NewClient,
			auth.NewService,

			provideServiceParams,
			service.NewTenantService,
			service.NewPlanService,
			service.NewSubscriptionService,
			service.NewBondCompanyService,
			service.NewUserService,
			service.NewPageService,
			service.NewStudyService,
			service.NewContractService,

			v1.NewHealthHandler,
			v1.NewTenantHandler,
			v1.NewPlanHandler,
			v1.NewSubscriptionHandler,
			v1.NewBondCompanyHandler,
			v1.NewUserHandler,
			v1.NewPageHandler,
			v1.NewStudyHandler,
			apiCron.NewSubscriptionCronHandler,

			provideHandlers,
			provideRouter,
			scheduler.New,
		),
		fx.Invoke(initSentry),
		fx.Invoke(startServer),
		fx.Invoke(startScheduler),
	)

	app.Run()
}

func provideRedisClient(cfg *config.Configuration, log *logger.Logger) (*redisClient.Client, error) {
	if cache.CacheType(cfg.Cache.Type) != cache.CacheTypeRedis {
		return nil, nil
	}
	return redisClient.NewClient(&cfg.Redis, log)
}

func provideCache(cfg *config.Configuration, client *redisClient.Client, log *logger.Logger) cache.Cache {
	return cache.Initialize(cfg, client, log)
}

func provideServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	resolver postgres.TenantClientResolver,
	cacheClient cache.Cache,
	tenantRepo tenant.Repository,
	planRepo plan.Repository,
	subRepo subscription.Repository,
	bondCompanyRepo bondcompany.Repository,
	userRepo user.Repository,
	pageRepo page.Repository,
	studyRepo study.Repository,
	emailService *email.Email,
	geocodeClient geocode.GeocodeClient,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:          log,
		Config:          cfg,
		Resolver:        resolver,
		Cache:           cacheClient,
		TenantRepo:      tenantRepo,
		PlanRepo:        planRepo,
		SubRepo:         subRepo,
		BondCompanyRepo: bondCompanyRepo,
		UserRepo:        userRepo,
		PageRepo:        pageRepo,
		StudyRepo:       studyRepo,
		EmailService:    emailService,
		GeocodeClient:   geocodeClient,
	}
}

func provideHandlers(
	health *v1.HealthHandler,
	tenant *v1.TenantHandler,
	plan *v1.PlanHandler,
	subscription *v1.SubscriptionHandler,
	bondCompany *v1.BondCompanyHandler,
	user *v1.UserHandler,
	page *v1.PageHandler,
	study *v1.StudyHandler,
	subscriptionCron *apiCron.SubscriptionCronHandler,
) api.Handlers {
	return api.Handlers{
		Health:           health,
		Tenant:           tenant,
		Plan:             plan,
		Subscription:     subscription,
		BondCompany:      bondCompany,
		User:             user,
		Page:             page,
		Study:            study,
		SubscriptionCron: subscriptionCron,
	}
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	log *logger.Logger,
	authService auth.Service,
	tenantService service.TenantService,
) *gin.Engine {
	if cfg.Deployment.Mode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, cfg, log, authService, tenantService)
}

func initSentry(cfg *config.Configuration, log *logger.Logger) error {
	if !cfg.Sentry.Enabled {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.SampleRate,
		EnableTracing:    true,
	})
	if err != nil {
		return err
	}

	log.Infow("sentry initialized", "environment", cfg.Sentry.Environment)
	return nil
}

func startServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	resolver postgres.TenantClientResolver,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Errorw("server shutdown error", "error", err)
			}
			if cfg.Sentry.Enabled {
				sentry.Flush(2 * time.Second)
			}
			return resolver.Close()
		},
	})
}

func startScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sched.Start()
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
