package testutil

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/cache"
	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the in-memory repositories used by service tests.
type Stores struct {
	TenantRepo       *InMemoryTenantStore
	PlanRepo         *InMemoryPlanStore
	SubscriptionRepo *InMemorySubscriptionStore
	BondCompanyRepo  *InMemoryBondCompanyStore
	UserRepo         *InMemoryUserStore
	PageRepo         *InMemoryPageStore
	StudyRepo        *InMemoryStudyStore
}

// NewStores creates a fresh set of in-memory stores.
func NewStores() Stores {
	return Stores{
		TenantRepo:       NewInMemoryTenantStore(),
		PlanRepo:         NewInMemoryPlanStore(),
		SubscriptionRepo: NewInMemorySubscriptionStore(),
		BondCompanyRepo:  NewInMemoryBondCompanyStore(),
		UserRepo:         NewInMemoryUserStore(),
		PageRepo:         NewInMemoryPageStore(),
		StudyRepo:        NewInMemoryStudyStore(),
	}
}

// BaseServiceTestSuite provides common functionality for all service test suites.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	stores Stores
	cache  cache.Cache
}

// SetupTest is called before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupConfig()
	s.stores = NewStores()
	s.cache = cache.NewInMemoryCache()
}

// TearDownTest is called after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = types.SetTenantID(s.ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT))
	s.ctx = types.SetUserID(s.ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER))
	s.ctx = types.SetRequestID(s.ctx, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupConfig() {
	s.cfg = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
}

// GetContext returns a context carrying tenant, user and request identifiers.
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration.
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the test logger.
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the in-memory stores.
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the in-memory cache.
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// ClearStores resets every store to an empty state.
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.TenantRepo.Clear()
	s.stores.PlanRepo.Clear()
	s.stores.SubscriptionRepo.Clear()
	s.stores.BondCompanyRepo.Clear()
	s.stores.UserRepo.Clear()
	s.stores.PageRepo.Clear()
	s.stores.StudyRepo.Clear()
}
