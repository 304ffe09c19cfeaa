package cron

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/domain/subscription"
	"github.com/pacsflow/pacsflow/internal/domain/tenant"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/pacsflow/pacsflow/internal/service"
	"github.com/pacsflow/pacsflow/internal/testutil"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/stretchr/testify/suite"
)

type SubscriptionCronSuite struct {
	suite.Suite
	stores  testutil.Stores
	handler *SubscriptionCronHandler
	router  *gin.Engine
}

func TestSubscriptionCron(t *testing.T) {
	suite.Run(t, new(SubscriptionCronSuite))
}

func (s *SubscriptionCronSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.stores = testutil.NewStores()
	log := logger.GetLogger()

	subscriptionService := service.NewSubscriptionService(service.ServiceParams{
		Logger:     log,
		Config:     config.GetDefaultConfig(),
		TenantRepo: s.stores.TenantRepo,
		PlanRepo:   s.stores.PlanRepo,
		SubRepo:    s.stores.SubscriptionRepo,
	})

	s.handler = NewSubscriptionCronHandler(subscriptionService, log)

	s.router = gin.New()
	s.router.GET("/api/cron/subscription-check", s.handler.CheckSubscriptions)
}

func (s *SubscriptionCronSuite) seed(subID, tenantID string, expiresAt time.Time) {
	ctx := types.SetUserID(context.Background(), types.DefaultUserID)

	t := &tenant.Tenant{
		ID:         tenantID,
		Name:       "Radiology Clinic",
		Subdomain:  tenantID,
		AdminEmail: "admin@example.com",
		Enabled:    true,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.stores.TenantRepo.Create(ctx, t))

	sub := &subscription.Subscription{
		ID:                 subID,
		PlanID:             "plan-1",
		SubscriptionStatus: types.SubscriptionStatusActive,
		StartDate:          expiresAt.AddDate(0, -1, 0),
		ExpiresAt:          expiresAt,
		BaseModel:          types.GetDefaultBaseModel(ctx),
	}
	sub.TenantID = tenantID
	s.NoError(s.stores.SubscriptionRepo.Create(ctx, sub))
}

func (s *SubscriptionCronSuite) check() (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, "/api/cron/subscription-check", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body map[string]interface{}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func (s *SubscriptionCronSuite) TestCheckNothingToExpire() {
	w, body := s.check()

	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, body["success"])
}

func (s *SubscriptionCronSuite) TestCheckExpiresLapsedSubscriptions() {
	s.seed("sub-1", "tenant-1", time.Now().UTC().AddDate(0, 0, -1))

	w, body := s.check()

	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, body["success"])

	outcomes, ok := body["outcomes"].([]interface{})
	s.True(ok)
	s.Len(outcomes, 1)

	sub, err := s.stores.SubscriptionRepo.Get(context.Background(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, sub.SubscriptionStatus)
}

func (s *SubscriptionCronSuite) TestCheckReportsScanFailure() {
	s.seed("sub-1", "tenant-1", time.Now().UTC().AddDate(0, 0, -1))
	s.stores.SubscriptionRepo.FailListExpired(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	w, body := s.check()

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])

	// The subscription was never touched
	sub, err := s.stores.SubscriptionRepo.Get(context.Background(), "sub-1")
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, sub.SubscriptionStatus)
}

func (s *SubscriptionCronSuite) TestCheckReportsFailures() {
	s.seed("sub-1", "tenant-1", time.Now().UTC().AddDate(0, 0, -1))
	s.stores.SubscriptionRepo.FailUpdateStatus("sub-1", ierr.NewError("connection reset").Mark(ierr.ErrDatabase))

	w, body := s.check()

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])
}
