//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/handler/api"
	resdto "content-scheduler/internal/handler/dto/response"
	"content-scheduler/internal/handler/middleware"
	"content-scheduler/internal/pkg/clock"
	"content-scheduler/internal/pkg/config"
	"content-scheduler/internal/usecase/commands"
	"content-scheduler/tests/common/httptest"
	commandsmock "content-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testTriggerSecret = "test-trigger-secret"

type SchedulerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockExecutor *commandsmock.MockExecutorCommands
	mockSyncer   *commandsmock.MockSyncCommands
	clk          *clock.MockClock
	handler      *api.SchedulerHandler
}

func (s *SchedulerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.HandleMethodNotAllowed = true

	s.mockCtrl = gomock.NewController(s.T())
	s.mockExecutor = commandsmock.NewMockExecutorCommands(s.mockCtrl)
	s.mockSyncer = commandsmock.NewMockSyncCommands(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.handler = api.NewSchedulerHandler(s.mockExecutor, s.mockSyncer, s.clk)

	trigger := middleware.NewTriggerAuthMiddleware(config.TriggerConfig{Secret: testTriggerSecret})

	group := s.router.Group("/api/scheduler")
	group.Use(trigger.RequireSecret())
	group.POST("/run", s.handler.Run)
	group.GET("/run", s.handler.Run)
	group.POST("/sync", s.handler.Sync)
}

func (s *SchedulerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerHandlerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerHandlerTestSuite))
}

func (s *SchedulerHandlerTestSuite) TestRun() {
	s.Run("returns pass report on success", func() {
		report := &commands.PassReport{
			Processed: 3,
			Succeeded: 2,
			Failed:    1,
			Errors: []commands.PassError{
				{JobID: uuid.New(), Kind: job.KindEmailCampaign, Message: "no active recipients"},
			},
		}
		s.mockExecutor.EXPECT().RunDue(gomock.Any()).Return(report, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/run", nil, testTriggerSecret)

		var resp resdto.PassReportResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(3, resp.Processed)
		s.Equal(2, resp.Succeeded)
		s.Equal(1, resp.Failed)
		s.Len(resp.Errors, 1)
		s.Equal(s.clk.Now().Unix(), resp.Timestamp)
	})

	s.Run("GET works for cron providers", func() {
		s.mockExecutor.EXPECT().RunDue(gomock.Any()).Return(&commands.PassReport{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/scheduler/run", nil, testTriggerSecret)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing secret is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/run", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("wrong secret is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/run", nil, "wrong-secret")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("unsupported method is 405", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/scheduler/run", nil, testTriggerSecret)
		s.Equal(http.StatusMethodNotAllowed, w.Code)
	})

	s.Run("executor failure is 500", func() {
		s.mockExecutor.EXPECT().RunDue(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/run", nil, testTriggerSecret)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Executor pass failed")
	})
}

func (s *SchedulerHandlerTestSuite) TestSync() {
	s.Run("returns sync report", func() {
		report := &commands.SyncReport{
			CreatedPosts:     2,
			CreatedCampaigns: 1,
			Errors: []commands.SyncError{
				{ItemID: uuid.New(), Message: "insert failed"},
			},
		}
		s.mockSyncer.EXPECT().Sync(gomock.Any()).Return(report, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/sync", nil, testTriggerSecret)

		var resp resdto.SyncReportResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(2, resp.Created.BlogPublish)
		s.Equal(1, resp.Created.EmailCampaign)
		s.Len(resp.Errors, 1)
		s.Equal(s.clk.Now().Unix(), resp.Timestamp)
	})

	s.Run("missing secret is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/sync", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("sync failure is 500", func() {
		s.mockSyncer.EXPECT().Sync(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/scheduler/sync", nil, testTriggerSecret)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Sync failed")
	})
}

func (s *SchedulerHandlerTestSuite) TestOpenGateWithoutSecret() {
	// Separate router with no secret configured: the gate is open.
	router := gin.New()
	trigger := middleware.NewTriggerAuthMiddleware(config.TriggerConfig{})
	group := router.Group("/api/scheduler")
	group.Use(trigger.RequireSecret())
	group.POST("/run", s.handler.Run)

	s.mockExecutor.EXPECT().RunDue(gomock.Any()).Return(&commands.PassReport{}, nil)

	w := httptest.PerformRequest(s.T(), router, http.MethodPost, "/api/scheduler/run", nil, "")
	s.Equal(http.StatusOK, w.Code)
}
