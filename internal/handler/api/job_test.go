//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"content-scheduler/internal/handler/api"
	reqdto "content-scheduler/internal/handler/dto/request"
	resdto "content-scheduler/internal/handler/dto/response"
	"content-scheduler/internal/usecase/commands"
	"content-scheduler/internal/usecase/queries"
	"content-scheduler/tests/common/builder"
	"content-scheduler/tests/common/httptest"
	"content-scheduler/tests/common/testutil"
	commandsmock "content-scheduler/tests/mock/commands"
	queriesmock "content-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockJobCommands
	mockQueries  *queriesmock.MockJobQueries
	handler      *api.JobHandler
}

func (s *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockJobCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockJobQueries(s.mockCtrl)
	s.handler = api.NewJobHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/jobs", s.handler.List)
	s.router.GET("/jobs/:id", s.handler.Get)
	s.router.PATCH("/jobs/:id/schedule", s.handler.Reschedule)
	s.router.POST("/jobs/:id/cancel", s.handler.Cancel)
}

func (s *JobHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func (s *JobHandlerTestSuite) TestList() {
	s.Run("returns jobs with next cursor", func() {
		views := []*queries.JobView{builder.NewJobBuilder().BuildView()}
		next := &queries.Cursor{After: "next-token"}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.JobFilters{}, nil, 20).Return(views, next, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs", nil, "")

		var resp struct {
			Jobs       []*resdto.JobResponse `json:"jobs"`
			NextCursor string                `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp.Jobs, 1)
		s.Equal("next-token", resp.NextCursor)
	})

	s.Run("passes filters through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), 5).
			DoAndReturn(func(_ any, filters queries.JobFilters, cursor *queries.Cursor, _ int) ([]*queries.JobView, *queries.Cursor, error) {
				s.Require().NotNil(filters.Status)
				s.Require().NotNil(filters.Kind)
				s.Equal("failed", filters.Status.String())
				s.Equal("email_campaign", filters.Kind.String())
				s.Require().NotNil(cursor)
				s.Equal("abc", cursor.After)
				return nil, nil, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/jobs?status=failed&kind=email_campaign&limit=5&after=abc", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects unknown status", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs?status=paused", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid status")
	})

	s.Run("rejects unknown kind", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs?kind=tweet", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid kind")
	})

	s.Run("invalid cursor is 400", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *JobHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		view := builder.NewJobBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/"+view.ID.String(), nil, "")

		var resp resdto.JobResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID.String(), resp.ID)
		s.Equal("blog_publish", resp.Kind)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})

	s.Run("invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrJobNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *JobHandlerTestSuite) TestReschedule() {
	newAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success returns refreshed job", func() {
		view := builder.NewJobBuilder().WithScheduledAt(newAt).BuildView()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), view.ID, newAt).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		body := reqdto.RescheduleJobRequest{ScheduledAt: newAt}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+view.ID.String()+"/schedule", body, "")

		var resp resdto.JobResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(newAt.Unix(), resp.ScheduledAt)
	})

	s.Run("missing body is 400", func() {
		id := uuid.New()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+id.String()+"/schedule", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("malformed scheduled_at is 400", func() {
		id := uuid.New()
		body := testutil.DtoMap(s.T(), reqdto.RescheduleJobRequest{ScheduledAt: newAt},
			testutil.Field("scheduled_at", "not-a-timestamp"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+id.String()+"/schedule", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("terminal job is 409", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, newAt).Return(commands.ErrJobAlreadyFinished)

		body := reqdto.RescheduleJobRequest{ScheduledAt: newAt}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+id.String()+"/schedule", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Job already finished")
	})

	s.Run("unknown job is 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, newAt).Return(commands.ErrJobNotFound)

		body := reqdto.RescheduleJobRequest{ScheduledAt: newAt}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/jobs/"+id.String()+"/schedule", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *JobHandlerTestSuite) TestCancel() {
	s.Run("success returns refreshed job", func() {
		view := builder.NewJobBuilder().AsCancelled().BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs/"+view.ID.String()+"/cancel", nil, "")

		var resp resdto.JobResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("terminal job is 409", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(commands.ErrJobAlreadyFinished)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/jobs/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Job already finished")
	})
}
