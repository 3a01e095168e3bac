package api

import (
	"errors"
	"net/http"
	"strconv"

	"content-scheduler/internal/domain/job"
	reqdto "content-scheduler/internal/handler/dto/request"
	resdto "content-scheduler/internal/handler/dto/response"
	"content-scheduler/internal/handler/httperr"
	"content-scheduler/internal/usecase/commands"
	"content-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidFilter = errors.New("invalid filter value")

type JobHandler struct {
	cmds commands.JobCommands
	q    queries.JobQueries
}

func NewJobHandler(cmds commands.JobCommands, q queries.JobQueries) *JobHandler {
	return &JobHandler{cmds: cmds, q: q}
}

// @Summary List jobs
// @Description List jobs in scheduled order with optional status/kind filters and keyset pagination
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Job status filter"
// @Param kind query string false "Job kind filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filters queries.JobFilters
	if v := c.Query("status"); v != "" {
		status := job.Status(v)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidFilter, "Invalid status", nil)
			return
		}
		filters.Status = &status
	}
	if v := c.Query("kind"); v != "" {
		kind := job.Kind(v)
		if !kind.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidFilter, "Invalid kind", nil)
			return
		}
		filters.Kind = &kind
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"jobs": resdto.FromJobList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get job
// @Description Get a job by ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrJobNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary Reschedule job
// @Description Move the target time of a still-scheduled job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.RescheduleJobRequest true "Reschedule request"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id}/schedule [patch]
func (h *JobHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RescheduleJobRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Reschedule(c.Request.Context(), id, req.ScheduledAt); err != nil {
		abortJobCommandError(c, err, "Reschedule failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary Cancel job
// @Description Cancel a still-scheduled job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id}/cancel [post]
func (h *JobHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		abortJobCommandError(c, err, "Cancel failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

func abortJobCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrJobAlreadyFinished):
		httperr.AbortWithError(c, http.StatusConflict, err, "Job already finished", nil)
	case errors.Is(err, commands.ErrInvalidScheduledAt):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scheduled time", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
