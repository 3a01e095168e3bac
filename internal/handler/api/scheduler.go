package api

import (
	"net/http"

	resdto "content-scheduler/internal/handler/dto/response"
	"content-scheduler/internal/handler/httperr"
	"content-scheduler/internal/pkg/clock"
	"content-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	executor commands.ExecutorCommands
	syncer   commands.SyncCommands
	clk      clock.Clock
}

func NewSchedulerHandler(executor commands.ExecutorCommands, syncer commands.SyncCommands, clk clock.Clock) *SchedulerHandler {
	return &SchedulerHandler{executor: executor, syncer: syncer, clk: clk}
}

// @Summary Run due jobs
// @Description Execute every due job once, sequentially in scheduled order
// @Tags scheduler
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PassReportResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scheduler/run [post]
func (h *SchedulerHandler) Run(c *gin.Context) {
	report, err := h.executor.RunDue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Executor pass failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassReport(report, h.clk.Now()))
}

// @Summary Sync content into jobs
// @Description Mirror scheduled content items into job records
// @Tags scheduler
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SyncReportResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scheduler/sync [post]
func (h *SchedulerHandler) Sync(c *gin.Context) {
	report, err := h.syncer.Sync(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Sync failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncReport(report, h.clk.Now()))
}
