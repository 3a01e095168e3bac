package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"content-scheduler/internal/handler/api"
	"content-scheduler/internal/handler/middleware"
	"content-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, schedulerHandler *api.SchedulerHandler, jobHandler *api.JobHandler, triggerMiddleware *middleware.TriggerAuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, schedulerHandler, jobHandler, triggerMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	// Cron providers commonly only speak GET; both verbs hit the run
	// endpoint, everything else gets an explicit 405.
	engine.HandleMethodNotAllowed = true
}

func setupRoutes(engine *gin.Engine, schedulerHandler *api.SchedulerHandler, jobHandler *api.JobHandler, triggerMiddleware *middleware.TriggerAuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		scheduler := apiGroup.Group("/scheduler")
		scheduler.Use(triggerMiddleware.RequireSecret())
		{
			addRoutes(scheduler, []route{
				{Method: http.MethodPost, Path: "/run", Handler: schedulerHandler.Run},
				{Method: http.MethodGet, Path: "/run", Handler: schedulerHandler.Run},
				{Method: http.MethodPost, Path: "/sync", Handler: schedulerHandler.Sync},
			})
		}

		jobs := apiGroup.Group("/jobs")
		jobs.Use(triggerMiddleware.RequireSecret())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodGet, Path: "", Handler: jobHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: jobHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/schedule", Handler: jobHandler.Reschedule},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: jobHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
