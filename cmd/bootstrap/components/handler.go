package components

import (
	"content-scheduler/internal/handler"
	"content-scheduler/internal/handler/api"
	"content-scheduler/internal/handler/middleware"
	"content-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSchedulerHandler,
		api.NewJobHandler,
		NewTriggerAuth,
	),
	fx.Invoke(handler.NewRouter),
)

func NewTriggerAuth(cfg config.Config) *middleware.TriggerAuthMiddleware {
	return middleware.NewTriggerAuthMiddleware(cfg.Trigger)
}
