package components

import (
	"fittingroom/internal/handler"
	"fittingroom/internal/handler/api"
	"fittingroom/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLeaseHandler,
		api.NewQueueHandler,
		api.NewOccupancyHandler,
		api.NewStreamHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
