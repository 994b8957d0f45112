package components

import (
	"quoteflow/internal/handler"
	"quoteflow/internal/handler/api"
	"quoteflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
