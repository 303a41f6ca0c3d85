package components

import (
	"leadgate/internal/handler"
	"leadgate/internal/handler/api"
	"leadgate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewQuoteHandler,
		api.NewLeadHandler,
		api.NewCreditHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
