package components

import (
	"autofin/internal/handler"
	"autofin/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSearchHandler,
		api.NewOfferHandler,
		api.NewUserHandler,
	),
	fx.Invoke(handler.NewRouter),
)
