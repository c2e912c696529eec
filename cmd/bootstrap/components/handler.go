package components

import (
	"salon-promo/internal/handler"
	"salon-promo/internal/handler/api"
	"salon-promo/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewQuoteHandler,
		api.NewRedemptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
