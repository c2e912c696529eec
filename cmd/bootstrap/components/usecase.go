package components

import (
	"salon-promo/internal/pkg/clock"
	"salon-promo/internal/pkg/config"
	"salon-promo/internal/usecase/commands"
	"salon-promo/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.EngineConfig {
		return cfg.Engine
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromotionUseCase,
		commands.NewRedemptionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPromotionQueries,
		queries.NewQuoteQueries,
		queries.NewRedemptionQueries,
	),
)
