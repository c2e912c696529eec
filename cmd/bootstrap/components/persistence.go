package components

import (
	"salon-promo/internal/infra/readstore"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/infra/uow"
	"salon-promo/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Promotion
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionViewRepo)),
			fx.As(new(queries.PromotionCatalog)),
		),
		// Usage
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(queries.UsageViewRepo)),
			fx.As(new(queries.UsageCounts)),
		),
		// Redemption
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the write-side repositories; they are constructed
		// inside each transaction, not injected here.
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
