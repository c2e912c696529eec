package readstore

import (
	"context"

	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/pgconv"
	"salon-promo/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageViewQueries interface {
	ListPromotionUsageByPromotion(ctx context.Context, db sqlc.DBTX, promotionID uuid.UUID) ([]sqlc.PromotionUsage, error)
	ListPromotionUsageForCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.PromotionUsage, error)
}

type UsageReadStore struct {
	queries UsageViewQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(q *sqlc.Queries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{
		queries: q,
		db:      db,
	}
}

func (r *UsageReadStore) ListByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*queries.PromotionUsageView, error) {
	rows, err := r.queries.ListPromotionUsageByPromotion(ctx, r.db, promotionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotion usage", err)
	}

	views := make([]*queries.PromotionUsageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.PromotionUsageView{
			PromotionID: row.PromotionID,
			CustomerID:  row.CustomerID,
			UsedCount:   row.UsedCount,
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

// CustomerCounts returns the customer's per-promotion usage counters keyed by
// promotion ID, reading through the caller's transaction.
func (r *UsageReadStore) CustomerCounts(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (map[uuid.UUID]int32, error) {
	rows, err := r.queries.ListPromotionUsageForCustomer(ctx, db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load customer usage", err)
	}

	counts := make(map[uuid.UUID]int32, len(rows))
	for _, row := range rows {
		counts[row.PromotionID] = row.UsedCount
	}
	return counts, nil
}
