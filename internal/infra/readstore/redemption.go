package readstore

import (
	"context"

	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/pgconv"
	"salon-promo/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionViewQueries interface {
	GetRedemptionByBillID(ctx context.Context, db sqlc.DBTX, billID uuid.UUID) (sqlc.Redemptions, error)
}

type RedemptionReadStore struct {
	queries RedemptionViewQueries
	db      sqlc.DBTX
}

func NewRedemptionReadStore(q *sqlc.Queries, db sqlc.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{
		queries: q,
		db:      db,
	}
}

func (r *RedemptionReadStore) FindByBillID(ctx context.Context, billID uuid.UUID) (*queries.RedemptionView, error) {
	row, err := r.queries.GetRedemptionByBillID(ctx, r.db, billID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption by bill ID", err)
	}

	return &queries.RedemptionView{
		BillID:        row.BillID,
		PromotionID:   row.PromotionID,
		CustomerID:    row.CustomerID,
		DiscountCents: row.DiscountCents,
		Breakdown:     row.Breakdown,
		CommittedAt:   pgconv.TimeFromPgtype(row.CommittedAt),
	}, nil
}
