package repository

import (
	"context"

	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/pgconv"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionWriteQueries interface {
	TryInsertRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertRedemptionParams) (int64, error)
	GetRedemptionByBillID(ctx context.Context, db sqlc.DBTX, billID uuid.UUID) (sqlc.Redemptions, error)
}

type RedemptionRepository struct {
	queries RedemptionWriteQueries
}

func NewRedemptionRepository(queries RedemptionWriteQueries) *RedemptionRepository {
	return &RedemptionRepository{queries: queries}
}

func (r *RedemptionRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, rec *shared.RedemptionRecord) (int64, error) {
	rows, err := r.queries.TryInsertRedemption(ctx, tx, sqlc.TryInsertRedemptionParams{
		BillID:        rec.BillID,
		PromotionID:   rec.PromotionID,
		CustomerID:    rec.CustomerID,
		DiscountCents: rec.DiscountCents,
		Breakdown:     rec.Breakdown,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert redemption", err)
	}
	return rows, nil
}

func (r *RedemptionRepository) FindByBillID(ctx context.Context, tx sqlc.DBTX, billID uuid.UUID) (*shared.RedemptionRecord, error) {
	row, err := r.queries.GetRedemptionByBillID(ctx, tx, billID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption by bill ID", err)
	}

	return &shared.RedemptionRecord{
		BillID:        row.BillID,
		PromotionID:   row.PromotionID,
		CustomerID:    row.CustomerID,
		DiscountCents: row.DiscountCents,
		Breakdown:     row.Breakdown,
		CommittedAt:   pgconv.TimeFromPgtype(row.CommittedAt),
	}, nil
}
