package repository

import (
	"context"

	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UsageWriteQueries interface {
	UpsertCustomerUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerUsageParams) (int64, error)
}

type UsageRepository struct {
	queries UsageWriteQueries
}

func NewUsageRepository(queries UsageWriteQueries) *UsageRepository {
	return &UsageRepository{queries: queries}
}

func (r *UsageRepository) RecordUse(ctx context.Context, tx sqlc.DBTX, promotionID, customerID uuid.UUID, perCustomerLimit int32) (int64, error) {
	rows, err := r.queries.UpsertCustomerUsage(ctx, tx, sqlc.UpsertCustomerUsageParams{
		PromotionID: promotionID,
		CustomerID:  customerID,
		Limit:       perCustomerLimit,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to record customer usage", err)
	}
	return rows, nil
}
