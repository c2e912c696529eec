package shared

import (
	"context"

	"salon-promo/internal/domain/promotion"
	sqlc "salon-promo/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Promotions() PromotionRepository
	Usage() UsageRepository
	Redemptions() RedemptionRepository
	DB() sqlc.DBTX
}

type PromotionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, promo *promotion.Promotion) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, promo *promotion.Promotion) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*PromotionSnapshot, error)
	// IncrementUsage bumps the aggregate counter; returns the number of
	// rows updated (0 when the total usage limit is already reached).
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UsageRepository interface {
	// RecordUse inserts or increments the per-customer counter guarded by
	// the promotion's per-customer limit; returns rows affected.
	RecordUse(ctx context.Context, tx sqlc.DBTX, promotionID, customerID uuid.UUID, perCustomerLimit int32) (int64, error)
}

type RedemptionRepository interface {
	// TryInsert claims the bill; returns 0 rows when the bill was already
	// committed by an earlier request.
	TryInsert(ctx context.Context, tx sqlc.DBTX, rec *RedemptionRecord) (int64, error)
	FindByBillID(ctx context.Context, tx sqlc.DBTX, billID uuid.UUID) (*RedemptionRecord, error)
}
