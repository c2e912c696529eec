//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-promo/internal/domain/promotion"
	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/clock"
	"salon-promo/internal/usecase/commands"
	"salon-promo/internal/usecase/shared"
	"salon-promo/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory UnitOfWork stand-in: Within just runs the function against the
// stub repositories, which is enough to exercise the commit decision tree.
type stubUoW struct {
	tx *stubTx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type stubTx struct {
	promotions  *stubPromotionRepo
	usage       *stubUsageRepo
	redemptions *stubRedemptionRepo
}

func (t *stubTx) Promotions() shared.PromotionRepository   { return t.promotions }
func (t *stubTx) Usage() shared.UsageRepository            { return t.usage }
func (t *stubTx) Redemptions() shared.RedemptionRepository { return t.redemptions }
func (t *stubTx) DB() sqlc.DBTX                            { return nil }

type stubPromotionRepo struct {
	snapshot       *shared.PromotionSnapshot
	findErr        error
	incrementRows  int64
	incrementErr   error
	incrementCalls int
}

func (r *stubPromotionRepo) Create(context.Context, sqlc.DBTX, *promotion.Promotion) (uuid.UUID, error) {
	panic("not used")
}

func (r *stubPromotionRepo) Update(context.Context, sqlc.DBTX, *promotion.Promotion) error {
	panic("not used")
}

func (r *stubPromotionRepo) Deactivate(context.Context, sqlc.DBTX, uuid.UUID) error {
	panic("not used")
}

func (r *stubPromotionRepo) FindByID(context.Context, sqlc.DBTX, uuid.UUID) (*shared.PromotionSnapshot, error) {
	return r.snapshot, r.findErr
}

func (r *stubPromotionRepo) IncrementUsage(context.Context, sqlc.DBTX, uuid.UUID) (int64, error) {
	r.incrementCalls++
	return r.incrementRows, r.incrementErr
}

type stubUsageRepo struct {
	rows  int64
	err   error
	calls int
}

func (r *stubUsageRepo) RecordUse(context.Context, sqlc.DBTX, uuid.UUID, uuid.UUID, int32) (int64, error) {
	r.calls++
	return r.rows, r.err
}

type stubRedemptionRepo struct {
	insertRows int64
	insertErr  error
	stored     *shared.RedemptionRecord
}

func (r *stubRedemptionRepo) TryInsert(context.Context, sqlc.DBTX, *shared.RedemptionRecord) (int64, error) {
	return r.insertRows, r.insertErr
}

func (r *stubRedemptionRepo) FindByBillID(context.Context, sqlc.DBTX, uuid.UUID) (*shared.RedemptionRecord, error) {
	return r.stored, nil
}

func TestCommitRedemption(t *testing.T) {
	now := time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC)
	ctx := context.Background()

	request := func() commands.CommitRedemptionRequest {
		return commands.CommitRedemptionRequest{
			BillID:        uuid.New(),
			PromotionID:   uuid.New(),
			CustomerID:    uuid.New(),
			DiscountCents: 5000,
			Breakdown:     []commands.BreakdownEntry{{Kind: "FLAT", AmountCents: 5000}},
		}
	}

	newStubs := func() (*stubUoW, *stubTx) {
		tx := &stubTx{
			promotions: &stubPromotionRepo{
				snapshot:      builder.NewPromotionBuilder().WithPerCustomerLimit(1).BuildSnapshot(),
				incrementRows: 1,
			},
			usage:       &stubUsageRepo{rows: 1},
			redemptions: &stubRedemptionRepo{insertRows: 1},
		}
		return &stubUoW{tx: tx}, tx
	}

	t.Run("fresh commit consumes capacity and stamps the server clock", func(t *testing.T) {
		uow, tx := newStubs()
		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))
		req := request()

		result, err := uc.CommitRedemption(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.False(t, result.IsReplayed)
		assert.Equal(t, req.BillID, result.Redemption.BillID)
		assert.Equal(t, int64(5000), result.Redemption.DiscountCents)
		assert.Equal(t, now, result.Redemption.CommittedAt)
		assert.Equal(t, 1, tx.promotions.incrementCalls)
		assert.Equal(t, 1, tx.usage.calls)
	})

	t.Run("already committed bill replays the stored outcome", func(t *testing.T) {
		uow, tx := newStubs()
		stored := &shared.RedemptionRecord{
			BillID:        uuid.New(),
			DiscountCents: 4200,
			CommittedAt:   now.Add(-time.Hour),
		}
		tx.redemptions.insertRows = 0
		tx.redemptions.stored = stored

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		result, err := uc.CommitRedemption(ctx, request())
		require.NoError(t, err)

		assert.True(t, result.IsReplayed)
		assert.Equal(t, stored, result.Redemption)
		// replay must never consume capacity again
		assert.Equal(t, 0, tx.promotions.incrementCalls)
		assert.Equal(t, 0, tx.usage.calls)
	})

	t.Run("inactive promotion is rejected", func(t *testing.T) {
		uow, tx := newStubs()
		tx.promotions.snapshot = builder.NewPromotionBuilder().Inactive().BuildSnapshot()

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		_, err := uc.CommitRedemption(ctx, request())
		require.ErrorIs(t, err, commands.ErrPromotionInactive)
	})

	t.Run("exhausted total limit is rejected", func(t *testing.T) {
		uow, tx := newStubs()
		tx.promotions.incrementRows = 0

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		_, err := uc.CommitRedemption(ctx, request())
		require.ErrorIs(t, err, commands.ErrTotalLimitExceeded)
	})

	t.Run("exhausted per-customer limit is rejected", func(t *testing.T) {
		uow, tx := newStubs()
		tx.usage.rows = 0

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		_, err := uc.CommitRedemption(ctx, request())
		require.ErrorIs(t, err, commands.ErrCustomerLimitExceeded)
	})

	t.Run("unknown promotion maps to not found", func(t *testing.T) {
		uow, tx := newStubs()
		tx.promotions.snapshot = nil
		tx.promotions.findErr = infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		_, err := uc.CommitRedemption(ctx, request())
		require.ErrorIs(t, err, commands.ErrPromotionNotFound)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		uow, tx := newStubs()
		tx.redemptions.insertErr = infra.WrapRepoErr("insert failed", assert.AnError)

		uc := commands.NewRedemptionUseCase(uow, clock.NewMockClock(now))

		_, err := uc.CommitRedemption(ctx, request())
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
