//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"salon-promo/internal/domain/billing"
	"salon-promo/internal/domain/promotion"
	"salon-promo/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noUsage = promotion.Usage{}

// fixed evaluation instant; activeBuilder spans it comfortably
var evalNow = time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC)

func activeBuilder() *builder.PromotionBuilder {
	return builder.NewPromotionBuilder().WithDates(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)
}

func TestCheckEligibility_Schedule(t *testing.T) {
	t.Run("inactive promotion is never eligible", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().Inactive())
		bill := mustBuildBill(t, builder.NewBillBuilder())

		err := promo.CheckEligibility(bill, noUsage, evalNow)
		require.ErrorIs(t, err, promotion.ErrInactive)
	})

	t.Run("date range is inclusive at day granularity", func(t *testing.T) {
		promo := mustBuild(t, builder.NewPromotionBuilder().
			WithDates(
				time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
				time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC),
			))
		bill := mustBuildBill(t, builder.NewBillBuilder())

		// first day counts even before the stored start's time of day
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)))
		// last day counts right up to midnight
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, time.Date(2026, 3, 20, 23, 59, 0, 0, time.UTC)))

		err := promo.CheckEligibility(bill, noUsage, time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))
		assert.ErrorIs(t, err, promotion.ErrNotStarted)

		err = promo.CheckEligibility(bill, noUsage, time.Date(2026, 3, 21, 0, 1, 0, 0, time.UTC))
		assert.ErrorIs(t, err, promotion.ErrEnded)
	})

	t.Run("happy-hour window is inclusive on both ends", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithWindow("14:00", "17:00"))
		bill := mustBuildBill(t, builder.NewBillBuilder())

		at := func(hh, mm int) time.Time {
			return time.Date(2026, 3, 15, hh, mm, 0, 0, time.UTC)
		}

		assert.NoError(t, promo.CheckEligibility(bill, noUsage, at(14, 0)))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, at(17, 0)))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, at(13, 59)), promotion.ErrOutsideHours)
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, at(17, 1)), promotion.ErrOutsideHours)
	})
}

func TestCheckEligibility_BillConstraints(t *testing.T) {
	outlet := uuid.New()
	haircut := uuid.New()

	t.Run("min bill threshold is inclusive", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithMinBill(50000))

		bill := mustBuildBill(t, builder.NewBillBuilder().WithSubtotal(50000))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))

		bill = mustBuildBill(t, builder.NewBillBuilder().WithSubtotal(49999))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrBelowMinBill)
	})

	t.Run("outlet scoping", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithOutlets(outlet))

		bill := mustBuildBill(t, builder.NewBillBuilder().WithOutlet(outlet))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))

		bill = mustBuildBill(t, builder.NewBillBuilder().WithOutlet(uuid.New()))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrOutletNotCovered)
	})

	t.Run("item scoping requires at least one covered line", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithServices(haircut))

		bill := mustBuildBill(t, builder.NewBillBuilder().
			WithItem(billing.RefService, haircut, 60000))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))

		bill = mustBuildBill(t, builder.NewBillBuilder().
			WithItem(billing.RefService, uuid.New(), 60000))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrNoQualifyingItems)

		// a product line never satisfies a service scope
		bill = mustBuildBill(t, builder.NewBillBuilder().
			WithItem(billing.RefProduct, haircut, 60000))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrNoQualifyingItems)
	})

	t.Run("segment targeting", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithTargeting(promotion.TargetNew))

		bill := mustBuildBill(t, builder.NewBillBuilder().WithSegment(billing.SegmentNew))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))

		bill = mustBuildBill(t, builder.NewBillBuilder().WithSegment(billing.SegmentRegular))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrSegmentMismatch)
	})

	t.Run("ALL targeting matches every segment", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithTargeting(promotion.TargetAll))

		for _, seg := range []billing.Segment{billing.SegmentNew, billing.SegmentRegular, billing.SegmentInactive} {
			bill := mustBuildBill(t, builder.NewBillBuilder().WithSegment(seg))
			assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))
		}
	})
}

func TestCheckEligibility_Coupon(t *testing.T) {
	promo := mustBuild(t, activeBuilder().AsCoupon("FESTIVE-20"))

	t.Run("coupon promotion without a supplied code", func(t *testing.T) {
		bill := mustBuildBill(t, builder.NewBillBuilder())
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrCouponRequired)
	})

	t.Run("wrong code", func(t *testing.T) {
		bill := mustBuildBill(t, builder.NewBillBuilder().WithCoupon("FESTIVE-30"))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrCouponMismatch)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		bill := mustBuildBill(t, builder.NewBillBuilder().WithCoupon("festive-20"))
		assert.ErrorIs(t, promo.CheckEligibility(bill, noUsage, evalNow), promotion.ErrCouponMismatch)
	})

	t.Run("supplied code is trimmed before matching", func(t *testing.T) {
		bill := mustBuildBill(t, builder.NewBillBuilder().WithCoupon("  FESTIVE-20  "))
		assert.NoError(t, promo.CheckEligibility(bill, noUsage, evalNow))
	})

	t.Run("auto promotion ignores a supplied coupon", func(t *testing.T) {
		auto := mustBuild(t, activeBuilder())
		bill := mustBuildBill(t, builder.NewBillBuilder().WithCoupon("WHATEVER"))
		assert.NoError(t, auto.CheckEligibility(bill, noUsage, evalNow))
	})
}

func TestCheckEligibility_UsageLimits(t *testing.T) {
	bill := func(t *testing.T) billing.Bill { return mustBuildBill(t, builder.NewBillBuilder()) }

	t.Run("per-customer limit reached", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithPerCustomerLimit(2))

		assert.NoError(t, promo.CheckEligibility(bill(t), promotion.Usage{CustomerCount: 1}, evalNow))

		err := promo.CheckEligibility(bill(t), promotion.Usage{CustomerCount: 2}, evalNow)
		assert.ErrorIs(t, err, promotion.ErrCustomerLimitReached)
	})

	t.Run("total limit reached", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder().WithTotalLimit(100))

		assert.NoError(t, promo.CheckEligibility(bill(t), promotion.Usage{GlobalCount: 99}, evalNow))

		err := promo.CheckEligibility(bill(t), promotion.Usage{GlobalCount: 100}, evalNow)
		assert.ErrorIs(t, err, promotion.ErrTotalLimitReached)
	})

	t.Run("no total limit means unlimited", func(t *testing.T) {
		promo := mustBuild(t, activeBuilder())
		assert.NoError(t, promo.CheckEligibility(bill(t), promotion.Usage{GlobalCount: 1 << 40}, evalNow))
	})
}

func TestFilter(t *testing.T) {
	eligible1 := mustBuild(t, activeBuilder())
	ineligible := mustBuild(t, activeBuilder().Inactive())
	eligible2 := mustBuild(t, activeBuilder())
	exhausted := mustBuild(t, activeBuilder().WithTotalLimit(10))

	bill := mustBuildBill(t, builder.NewBillBuilder())

	lookup := func(id uuid.UUID) promotion.Usage {
		if id == exhausted.ID() {
			return promotion.Usage{GlobalCount: 10}
		}
		return promotion.Usage{}
	}

	got := promotion.Filter(
		[]*promotion.Promotion{eligible1, ineligible, eligible2, exhausted},
		bill, lookup, evalNow,
	)

	require.Len(t, got, 2)
	assert.Same(t, eligible1, got[0])
	assert.Same(t, eligible2, got[1])
}
