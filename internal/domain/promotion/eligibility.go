package promotion

import (
	"errors"
	"time"

	"salon-promo/internal/domain/billing"

	"github.com/google/uuid"
)

// Ineligibility reasons. None of these are failures: an ineligible promotion
// is simply excluded from the candidate set.
var (
	ErrInactive             = errors.New("promotion is not active")
	ErrNotStarted           = errors.New("promotion has not started")
	ErrEnded                = errors.New("promotion has ended")
	ErrOutsideHours         = errors.New("outside promotion hours")
	ErrBelowMinBill         = errors.New("bill below minimum amount")
	ErrOutletNotCovered     = errors.New("outlet not covered by promotion")
	ErrNoQualifyingItems    = errors.New("no qualifying line items")
	ErrSegmentMismatch      = errors.New("customer segment not targeted")
	ErrCouponRequired       = errors.New("coupon code required")
	ErrCouponMismatch       = errors.New("coupon code does not match")
	ErrCustomerLimitReached = errors.New("per-customer usage limit reached")
	ErrTotalLimitReached    = errors.New("total usage limit reached")
)

// Usage is a read-only snapshot of the ledger counters for one
// (promotion, customer) pair at quote time.
type Usage struct {
	CustomerCount int32
	GlobalCount   int64
}

// UsageLookup resolves quote-time usage counters per promotion.
type UsageLookup func(promotionID uuid.UUID) Usage

// CheckEligibility reports the first failed condition, or nil when the
// promotion is a candidate for the bill. Reads nothing and writes nothing:
// quoted-but-abandoned bills must never consume usage.
func (p *Promotion) CheckEligibility(bill billing.Bill, usage Usage, now time.Time) error {
	if !p.active {
		return ErrInactive
	}

	nowDate := dateOnly(now)
	if nowDate.Before(dateOnly(p.startDate)) {
		return ErrNotStarted
	}
	if nowDate.After(dateOnly(p.endDate)) {
		return ErrEnded
	}
	if p.window != nil && !p.window.Contains(now) {
		return ErrOutsideHours
	}

	if bill.SubtotalCents() < p.minBillCents {
		return ErrBelowMinBill
	}

	if !p.outlets.Empty() && !p.outlets.Contains(bill.OutletID()) {
		return ErrOutletNotCovered
	}

	if !p.services.Empty() || !p.products.Empty() {
		if !p.matchesAnyItem(bill) {
			return ErrNoQualifyingItems
		}
	}

	if p.targeting != TargetAll && p.targeting.String() != bill.Segment().String() {
		return ErrSegmentMismatch
	}

	if p.activation == ActivationCoupon {
		if !bill.HasCoupon() {
			return ErrCouponRequired
		}
		if !p.couponCode.Matches(bill.CouponCode()) {
			return ErrCouponMismatch
		}
	}

	if usage.CustomerCount >= p.perCustomerLimit {
		return ErrCustomerLimitReached
	}
	if p.totalLimit != nil && usage.GlobalCount >= *p.totalLimit {
		return ErrTotalLimitReached
	}

	return nil
}

func (p *Promotion) matchesAnyItem(bill billing.Bill) bool {
	for _, item := range bill.Items() {
		switch item.RefType() {
		case billing.RefService:
			if p.services.Contains(item.RefID()) {
				return true
			}
		case billing.RefProduct:
			if p.products.Contains(item.RefID()) {
				return true
			}
		}
	}
	return false
}

// Filter narrows the catalog to the promotions eligible for the bill.
// Ordering of the input is preserved.
func Filter(catalog []*Promotion, bill billing.Bill, usage UsageLookup, now time.Time) []*Promotion {
	var eligible []*Promotion
	for _, p := range catalog {
		if err := p.CheckEligibility(bill, usage(p.ID()), now); err != nil {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
