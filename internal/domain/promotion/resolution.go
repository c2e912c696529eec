package promotion

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Candidate pairs an eligible promotion with its computed discount.
type Candidate struct {
	Promotion *Promotion
	Discount  Discount
}

// Decision is the engine's verdict for one bill: at most one applied
// promotion. Ephemeral until the redemption committer persists it.
type Decision struct {
	Applied     bool
	PromotionID uuid.UUID
	AmountCents int64
	Breakdown   []ComponentAmount
}

// Resolve selects the single promotion to apply. Stacking is deliberately
// unsupported; this is the simplest policy consistent with per-customer usage
// limits. Tie-break order: larger discount, then COUPON over AUTO (an explicit
// customer action wins over a silent default), then the smaller id.
func Resolve(candidates []Candidate) Decision {
	viable := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Discount.AmountCents > 0 {
			viable = append(viable, c)
		}
	}
	if len(viable) == 0 {
		return Decision{}
	}

	sort.SliceStable(viable, func(i, j int) bool {
		a, b := viable[i], viable[j]
		if a.Discount.AmountCents != b.Discount.AmountCents {
			return a.Discount.AmountCents > b.Discount.AmountCents
		}
		aCoupon := a.Promotion.Activation() == ActivationCoupon
		bCoupon := b.Promotion.Activation() == ActivationCoupon
		if aCoupon != bCoupon {
			return aCoupon
		}
		return strings.Compare(a.Promotion.ID().String(), b.Promotion.ID().String()) < 0
	})

	winner := viable[0]
	return Decision{
		Applied:     true,
		PromotionID: winner.Promotion.ID(),
		AmountCents: winner.Discount.AmountCents,
		Breakdown:   winner.Discount.Breakdown,
	}
}
