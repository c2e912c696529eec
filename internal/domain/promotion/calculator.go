package promotion

import (
	"math"

	"salon-promo/internal/domain/billing"
)

// ComponentAmount is one line of a discount breakdown.
type ComponentAmount struct {
	Kind        Type
	AmountCents int64
}

// Discount is the monetary outcome of applying one promotion to one bill.
type Discount struct {
	AmountCents int64
	Breakdown   []ComponentAmount
}

// Compute evaluates the promotion's discount against the bill. Each component
// is computed against its own applicable subset and capped individually; a
// COMBO's total is then capped by the promotion-level ceiling. The result is
// clamped so 0 <= amount <= subtotal always holds. Amounts are rounded
// half-even to the minor unit once per component, never per line item.
func (p *Promotion) Compute(bill billing.Bill) Discount {
	breakdown := make([]ComponentAmount, 0, len(p.components))
	var total int64

	for _, c := range p.components {
		amount := c.compute(bill)
		breakdown = append(breakdown, ComponentAmount{Kind: c.kind, AmountCents: amount})
		total += amount
	}

	// Outer cap applies after the per-component caps, COMBO only: for flat
	// and percentage promotions the single component already carries it.
	if p.promoType == TypeCombo && p.maxDiscountCents > 0 && total > p.maxDiscountCents {
		total = p.maxDiscountCents
	}

	if total > bill.SubtotalCents() {
		total = bill.SubtotalCents()
	}
	if total < 0 {
		total = 0
	}

	return Discount{AmountCents: total, Breakdown: breakdown}
}

func (c Component) compute(bill billing.Bill) int64 {
	applicable := applicableSubtotal(bill, c.services, c.products)

	var amount int64
	switch c.kind {
	case TypeFlat:
		amount = c.valueCents
		if amount > applicable {
			amount = applicable
		}
	case TypePercentage:
		raw := float64(applicable) * c.percent / 100.0
		amount = int64(math.RoundToEven(raw))
	}

	if c.capCents > 0 && amount > c.capCents {
		amount = c.capCents
	}
	return amount
}

// applicableSubtotal sums the line items a rule's scope covers. Empty scope
// sets are the "unrestricted" sentinel: the whole subtotal applies.
func applicableSubtotal(bill billing.Bill, services, products RefSet) int64 {
	if services.Empty() && products.Empty() {
		return bill.SubtotalCents()
	}

	var sum int64
	for _, item := range bill.Items() {
		switch item.RefType() {
		case billing.RefService:
			if services.Contains(item.RefID()) {
				sum += item.AmountCents()
			}
		case billing.RefProduct:
			if products.Contains(item.RefID()) {
				sum += item.AmountCents()
			}
		}
	}
	return sum
}
