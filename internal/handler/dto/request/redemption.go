package request

import (
	"salon-promo/internal/usecase/commands"

	"github.com/google/uuid"
)

type BreakdownEntryRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=FLAT PERCENTAGE"`
	AmountCents int64  `json:"amount_cents" binding:"min=0"`
}

type CommitRedemptionRequest struct {
	BillID        uuid.UUID               `json:"bill_id" binding:"required"`
	PromotionID   uuid.UUID               `json:"promotion_id" binding:"required"`
	CustomerID    uuid.UUID               `json:"customer_id" binding:"required"`
	DiscountCents int64                   `json:"discount_cents" binding:"min=0"`
	Breakdown     []BreakdownEntryRequest `json:"breakdown" binding:"omitempty,dive"`
}

func (r *CommitRedemptionRequest) ToCommand() commands.CommitRedemptionRequest {
	breakdown := make([]commands.BreakdownEntry, 0, len(r.Breakdown))
	for _, b := range r.Breakdown {
		breakdown = append(breakdown, commands.BreakdownEntry{
			Kind:        b.Kind,
			AmountCents: b.AmountCents,
		})
	}

	return commands.CommitRedemptionRequest{
		BillID:        r.BillID,
		PromotionID:   r.PromotionID,
		CustomerID:    r.CustomerID,
		DiscountCents: r.DiscountCents,
		Breakdown:     breakdown,
	}
}
