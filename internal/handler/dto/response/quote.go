package response

import (
	"salon-promo/internal/usecase/queries"
)

type BreakdownEntryResponse struct {
	Kind        string `json:"kind"`
	AmountCents int64  `json:"amount_cents"`
}

type QuoteResponse struct {
	Applied       bool                     `json:"applied"`
	PromotionID   *string                  `json:"promotion_id,omitempty"`
	PromotionName *string                  `json:"promotion_name,omitempty"`
	SubtotalCents int64                    `json:"subtotal_cents"`
	DiscountCents int64                    `json:"discount_cents"`
	PayableCents  int64                    `json:"payable_cents"`
	Breakdown     []BreakdownEntryResponse `json:"breakdown,omitempty"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{
		Applied:       v.Applied,
		PromotionName: v.PromotionName,
		SubtotalCents: v.SubtotalCents,
		DiscountCents: v.DiscountCents,
		PayableCents:  v.PayableCents,
	}
	if v.PromotionID != nil {
		id := v.PromotionID.String()
		resp.PromotionID = &id
	}
	for _, b := range v.Breakdown {
		resp.Breakdown = append(resp.Breakdown, BreakdownEntryResponse{
			Kind:        b.Kind,
			AmountCents: b.AmountCents,
		})
	}
	return resp
}
