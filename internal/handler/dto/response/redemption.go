package response

import (
	"encoding/json"

	"salon-promo/internal/usecase/queries"
	"salon-promo/internal/usecase/shared"
)

type RedemptionResponse struct {
	BillID        string                   `json:"bill_id"`
	PromotionID   string                   `json:"promotion_id"`
	CustomerID    string                   `json:"customer_id"`
	DiscountCents int64                    `json:"discount_cents"`
	Breakdown     []BreakdownEntryResponse `json:"breakdown,omitempty"`
	CommittedAt   int64                    `json:"committed_at"`
	Replayed      bool                     `json:"replayed"`
}

func FromRedemptionRecord(rec *shared.RedemptionRecord, replayed bool) *RedemptionResponse {
	return &RedemptionResponse{
		BillID:        rec.BillID.String(),
		PromotionID:   rec.PromotionID.String(),
		CustomerID:    rec.CustomerID.String(),
		DiscountCents: rec.DiscountCents,
		Breakdown:     decodeBreakdown(rec.Breakdown),
		CommittedAt:   rec.CommittedAt.Unix(),
		Replayed:      replayed,
	}
}

func FromRedemptionView(v *queries.RedemptionView) *RedemptionResponse {
	return &RedemptionResponse{
		BillID:        v.BillID.String(),
		PromotionID:   v.PromotionID.String(),
		CustomerID:    v.CustomerID.String(),
		DiscountCents: v.DiscountCents,
		Breakdown:     decodeBreakdown(v.Breakdown),
		CommittedAt:   v.CommittedAt.Unix(),
	}
}

func decodeBreakdown(raw []byte) []BreakdownEntryResponse {
	if len(raw) == 0 {
		return nil
	}
	var entries []BreakdownEntryResponse
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}
