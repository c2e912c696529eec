package request

import (
	"salon-promo/internal/usecase/queries"

	"github.com/google/uuid"
)

type BillItemRequest struct {
	RefType     string    `json:"ref_type" binding:"required,oneof=service product"`
	RefID       uuid.UUID `json:"ref_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"min=0"`
}

type QuoteRequest struct {
	OutletID        uuid.UUID         `json:"outlet_id" binding:"required"`
	CustomerID      uuid.UUID         `json:"customer_id" binding:"required"`
	CustomerSegment string            `json:"customer_segment" binding:"required,oneof=ALL NEW REGULAR INACTIVE"`
	CouponCode      *string           `json:"coupon_code" binding:"omitempty,max=32"`
	SubtotalCents   int64             `json:"subtotal_cents" binding:"min=0"`
	Items           []BillItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r *QuoteRequest) ToQuery() queries.EvaluateBillRequest {
	items := make([]queries.BillItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, queries.BillItem{
			RefType:     it.RefType,
			RefID:       it.RefID,
			AmountCents: it.AmountCents,
		})
	}

	return queries.EvaluateBillRequest{
		OutletID:        r.OutletID,
		CustomerID:      r.CustomerID,
		CustomerSegment: r.CustomerSegment,
		CouponCode:      r.CouponCode,
		SubtotalCents:   r.SubtotalCents,
		Items:           items,
	}
}
