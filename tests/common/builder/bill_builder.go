//go:build unit || e2e

package builder

import (
	"time"

	"salon-promo/internal/domain/billing"
	reqdto "salon-promo/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BillItemSpec struct {
	RefType     billing.RefType
	RefID       uuid.UUID
	AmountCents int64
}

type BillBuilder struct {
	SubtotalCents int64
	Items         []BillItemSpec
	OutletID      uuid.UUID
	CustomerID    uuid.UUID
	Segment       billing.Segment
	CouponCode    *string
	EvaluatedAt   time.Time
}

func NewBillBuilder() *BillBuilder {
	return &BillBuilder{
		SubtotalCents: 100000,
		OutletID:      uuid.New(),
		CustomerID:    uuid.New(),
		Segment:       billing.SegmentRegular,
		EvaluatedAt:   time.Now(),
	}
}

func (b *BillBuilder) With(mutate func(*BillBuilder)) *BillBuilder {
	mutate(b)
	return b
}

func (b *BillBuilder) BuildDomain() (billing.Bill, error) {
	items := make([]billing.LineItem, 0, len(b.Items))
	for _, it := range b.Items {
		item, err := billing.NewLineItem(it.RefType, it.RefID, it.AmountCents)
		if err != nil {
			return billing.Bill{}, err
		}
		items = append(items, item)
	}
	return billing.NewBill(b.SubtotalCents, items, b.OutletID, b.CustomerID, b.Segment, b.CouponCode, b.EvaluatedAt)
}

func (b *BillBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	items := make([]reqdto.BillItemRequest, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, reqdto.BillItemRequest{
			RefType:     string(it.RefType),
			RefID:       it.RefID,
			AmountCents: it.AmountCents,
		})
	}
	return reqdto.QuoteRequest{
		OutletID:        b.OutletID,
		CustomerID:      b.CustomerID,
		CustomerSegment: string(b.Segment),
		CouponCode:      b.CouponCode,
		SubtotalCents:   b.SubtotalCents,
		Items:           items,
	}
}

func (b *BillBuilder) WithSubtotal(cents int64) *BillBuilder {
	b.SubtotalCents = cents
	return b
}

func (b *BillBuilder) WithItem(refType billing.RefType, refID uuid.UUID, amountCents int64) *BillBuilder {
	b.Items = append(b.Items, BillItemSpec{RefType: refType, RefID: refID, AmountCents: amountCents})
	return b
}

func (b *BillBuilder) WithOutlet(id uuid.UUID) *BillBuilder {
	b.OutletID = id
	return b
}

func (b *BillBuilder) WithCustomer(id uuid.UUID) *BillBuilder {
	b.CustomerID = id
	return b
}

func (b *BillBuilder) WithSegment(s billing.Segment) *BillBuilder {
	b.Segment = s
	return b
}

func (b *BillBuilder) WithCoupon(code string) *BillBuilder {
	b.CouponCode = &code
	return b
}

func (b *BillBuilder) WithEvaluatedAt(t time.Time) *BillBuilder {
	b.EvaluatedAt = t
	return b
}
