package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeSubtotal   = errors.New("bill subtotal cannot be negative")
	ErrNegativeLineAmount = errors.New("line item amount cannot be negative")
	ErrInvalidRefType     = errors.New("line item ref type must be service or product")
	ErrInvalidSegment     = errors.New("invalid customer segment")
	ErrMissingCustomer    = errors.New("bill requires a customer reference")
)

// LineItem is one sellable entry on a proposed bill. Amounts are integer
// minor currency units.
type LineItem struct {
	refType     RefType
	refID       uuid.UUID
	amountCents int64
}

func NewLineItem(refType RefType, refID uuid.UUID, amountCents int64) (LineItem, error) {
	if !refType.IsValid() {
		return LineItem{}, ErrInvalidRefType
	}
	if amountCents < 0 {
		return LineItem{}, ErrNegativeLineAmount
	}
	return LineItem{refType: refType, refID: refID, amountCents: amountCents}, nil
}

func (li LineItem) RefType() RefType   { return li.refType }
func (li LineItem) RefID() uuid.UUID   { return li.refID }
func (li LineItem) AmountCents() int64 { return li.amountCents }

// Bill is the caller-supplied snapshot of a proposed purchase. It is never
// persisted by the engine; the evaluation timestamp comes from the server
// clock, not from the client.
type Bill struct {
	subtotalCents int64
	items         []LineItem
	outletID      uuid.UUID
	customerID    uuid.UUID
	segment       Segment
	couponCode    *string
	evaluatedAt   time.Time
}

func NewBill(
	subtotalCents int64,
	items []LineItem,
	outletID uuid.UUID,
	customerID uuid.UUID,
	segment Segment,
	couponCode *string,
	evaluatedAt time.Time,
) (Bill, error) {
	if subtotalCents < 0 {
		return Bill{}, ErrNegativeSubtotal
	}
	if customerID == uuid.Nil {
		return Bill{}, ErrMissingCustomer
	}
	if !segment.IsValid() {
		return Bill{}, ErrInvalidSegment
	}

	var code *string
	if couponCode != nil {
		trimmed := strings.TrimSpace(*couponCode)
		if trimmed != "" {
			code = &trimmed
		}
	}

	return Bill{
		subtotalCents: subtotalCents,
		items:         append([]LineItem(nil), items...),
		outletID:      outletID,
		customerID:    customerID,
		segment:       segment,
		couponCode:    code,
		evaluatedAt:   evaluatedAt,
	}, nil
}

func (b Bill) SubtotalCents() int64  { return b.subtotalCents }
func (b Bill) Items() []LineItem     { return b.items }
func (b Bill) OutletID() uuid.UUID   { return b.outletID }
func (b Bill) CustomerID() uuid.UUID { return b.customerID }
func (b Bill) Segment() Segment      { return b.segment }
func (b Bill) EvaluatedAt() time.Time { return b.evaluatedAt }

// CouponCode returns the trimmed supplied code, or "" when none was given.
func (b Bill) CouponCode() string {
	if b.couponCode == nil {
		return ""
	}
	return *b.couponCode
}

func (b Bill) HasCoupon() bool {
	return b.couponCode != nil
}
