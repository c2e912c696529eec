package queries

import (
	"encoding/json"
	"time"

	"salon-promo/internal/domain/promotion"

	"github.com/google/uuid"
)

// CatalogEntry pairs a live promotion with its aggregate usage counter.
type CatalogEntry struct {
	Promotion   *promotion.Promotion
	GlobalUsage int64
}

// Read models (DTO for read side)

// ComboRuleView represents one stored combo rule
type ComboRuleView struct {
	Kind       string      `json:"kind"`
	ValueCents int64       `json:"value_cents"`
	Percent    float64     `json:"percent"`
	CapCents   int64       `json:"cap_cents"`
	Services   []uuid.UUID `json:"services,omitempty"`
	Products   []uuid.UUID `json:"products,omitempty"`
}

// PromotionView represents read-optimized promotion data
type PromotionView struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Description           *string         `json:"description,omitempty"`
	PromoType             string          `json:"promo_type"`
	DiscountCents         *int64          `json:"discount_cents,omitempty"`
	PercentOff            *float64        `json:"percent_off,omitempty"`
	MaxDiscountCents      int64           `json:"max_discount_cents"`
	MinBillCents          int64           `json:"min_bill_cents"`
	ComboComponents       []ComboRuleView `json:"combo_components,omitempty"`
	ApplicableServices    []uuid.UUID     `json:"applicable_services,omitempty"`
	ApplicableProducts    []uuid.UUID     `json:"applicable_products,omitempty"`
	ApplicableOutlets     []uuid.UUID     `json:"applicable_outlets,omitempty"`
	StartDate             time.Time       `json:"start_date"`
	EndDate               time.Time       `json:"end_date"`
	StartTime             *string         `json:"start_time,omitempty"`
	EndTime               *string         `json:"end_time,omitempty"`
	IsActive              bool            `json:"is_active"`
	TargetingType         string          `json:"targeting_type"`
	UsageLimitPerCustomer int32           `json:"usage_limit_per_customer"`
	TotalUsageLimit       *int64          `json:"total_usage_limit,omitempty"`
	CurrentUsageCount     int64           `json:"current_usage_count"`
	ActivationMode        string          `json:"activation_mode"`
	CouponCode            *string         `json:"coupon_code,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type PromotionListItem struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PromoType         string    `json:"promo_type"`
	IsActive          bool      `json:"is_active"`
	ActivationMode    string    `json:"activation_mode"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	CurrentUsageCount int64     `json:"current_usage_count"`
	CreatedAt         time.Time `json:"created_at"`
}

// ComponentAmountView is one line of a discount breakdown
type ComponentAmountView struct {
	Kind        string `json:"kind"`
	AmountCents int64  `json:"amount_cents"`
}

// QuoteView is the outcome of evaluating a bill against the catalog
type QuoteView struct {
	Applied       bool                  `json:"applied"`
	PromotionID   *uuid.UUID            `json:"promotion_id,omitempty"`
	PromotionName *string               `json:"promotion_name,omitempty"`
	SubtotalCents int64                 `json:"subtotal_cents"`
	DiscountCents int64                 `json:"discount_cents"`
	PayableCents  int64                 `json:"payable_cents"`
	Breakdown     []ComponentAmountView `json:"breakdown,omitempty"`
}

// RedemptionView represents a committed redemption
type RedemptionView struct {
	BillID        uuid.UUID       `json:"bill_id"`
	PromotionID   uuid.UUID       `json:"promotion_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	DiscountCents int64           `json:"discount_cents"`
	Breakdown     json.RawMessage `json:"breakdown,omitempty"`
	CommittedAt   time.Time       `json:"committed_at"`
}

// PromotionUsageView represents one customer's counter for a promotion
type PromotionUsageView struct {
	PromotionID uuid.UUID `json:"promotion_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	UsedCount   int32     `json:"used_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
