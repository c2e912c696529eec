package request

import (
	"time"

	"salon-promo/internal/usecase/commands"

	"github.com/google/uuid"
)

type ComboRuleRequest struct {
	Kind       string      `json:"kind" binding:"required,oneof=FLAT PERCENTAGE"`
	ValueCents int64       `json:"value_cents" binding:"omitempty,min=0"`
	Percent    float64     `json:"percent" binding:"omitempty,min=0,max=100"`
	CapCents   int64       `json:"cap_cents" binding:"omitempty,min=0"`
	Services   []uuid.UUID `json:"services"`
	Products   []uuid.UUID `json:"products"`
}

type CreatePromotionRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	PromoType   string `json:"promo_type" binding:"required,oneof=FLAT PERCENTAGE COMBO"`

	DiscountCents int64   `json:"discount_cents" binding:"omitempty,min=0"`
	PercentOff    float64 `json:"percent_off" binding:"omitempty,min=0,max=100"`

	MaxDiscountCents int64 `json:"max_discount_cents" binding:"omitempty,min=0"`
	MinBillCents     int64 `json:"min_bill_cents" binding:"omitempty,min=0"`

	ComboRules []ComboRuleRequest `json:"combo_rules" binding:"omitempty,dive"`

	ApplicableServices []uuid.UUID `json:"applicable_services"`
	ApplicableProducts []uuid.UUID `json:"applicable_products"`
	ApplicableOutlets  []uuid.UUID `json:"applicable_outlets"`

	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	StartTime string    `json:"start_time" binding:"omitempty,len=5"`
	EndTime   string    `json:"end_time" binding:"omitempty,len=5"`

	IsActive      bool   `json:"is_active"`
	TargetingType string `json:"targeting_type" binding:"required,oneof=ALL NEW REGULAR INACTIVE"`

	UsageLimitPerCustomer int32  `json:"usage_limit_per_customer" binding:"omitempty,min=1"`
	TotalUsageLimit       *int64 `json:"total_usage_limit" binding:"omitempty,min=1"`

	ActivationMode string `json:"activation_mode" binding:"required,oneof=AUTO COUPON"`
	CouponCode     string `json:"coupon_code" binding:"omitempty,min=3,max=32"`
}

func (r *CreatePromotionRequest) ToCommand() commands.CreatePromotionRequest {
	rules := make([]commands.ComboRule, 0, len(r.ComboRules))
	for _, rule := range r.ComboRules {
		rules = append(rules, commands.ComboRule{
			Kind:       rule.Kind,
			ValueCents: rule.ValueCents,
			Percent:    rule.Percent,
			CapCents:   rule.CapCents,
			Services:   rule.Services,
			Products:   rule.Products,
		})
	}

	return commands.CreatePromotionRequest{
		Name:                  r.Name,
		Description:           r.Description,
		PromoType:             r.PromoType,
		DiscountCents:         r.DiscountCents,
		PercentOff:            r.PercentOff,
		MaxDiscountCents:      r.MaxDiscountCents,
		MinBillCents:          r.MinBillCents,
		ComboRules:            rules,
		ApplicableServices:    r.ApplicableServices,
		ApplicableProducts:    r.ApplicableProducts,
		ApplicableOutlets:     r.ApplicableOutlets,
		StartDate:             r.StartDate,
		EndDate:               r.EndDate,
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		IsActive:              r.IsActive,
		TargetingType:         r.TargetingType,
		UsageLimitPerCustomer: r.UsageLimitPerCustomer,
		TotalUsageLimit:       r.TotalUsageLimit,
		ActivationMode:        r.ActivationMode,
		CouponCode:            r.CouponCode,
	}
}
