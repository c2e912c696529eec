package response

import (
	"salon-promo/internal/usecase/queries"

	"github.com/google/uuid"
)

type ComboRuleResponse struct {
	Kind       string      `json:"kind"`
	ValueCents int64       `json:"value_cents"`
	Percent    float64     `json:"percent"`
	CapCents   int64       `json:"cap_cents"`
	Services   []uuid.UUID `json:"services,omitempty"`
	Products   []uuid.UUID `json:"products,omitempty"`
}

type PromotionResponse struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Description           *string             `json:"description,omitempty"`
	PromoType             string              `json:"promo_type"`
	DiscountCents         *int64              `json:"discount_cents,omitempty"`
	PercentOff            *float64            `json:"percent_off,omitempty"`
	MaxDiscountCents      int64               `json:"max_discount_cents"`
	MinBillCents          int64               `json:"min_bill_cents"`
	ComboRules            []ComboRuleResponse `json:"combo_rules,omitempty"`
	ApplicableServices    []uuid.UUID         `json:"applicable_services,omitempty"`
	ApplicableProducts    []uuid.UUID         `json:"applicable_products,omitempty"`
	ApplicableOutlets     []uuid.UUID         `json:"applicable_outlets,omitempty"`
	StartDate             int64               `json:"start_date"`
	EndDate               int64               `json:"end_date"`
	StartTime             *string             `json:"start_time,omitempty"`
	EndTime               *string             `json:"end_time,omitempty"`
	IsActive              bool                `json:"is_active"`
	TargetingType         string              `json:"targeting_type"`
	UsageLimitPerCustomer int32               `json:"usage_limit_per_customer"`
	TotalUsageLimit       *int64              `json:"total_usage_limit,omitempty"`
	CurrentUsageCount     int64               `json:"current_usage_count"`
	ActivationMode        string              `json:"activation_mode"`
	CouponCode            *string             `json:"coupon_code,omitempty"`
	CreatedAt             int64               `json:"created_at"`
	UpdatedAt             int64               `json:"updated_at"`
}

func FromPromotionView(v *queries.PromotionView) *PromotionResponse {
	rules := make([]ComboRuleResponse, 0, len(v.ComboComponents))
	for _, rule := range v.ComboComponents {
		rules = append(rules, ComboRuleResponse{
			Kind:       rule.Kind,
			ValueCents: rule.ValueCents,
			Percent:    rule.Percent,
			CapCents:   rule.CapCents,
			Services:   rule.Services,
			Products:   rule.Products,
		})
	}

	return &PromotionResponse{
		ID:                    v.ID.String(),
		Name:                  v.Name,
		Description:           v.Description,
		PromoType:             v.PromoType,
		DiscountCents:         v.DiscountCents,
		PercentOff:            v.PercentOff,
		MaxDiscountCents:      v.MaxDiscountCents,
		MinBillCents:          v.MinBillCents,
		ComboRules:            rules,
		ApplicableServices:    v.ApplicableServices,
		ApplicableProducts:    v.ApplicableProducts,
		ApplicableOutlets:     v.ApplicableOutlets,
		StartDate:             v.StartDate.Unix(),
		EndDate:               v.EndDate.Unix(),
		StartTime:             v.StartTime,
		EndTime:               v.EndTime,
		IsActive:              v.IsActive,
		TargetingType:         v.TargetingType,
		UsageLimitPerCustomer: v.UsageLimitPerCustomer,
		TotalUsageLimit:       v.TotalUsageLimit,
		CurrentUsageCount:     v.CurrentUsageCount,
		ActivationMode:        v.ActivationMode,
		CouponCode:            v.CouponCode,
		CreatedAt:             v.CreatedAt.Unix(),
		UpdatedAt:             v.UpdatedAt.Unix(),
	}
}

type PromotionListItemResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PromoType         string `json:"promo_type"`
	IsActive          bool   `json:"is_active"`
	ActivationMode    string `json:"activation_mode"`
	StartDate         int64  `json:"start_date"`
	EndDate           int64  `json:"end_date"`
	CurrentUsageCount int64  `json:"current_usage_count"`
	CreatedAt         int64  `json:"created_at"`
}

func FromPromotionList(items []*queries.PromotionListItem) []*PromotionListItemResponse {
	res := make([]*PromotionListItemResponse, len(items))
	for i, it := range items {
		res[i] = &PromotionListItemResponse{
			ID:                it.ID.String(),
			Name:              it.Name,
			PromoType:         it.PromoType,
			IsActive:          it.IsActive,
			ActivationMode:    it.ActivationMode,
			StartDate:         it.StartDate.Unix(),
			EndDate:           it.EndDate.Unix(),
			CurrentUsageCount: it.CurrentUsageCount,
			CreatedAt:         it.CreatedAt.Unix(),
		}
	}
	return res
}

type PromotionUsageResponse struct {
	PromotionID string `json:"promotion_id"`
	CustomerID  string `json:"customer_id"`
	UsedCount   int32  `json:"used_count"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromPromotionUsageList(items []*queries.PromotionUsageView) []*PromotionUsageResponse {
	res := make([]*PromotionUsageResponse, len(items))
	for i, it := range items {
		res[i] = &PromotionUsageResponse{
			PromotionID: it.PromotionID.String(),
			CustomerID:  it.CustomerID.String(),
			UsedCount:   it.UsedCount,
			UpdatedAt:   it.UpdatedAt.Unix(),
		}
	}
	return res
}
