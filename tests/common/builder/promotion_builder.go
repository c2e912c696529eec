//go:build unit || e2e

package builder

import (
	"time"

	"salon-promo/internal/domain/promotion"
	reqdto "salon-promo/internal/handler/dto/request"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/usecase/queries"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionBuilder struct {
	ID               uuid.UUID
	Name             string
	Description      string
	PromoType        promotion.Type
	ValueCents       int64
	Percent          float64
	MaxDiscountCents int64
	MinBillCents     int64
	Components       []promotion.ComponentParams
	Services         []uuid.UUID
	Products         []uuid.UUID
	Outlets          []uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	StartTime        string
	EndTime          string
	Active           bool
	Targeting        promotion.TargetingType
	PerCustomerLimit int32
	TotalLimit       *int64
	Activation       promotion.ActivationMode
	CouponCode       string
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now()
	return &PromotionBuilder{
		ID:               uuid.New(),
		Name:             "Festive Flat 200",
		PromoType:        promotion.TypeFlat,
		ValueCents:       20000,
		StartDate:        now.AddDate(0, 0, -1),
		EndDate:          now.AddDate(0, 1, 0),
		Active:           true,
		Targeting:        promotion.TargetAll,
		PerCustomerLimit: 1,
		Activation:       promotion.ActivationAuto,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	return promotion.New(promotion.Params{
		ID:                    b.ID,
		Name:                  b.Name,
		Description:           b.Description,
		Type:                  b.PromoType,
		ValueCents:            b.ValueCents,
		Percent:               b.Percent,
		MaxDiscountCents:      b.MaxDiscountCents,
		MinBillCents:          b.MinBillCents,
		Components:            b.Components,
		Services:              b.Services,
		Products:              b.Products,
		Outlets:               b.Outlets,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
		StartTime:             b.StartTime,
		EndTime:               b.EndTime,
		Active:                b.Active,
		Targeting:             b.Targeting,
		UsageLimitPerCustomer: b.PerCustomerLimit,
		TotalUsageLimit:       b.TotalLimit,
		Activation:            b.Activation,
		CouponCode:            b.CouponCode,
	})
}

func (b *PromotionBuilder) BuildInfra() sqlc.Promotions {
	row := sqlc.Promotions{
		ID:                    b.ID,
		Name:                  b.Name,
		PromoType:             string(b.PromoType),
		MaxDiscountCents:      b.MaxDiscountCents,
		MinBillCents:          b.MinBillCents,
		ApplicableServices:    b.Services,
		ApplicableProducts:    b.Products,
		ApplicableOutlets:     b.Outlets,
		StartDate:             pgtype.Timestamptz{Time: b.StartDate, Valid: true},
		EndDate:               pgtype.Timestamptz{Time: b.EndDate, Valid: true},
		IsActive:              b.Active,
		TargetingType:         string(b.Targeting),
		UsageLimitPerCustomer: b.PerCustomerLimit,
		ActivationMode:        string(b.Activation),
		CreatedAt:             pgtype.Timestamptz{Time: b.StartDate, Valid: true},
		UpdatedAt:             pgtype.Timestamptz{Time: b.StartDate, Valid: true},
	}
	if b.Description != "" {
		row.Description = pgtype.Text{String: b.Description, Valid: true}
	}
	if b.PromoType == promotion.TypeFlat {
		row.DiscountCents = pgtype.Int8{Int64: b.ValueCents, Valid: true}
	}
	if b.PromoType == promotion.TypePercentage {
		row.PercentOff = pgtype.Float8{Float64: b.Percent, Valid: true}
	}
	if b.StartTime != "" {
		row.StartTime = pgtype.Text{String: b.StartTime, Valid: true}
		row.EndTime = pgtype.Text{String: b.EndTime, Valid: true}
	}
	if b.TotalLimit != nil {
		row.TotalUsageLimit = pgtype.Int8{Int64: *b.TotalLimit, Valid: true}
	}
	if b.CouponCode != "" {
		row.CouponCode = pgtype.Text{String: b.CouponCode, Valid: true}
	}
	return row
}

func (b *PromotionBuilder) BuildCreateRequestDTO() reqdto.CreatePromotionRequest {
	rules := make([]reqdto.ComboRuleRequest, 0, len(b.Components))
	for _, c := range b.Components {
		rules = append(rules, reqdto.ComboRuleRequest{
			Kind:       string(c.Type),
			ValueCents: c.ValueCents,
			Percent:    c.Percent,
			CapCents:   c.CapCents,
			Services:   c.Services,
			Products:   c.Products,
		})
	}

	return reqdto.CreatePromotionRequest{
		Name:                  b.Name,
		Description:           b.Description,
		PromoType:             string(b.PromoType),
		DiscountCents:         b.ValueCents,
		PercentOff:            b.Percent,
		MaxDiscountCents:      b.MaxDiscountCents,
		MinBillCents:          b.MinBillCents,
		ComboRules:            rules,
		ApplicableServices:    b.Services,
		ApplicableProducts:    b.Products,
		ApplicableOutlets:     b.Outlets,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
		StartTime:             b.StartTime,
		EndTime:               b.EndTime,
		IsActive:              b.Active,
		TargetingType:         string(b.Targeting),
		UsageLimitPerCustomer: b.PerCustomerLimit,
		TotalUsageLimit:       b.TotalLimit,
		ActivationMode:        string(b.Activation),
		CouponCode:            b.CouponCode,
	}
}

func (b *PromotionBuilder) BuildView() *queries.PromotionView {
	rules := make([]queries.ComboRuleView, 0, len(b.Components))
	for _, c := range b.Components {
		rules = append(rules, queries.ComboRuleView{
			Kind:       string(c.Type),
			ValueCents: c.ValueCents,
			Percent:    c.Percent,
			CapCents:   c.CapCents,
			Services:   c.Services,
			Products:   c.Products,
		})
	}

	view := &queries.PromotionView{
		ID:                    b.ID,
		Name:                  b.Name,
		PromoType:             string(b.PromoType),
		MaxDiscountCents:      b.MaxDiscountCents,
		MinBillCents:          b.MinBillCents,
		ComboComponents:       rules,
		ApplicableServices:    b.Services,
		ApplicableProducts:    b.Products,
		ApplicableOutlets:     b.Outlets,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
		IsActive:              b.Active,
		TargetingType:         string(b.Targeting),
		UsageLimitPerCustomer: b.PerCustomerLimit,
		TotalUsageLimit:       b.TotalLimit,
		ActivationMode:        string(b.Activation),
		CreatedAt:             b.StartDate,
		UpdatedAt:             b.StartDate,
	}
	if b.Description != "" {
		d := b.Description
		view.Description = &d
	}
	if b.PromoType == promotion.TypeFlat {
		v := b.ValueCents
		view.DiscountCents = &v
	}
	if b.PromoType == promotion.TypePercentage {
		p := b.Percent
		view.PercentOff = &p
	}
	if b.StartTime != "" {
		s, e := b.StartTime, b.EndTime
		view.StartTime, view.EndTime = &s, &e
	}
	if b.CouponCode != "" {
		c := b.CouponCode
		view.CouponCode = &c
	}
	return view
}

func (b *PromotionBuilder) BuildSnapshot() *shared.PromotionSnapshot {
	return &shared.PromotionSnapshot{
		ID:                    b.ID,
		Name:                  b.Name,
		IsActive:              b.Active,
		UsageLimitPerCustomer: b.PerCustomerLimit,
		TotalUsageLimit:       b.TotalLimit,
	}
}

// Fluent builder methods
func (b *PromotionBuilder) WithName(name string) *PromotionBuilder {
	b.Name = name
	return b
}

func (b *PromotionBuilder) WithDates(start, end time.Time) *PromotionBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PromotionBuilder) WithWindow(start, end string) *PromotionBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *PromotionBuilder) WithMinBill(cents int64) *PromotionBuilder {
	b.MinBillCents = cents
	return b
}

func (b *PromotionBuilder) WithServices(ids ...uuid.UUID) *PromotionBuilder {
	b.Services = ids
	return b
}

func (b *PromotionBuilder) WithProducts(ids ...uuid.UUID) *PromotionBuilder {
	b.Products = ids
	return b
}

func (b *PromotionBuilder) WithOutlets(ids ...uuid.UUID) *PromotionBuilder {
	b.Outlets = ids
	return b
}

func (b *PromotionBuilder) WithTargeting(t promotion.TargetingType) *PromotionBuilder {
	b.Targeting = t
	return b
}

func (b *PromotionBuilder) WithPerCustomerLimit(n int32) *PromotionBuilder {
	b.PerCustomerLimit = n
	return b
}

func (b *PromotionBuilder) WithTotalLimit(n int64) *PromotionBuilder {
	b.TotalLimit = &n
	return b
}

func (b *PromotionBuilder) Inactive() *PromotionBuilder {
	b.Active = false
	return b
}

func (b *PromotionBuilder) AsFlat(valueCents int64) *PromotionBuilder {
	b.PromoType = promotion.TypeFlat
	b.ValueCents = valueCents
	b.Percent = 0
	b.Components = nil
	return b
}

func (b *PromotionBuilder) AsPercentage(percent float64, capCents int64) *PromotionBuilder {
	b.PromoType = promotion.TypePercentage
	b.Percent = percent
	b.ValueCents = 0
	b.MaxDiscountCents = capCents
	b.Components = nil
	return b
}

func (b *PromotionBuilder) AsCombo(rules ...promotion.ComponentParams) *PromotionBuilder {
	b.PromoType = promotion.TypeCombo
	b.Components = rules
	b.ValueCents = 0
	b.Percent = 0
	return b
}

func (b *PromotionBuilder) AsCoupon(code string) *PromotionBuilder {
	b.Activation = promotion.ActivationCoupon
	b.CouponCode = code
	return b
}
