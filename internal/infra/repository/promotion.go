package repository

import (
	"context"
	"encoding/json"

	"salon-promo/internal/domain/promotion"
	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/pgconv"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) (uuid.UUID, error)
	UpdatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePromotionParams) (int64, error)
	DeactivatePromotion(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetPromotionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Promotions, error)
	IncrementPromotionUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
}

func NewPromotionRepository(queries PromotionWriteQueries) *PromotionRepository {
	return &PromotionRepository{queries: queries}
}

// comboComponent is the stored JSON shape of one combo rule.
type comboComponent struct {
	Kind       string      `json:"kind"`
	ValueCents int64       `json:"value_cents"`
	Percent    float64     `json:"percent"`
	CapCents   int64       `json:"cap_cents"`
	Services   []uuid.UUID `json:"services,omitempty"`
	Products   []uuid.UUID `json:"products,omitempty"`
}

func (r *PromotionRepository) Create(ctx context.Context, tx sqlc.DBTX, promo *promotion.Promotion) (uuid.UUID, error) {
	params, err := toCreateParams(promo)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode promotion", err)
	}

	id, err := r.queries.CreatePromotion(ctx, tx, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("promotion already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create promotion", err)
	}
	return id, nil
}

func (r *PromotionRepository) Update(ctx context.Context, tx sqlc.DBTX, promo *promotion.Promotion) error {
	createParams, err := toCreateParams(promo)
	if err != nil {
		return infra.WrapRepoErr("failed to encode promotion", err)
	}

	rows, err := r.queries.UpdatePromotion(ctx, tx, sqlc.UpdatePromotionParams(createParams))
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeactivatePromotion(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate promotion", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.PromotionSnapshot, error) {
	row, err := r.queries.GetPromotionByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}

	return &shared.PromotionSnapshot{
		ID:                    row.ID,
		Name:                  row.Name,
		IsActive:              row.IsActive,
		UsageLimitPerCustomer: row.UsageLimitPerCustomer,
		TotalUsageLimit:       pgconv.Int64PtrFromPgtype(row.TotalUsageLimit),
		CurrentUsageCount:     row.CurrentUsageCount,
	}, nil
}

func (r *PromotionRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	rows, err := r.queries.IncrementPromotionUsage(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment promotion usage", err)
	}
	return rows, nil
}

func toCreateParams(promo *promotion.Promotion) (sqlc.CreatePromotionParams, error) {
	var combo []byte
	var discountCents *int64
	var percentOff *float64

	switch promo.Type() {
	case promotion.TypeCombo:
		rules := make([]comboComponent, 0, len(promo.Components()))
		for _, c := range promo.Components() {
			rules = append(rules, comboComponent{
				Kind:       string(c.Kind()),
				ValueCents: c.ValueCents(),
				Percent:    c.Percent(),
				CapCents:   c.CapCents(),
				Services:   c.Services().IDs(),
				Products:   c.Products().IDs(),
			})
		}
		encoded, err := json.Marshal(rules)
		if err != nil {
			return sqlc.CreatePromotionParams{}, err
		}
		combo = encoded
	case promotion.TypeFlat:
		v := promo.Components()[0].ValueCents()
		discountCents = &v
	case promotion.TypePercentage:
		v := promo.Components()[0].Percent()
		percentOff = &v
	}

	var startTime, endTime *string
	if w := promo.Window(); w != nil {
		s, e := w.Start(), w.End()
		startTime, endTime = &s, &e
	}

	var couponCode *string
	if promo.Activation() == promotion.ActivationCoupon {
		code := promo.CouponCode().String()
		couponCode = &code
	}

	var description *string
	if promo.Description() != "" {
		d := promo.Description()
		description = &d
	}

	return sqlc.CreatePromotionParams{
		ID:                    promo.ID(),
		Name:                  promo.Name(),
		Description:           pgconv.StringPtrToPgtype(description),
		PromoType:             string(promo.Type()),
		DiscountCents:         pgconv.Int64PtrToPgtype(discountCents),
		PercentOff:            pgconv.Float64PtrToPgtype(percentOff),
		MaxDiscountCents:      promo.MaxDiscountCents(),
		MinBillCents:          promo.MinBillCents(),
		ComboComponents:       combo,
		ApplicableServices:    promo.Services().IDs(),
		ApplicableProducts:    promo.Products().IDs(),
		ApplicableOutlets:     promo.Outlets().IDs(),
		StartDate:             pgconv.TimeToPgtype(promo.StartDate()),
		EndDate:               pgconv.TimeToPgtype(promo.EndDate()),
		StartTime:             pgconv.StringPtrToPgtype(startTime),
		EndTime:               pgconv.StringPtrToPgtype(endTime),
		IsActive:              promo.IsActive(),
		TargetingType:         string(promo.Targeting()),
		UsageLimitPerCustomer: promo.UsageLimitPerCustomer(),
		TotalUsageLimit:       pgconv.Int64PtrToPgtype(promo.TotalUsageLimit()),
		ActivationMode:        string(promo.Activation()),
		CouponCode:            pgconv.StringPtrToPgtype(couponCode),
	}, nil
}
