package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-promo/internal/domain/promotion"
	"salon-promo/internal/infra"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/pgconv"
	"salon-promo/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionViewQueries interface {
	GetPromotionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Promotions, error)
	ListPromotions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPromotionsParams) ([]sqlc.Promotions, error)
	ListActivePromotions(ctx context.Context, db sqlc.DBTX) ([]sqlc.Promotions, error)
}

type PromotionReadStore struct {
	queries PromotionViewQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(q *sqlc.Queries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: q,
		db:      db,
	}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromotionView, error) {
	row, err := r.queries.GetPromotionByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}

	view, err := rowToPromotionView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promotion row", err)
	}
	return view, nil
}

func (r *PromotionReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.PromotionListItem, error) {
	rows, err := r.queries.ListPromotions(ctx, r.db, sqlc.ListPromotionsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}

	items := make([]*queries.PromotionListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.PromotionListItem{
			ID:                row.ID,
			Name:              row.Name,
			PromoType:         row.PromoType,
			IsActive:          row.IsActive,
			ActivationMode:    row.ActivationMode,
			StartDate:         pgconv.TimeFromPgtype(row.StartDate),
			EndDate:           pgconv.TimeFromPgtype(row.EndDate),
			CurrentUsageCount: row.CurrentUsageCount,
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

// ActiveCatalog loads the live promotion set as domain entities, reading
// through the caller's transaction so it shares a snapshot with the usage
// counters. Rows that no longer satisfy the domain's construction rules are
// skipped, not fatal: one corrupt promotion must not take the quote path down.
func (r *PromotionReadStore) ActiveCatalog(ctx context.Context, db sqlc.DBTX) ([]queries.CatalogEntry, error) {
	rows, err := r.queries.ListActivePromotions(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active promotions", err)
	}

	catalog := make([]queries.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		promo, err := rowToDomain(row)
		if err != nil {
			slog.Warn("skipping unbuildable promotion row",
				"promotion_id", row.ID.String(),
				"error", err.Error())
			continue
		}
		catalog = append(catalog, queries.CatalogEntry{
			Promotion:   promo,
			GlobalUsage: row.CurrentUsageCount,
		})
	}
	return catalog, nil
}

func rowToPromotionView(row sqlc.Promotions) (*queries.PromotionView, error) {
	var combo []queries.ComboRuleView
	if len(row.ComboComponents) > 0 {
		if err := json.Unmarshal(row.ComboComponents, &combo); err != nil {
			return nil, err
		}
	}

	return &queries.PromotionView{
		ID:                    row.ID,
		Name:                  row.Name,
		Description:           pgconv.StringPtrFromPgtype(row.Description),
		PromoType:             row.PromoType,
		DiscountCents:         pgconv.Int64PtrFromPgtype(row.DiscountCents),
		PercentOff:            pgconv.Float64PtrFromPgtype(row.PercentOff),
		MaxDiscountCents:      row.MaxDiscountCents,
		MinBillCents:          row.MinBillCents,
		ComboComponents:       combo,
		ApplicableServices:    row.ApplicableServices,
		ApplicableProducts:    row.ApplicableProducts,
		ApplicableOutlets:     row.ApplicableOutlets,
		StartDate:             pgconv.TimeFromPgtype(row.StartDate),
		EndDate:               pgconv.TimeFromPgtype(row.EndDate),
		StartTime:             pgconv.StringPtrFromPgtype(row.StartTime),
		EndTime:               pgconv.StringPtrFromPgtype(row.EndTime),
		IsActive:              row.IsActive,
		TargetingType:         row.TargetingType,
		UsageLimitPerCustomer: row.UsageLimitPerCustomer,
		TotalUsageLimit:       pgconv.Int64PtrFromPgtype(row.TotalUsageLimit),
		CurrentUsageCount:     row.CurrentUsageCount,
		ActivationMode:        row.ActivationMode,
		CouponCode:            pgconv.StringPtrFromPgtype(row.CouponCode),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func rowToDomain(row sqlc.Promotions) (*promotion.Promotion, error) {
	params := promotion.Params{
		ID:                    row.ID,
		Name:                  row.Name,
		Type:                  promotion.Type(row.PromoType),
		MaxDiscountCents:      row.MaxDiscountCents,
		MinBillCents:          row.MinBillCents,
		Services:              row.ApplicableServices,
		Products:              row.ApplicableProducts,
		Outlets:               row.ApplicableOutlets,
		StartDate:             pgconv.TimeFromPgtype(row.StartDate),
		EndDate:               pgconv.TimeFromPgtype(row.EndDate),
		Active:                row.IsActive,
		Targeting:             promotion.TargetingType(row.TargetingType),
		UsageLimitPerCustomer: row.UsageLimitPerCustomer,
		TotalUsageLimit:       pgconv.Int64PtrFromPgtype(row.TotalUsageLimit),
		Activation:            promotion.ActivationMode(row.ActivationMode),
	}

	if d := pgconv.StringPtrFromPgtype(row.Description); d != nil {
		params.Description = *d
	}
	if v := pgconv.Int64PtrFromPgtype(row.DiscountCents); v != nil {
		params.ValueCents = *v
	}
	if v := pgconv.Float64PtrFromPgtype(row.PercentOff); v != nil {
		params.Percent = *v
	}
	if s := pgconv.StringPtrFromPgtype(row.StartTime); s != nil {
		params.StartTime = *s
	}
	if e := pgconv.StringPtrFromPgtype(row.EndTime); e != nil {
		params.EndTime = *e
	}
	if c := pgconv.StringPtrFromPgtype(row.CouponCode); c != nil {
		params.CouponCode = *c
	}

	if len(row.ComboComponents) > 0 {
		var rules []queries.ComboRuleView
		if err := json.Unmarshal(row.ComboComponents, &rules); err != nil {
			return nil, err
		}
		for _, rule := range rules {
			params.Components = append(params.Components, promotion.ComponentParams{
				Type:       promotion.Type(rule.Kind),
				ValueCents: rule.ValueCents,
				Percent:    rule.Percent,
				CapCents:   rule.CapCents,
				Services:   rule.Services,
				Products:   rule.Products,
			})
		}
	}

	return promotion.New(params)
}
