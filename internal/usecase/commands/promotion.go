package commands

import (
	"context"
	"time"

	"salon-promo/internal/domain/promotion"
	"salon-promo/internal/infra"
	"salon-promo/internal/pkg/errs"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound       = errs.New("promotion not found")
	ErrDuplicatePromotion      = errs.New("duplicate promotion")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ComboRule struct {
	Kind       string
	ValueCents int64
	Percent    float64
	CapCents   int64
	Services   []uuid.UUID
	Products   []uuid.UUID
}

type CreatePromotionRequest struct {
	Name        string
	Description string
	PromoType   string

	DiscountCents int64
	PercentOff    float64

	MaxDiscountCents int64
	MinBillCents     int64

	ComboRules []ComboRule

	ApplicableServices []uuid.UUID
	ApplicableProducts []uuid.UUID
	ApplicableOutlets  []uuid.UUID

	StartDate time.Time
	EndDate   time.Time
	StartTime string
	EndTime   string

	IsActive      bool
	TargetingType string

	UsageLimitPerCustomer int32
	TotalUsageLimit       *int64

	ActivationMode string
	CouponCode     string
}

type CreatePromotionResult struct {
	PromotionID uuid.UUID
}

type PromotionCommands interface {
	CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*CreatePromotionResult, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, req CreatePromotionRequest) error
	DeactivatePromotion(ctx context.Context, id uuid.UUID) error
}

type promotionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPromotionUseCase(uow shared.UnitOfWork) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow}
}

func (uc *promotionUseCaseImpl) CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*CreatePromotionResult, error) {
	promo, err := buildPromotion(uuid.New(), req)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Promotions().Create(ctx, tx.DB(), promo)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicatePromotion)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreatePromotionResult{PromotionID: createdID}, nil
}

func (uc *promotionUseCaseImpl) UpdatePromotion(ctx context.Context, id uuid.UUID, req CreatePromotionRequest) error {
	promo, err := buildPromotion(id, req)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Promotions().Update(ctx, tx.DB(), promo)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPromotionNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *promotionUseCaseImpl) DeactivatePromotion(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Promotions().Deactivate(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPromotionNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildPromotion(id uuid.UUID, req CreatePromotionRequest) (*promotion.Promotion, error) {
	params := promotion.Params{
		ID:                    id,
		Name:                  req.Name,
		Description:           req.Description,
		Type:                  promotion.Type(req.PromoType),
		ValueCents:            req.DiscountCents,
		Percent:               req.PercentOff,
		MaxDiscountCents:      req.MaxDiscountCents,
		MinBillCents:          req.MinBillCents,
		Services:              req.ApplicableServices,
		Products:              req.ApplicableProducts,
		Outlets:               req.ApplicableOutlets,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		Active:                req.IsActive,
		Targeting:             promotion.TargetingType(req.TargetingType),
		UsageLimitPerCustomer: req.UsageLimitPerCustomer,
		TotalUsageLimit:       req.TotalUsageLimit,
		Activation:            promotion.ActivationMode(req.ActivationMode),
		CouponCode:            req.CouponCode,
	}

	for _, rule := range req.ComboRules {
		params.Components = append(params.Components, promotion.ComponentParams{
			Type:       promotion.Type(rule.Kind),
			ValueCents: rule.ValueCents,
			Percent:    rule.Percent,
			CapCents:   rule.CapCents,
			Services:   rule.Services,
			Products:   rule.Products,
		})
	}

	return promotion.New(params)
}
