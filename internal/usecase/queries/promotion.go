package queries

import (
	"context"

	"github.com/google/uuid"
)

type PromotionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context, limit, offset int) ([]*PromotionListItem, error)
	UsageByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*PromotionUsageView, error)
}

type PromotionViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	List(ctx context.Context, limit, offset int32) ([]*PromotionListItem, error)
}

type UsageViewRepo interface {
	ListByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*PromotionUsageView, error)
}

type promotionQueriesImpl struct {
	repo  PromotionViewRepo
	usage UsageViewRepo
}

func NewPromotionQueries(repo PromotionViewRepo, usage UsageViewRepo) PromotionQueries {
	return &promotionQueriesImpl{repo: repo, usage: usage}
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *promotionQueriesImpl) List(ctx context.Context, limit, offset int) ([]*PromotionListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.repo.List(ctx, int32(limit), int32(offset))
}

func (q *promotionQueriesImpl) UsageByPromotion(ctx context.Context, promotionID uuid.UUID) ([]*PromotionUsageView, error) {
	return q.usage.ListByPromotion(ctx, promotionID)
}
