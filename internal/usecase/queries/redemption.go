package queries

import (
	"context"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	GetByBillID(ctx context.Context, billID uuid.UUID) (*RedemptionView, error)
}

type RedemptionViewRepo interface {
	FindByBillID(ctx context.Context, billID uuid.UUID) (*RedemptionView, error)
}

type redemptionQueriesImpl struct {
	repo RedemptionViewRepo
}

func NewRedemptionQueries(repo RedemptionViewRepo) RedemptionQueries {
	return &redemptionQueriesImpl{repo: repo}
}

func (q *redemptionQueriesImpl) GetByBillID(ctx context.Context, billID uuid.UUID) (*RedemptionView, error) {
	return q.repo.FindByBillID(ctx, billID)
}
