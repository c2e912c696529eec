package commands

import (
	"context"
	"encoding/json"
	"errors"

	"salon-promo/internal/infra"
	"salon-promo/internal/pkg/clock"
	"salon-promo/internal/pkg/errs"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPromotionInactive     = errs.New("promotion is no longer active")
	ErrTotalLimitExceeded    = errs.New("promotion total usage limit exhausted")
	ErrCustomerLimitExceeded = errs.New("customer usage limit exhausted")
)

type BreakdownEntry struct {
	Kind        string `json:"kind"`
	AmountCents int64  `json:"amount_cents"`
}

type CommitRedemptionRequest struct {
	BillID        uuid.UUID
	PromotionID   uuid.UUID
	CustomerID    uuid.UUID
	DiscountCents int64
	Breakdown     []BreakdownEntry
}

type CommitRedemptionResult struct {
	Redemption *shared.RedemptionRecord
	IsReplayed bool
}

type RedemptionCommands interface {
	CommitRedemption(ctx context.Context, req CommitRedemptionRequest) (*CommitRedemptionResult, error)
}

type redemptionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedemptionUseCase(uow shared.UnitOfWork, clk clock.Clock) RedemptionCommands {
	return &redemptionUseCaseImpl{uow: uow, clock: clk}
}

// CommitRedemption atomically records a redemption and consumes usage
// capacity. The bill ID is the idempotency key: a bill that was already
// committed replays the stored outcome instead of consuming capacity again.
func (uc *redemptionUseCaseImpl) CommitRedemption(ctx context.Context, req CommitRedemptionRequest) (*CommitRedemptionResult, error) {
	breakdown, err := json.Marshal(req.Breakdown)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := &CommitRedemptionResult{}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Promotions().FindByID(ctx, tx.DB(), req.PromotionID)
		if derr != nil {
			return derr
		}

		rows, derr := tx.Redemptions().TryInsert(ctx, tx.DB(), &shared.RedemptionRecord{
			BillID:        req.BillID,
			PromotionID:   req.PromotionID,
			CustomerID:    req.CustomerID,
			DiscountCents: req.DiscountCents,
			Breakdown:     breakdown,
		})
		if derr != nil {
			return derr
		}
		if rows == 0 {
			// First committer wins; everyone else gets the stored outcome.
			stored, derr := tx.Redemptions().FindByBillID(ctx, tx.DB(), req.BillID)
			if derr != nil {
				return derr
			}
			result.Redemption = stored
			result.IsReplayed = true
			return nil
		}

		if !snap.IsActive {
			return ErrPromotionInactive
		}

		rows, derr = tx.Promotions().IncrementUsage(ctx, tx.DB(), req.PromotionID)
		if derr != nil {
			return derr
		}
		if rows == 0 {
			return ErrTotalLimitExceeded
		}

		rows, derr = tx.Usage().RecordUse(ctx, tx.DB(), req.PromotionID, req.CustomerID, snap.UsageLimitPerCustomer)
		if derr != nil {
			return derr
		}
		if rows == 0 {
			return ErrCustomerLimitExceeded
		}

		result.Redemption = &shared.RedemptionRecord{
			BillID:        req.BillID,
			PromotionID:   req.PromotionID,
			CustomerID:    req.CustomerID,
			DiscountCents: req.DiscountCents,
			Breakdown:     breakdown,
			CommittedAt:   uc.clock.Now(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPromotionInactive),
			errors.Is(err, ErrTotalLimitExceeded),
			errors.Is(err, ErrCustomerLimitExceeded):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrPromotionNotFound)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return result, nil
}
