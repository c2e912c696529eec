package queries

import (
	"context"
	"errors"
	"time"

	"salon-promo/internal/domain/billing"
	"salon-promo/internal/domain/promotion"
	sqlc "salon-promo/internal/infra/sqlc/generated"
	"salon-promo/internal/pkg/clock"
	"salon-promo/internal/pkg/config"
	"salon-promo/internal/pkg/errs"
	"salon-promo/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBill        = errs.New("invalid bill")
	ErrCatalogUnavailable = errs.New("promotion catalog unavailable")
	ErrLedgerUnavailable  = errs.New("usage ledger unavailable")
)

type BillItem struct {
	RefType     string
	RefID       uuid.UUID
	AmountCents int64
}

type EvaluateBillRequest struct {
	OutletID        uuid.UUID
	CustomerID      uuid.UUID
	CustomerSegment string
	CouponCode      *string
	SubtotalCents   int64
	Items           []BillItem
}

// PromotionCatalog supplies the live promotion set for evaluation.
type PromotionCatalog interface {
	ActiveCatalog(ctx context.Context, db sqlc.DBTX) ([]CatalogEntry, error)
}

// UsageCounts supplies a customer's per-promotion redemption counters.
type UsageCounts interface {
	CustomerCounts(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (map[uuid.UUID]int32, error)
}

type QuoteQueries interface {
	Evaluate(ctx context.Context, req EvaluateBillRequest) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	uow     shared.UnitOfWork
	catalog PromotionCatalog
	usage   UsageCounts
	clock   clock.Clock
	timeout time.Duration
}

func NewQuoteQueries(uow shared.UnitOfWork, catalog PromotionCatalog, usage UsageCounts, clk clock.Clock, cfg config.EngineConfig) QuoteQueries {
	return &quoteQueriesImpl{
		uow:     uow,
		catalog: catalog,
		usage:   usage,
		clock:   clk,
		timeout: cfg.QuoteTimeout,
	}
}

// Evaluate runs the full eligibility, calculation and resolution pipeline for
// one bill. It never writes: the same bill can be evaluated any number of
// times. Catalog or ledger failures fail the quote rather than silently
// pricing without discounts.
func (q *quoteQueriesImpl) Evaluate(ctx context.Context, req EvaluateBillRequest) (*QuoteView, error) {
	bill, err := toBill(req, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBill)
	}

	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	// Both reads run in one read-only transaction so the catalog and the
	// customer's counters come from the same snapshot.
	var (
		entries []CatalogEntry
		counts  map[uuid.UUID]int32
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		entries, err = q.catalog.ActiveCatalog(ctx, db)
		if err != nil {
			return errs.Mark(err, ErrCatalogUnavailable)
		}
		counts, err = q.usage.CustomerCounts(ctx, db, req.CustomerID)
		if err != nil {
			return errs.Mark(err, ErrLedgerUnavailable)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrLedgerUnavailable) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	catalog := make([]*promotion.Promotion, 0, len(entries))
	globalUsage := make(map[uuid.UUID]int64, len(entries))
	for _, e := range entries {
		catalog = append(catalog, e.Promotion)
		globalUsage[e.Promotion.ID()] = e.GlobalUsage
	}

	lookup := func(promotionID uuid.UUID) promotion.Usage {
		return promotion.Usage{
			CustomerCount: counts[promotionID],
			GlobalCount:   globalUsage[promotionID],
		}
	}

	eligible := promotion.Filter(catalog, bill, lookup, bill.EvaluatedAt())

	candidates := make([]promotion.Candidate, 0, len(eligible))
	for _, p := range eligible {
		candidates = append(candidates, promotion.Candidate{
			Promotion: p,
			Discount:  p.Compute(bill),
		})
	}

	decision := promotion.Resolve(candidates)
	return toQuoteView(bill, eligible, decision), nil
}

func toBill(req EvaluateBillRequest, now time.Time) (billing.Bill, error) {
	items := make([]billing.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := billing.NewLineItem(billing.RefType(it.RefType), it.RefID, it.AmountCents)
		if err != nil {
			return billing.Bill{}, err
		}
		items = append(items, item)
	}

	return billing.NewBill(
		req.SubtotalCents,
		items,
		req.OutletID,
		req.CustomerID,
		billing.Segment(req.CustomerSegment),
		req.CouponCode,
		now,
	)
}

func toQuoteView(bill billing.Bill, eligible []*promotion.Promotion, decision promotion.Decision) *QuoteView {
	view := &QuoteView{
		Applied:       decision.Applied,
		SubtotalCents: bill.SubtotalCents(),
		DiscountCents: decision.AmountCents,
		PayableCents:  bill.SubtotalCents() - decision.AmountCents,
	}
	if !decision.Applied {
		return view
	}

	id := decision.PromotionID
	view.PromotionID = &id
	for _, p := range eligible {
		if p.ID() == decision.PromotionID {
			name := p.Name()
			view.PromotionName = &name
			break
		}
	}
	for _, c := range decision.Breakdown {
		view.Breakdown = append(view.Breakdown, ComponentAmountView{
			Kind:        string(c.Kind),
			AmountCents: c.AmountCents,
		})
	}
	return view
}
