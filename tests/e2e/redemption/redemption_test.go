//go:build e2e

package redemption_test

import (
	"net/http"
	"sync"
	"testing"

	"salon-promo/internal/domain/staff"
	reqdto "salon-promo/internal/handler/dto/request"
	"salon-promo/internal/handler/dto/response"
	"salon-promo/tests/common/authtest"
	"salon-promo/tests/common/builder"
	"salon-promo/tests/common/dbtest"
	"salon-promo/tests/common/httptest"
	"salon-promo/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const redemptionsURL = "/api/redemptions"

type RedemptionSuite struct {
	e2e.SharedSuite
}

func (s *RedemptionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) token(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), staff.RoleReceptionist)
}

func commitRequest(promotionID, customerID uuid.UUID) reqdto.CommitRedemptionRequest {
	return reqdto.CommitRedemptionRequest{
		BillID:        uuid.New(),
		PromotionID:   promotionID,
		CustomerID:    customerID,
		DiscountCents: 20000,
		Breakdown: []reqdto.BreakdownEntryRequest{
			{Kind: "FLAT", AmountCents: 20000},
		},
	}
}

// =============================================================================
// TestCommit - Redemption commit API tests
// =============================================================================

func (s *RedemptionSuite) TestCommit() {
	s.Run("Normal case: Fresh commit consumes capacity and records the redemption", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().BuildInfra())
		token := s.token(t)

		req := commitRequest(promoID, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.RedemptionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, req.BillID.String(), res.BillID)
		require.Equal(t, int64(20000), res.DiscountCents)
		require.False(t, res.Replayed)

		require.Equal(t, int64(1), dbtest.GlobalUsageCount(t, s.DB, promoID))
		require.Equal(t, int32(1), dbtest.CustomerUsageCount(t, s.DB, promoID, req.CustomerID))
		require.Equal(t, int64(1), dbtest.RedemptionCount(t, s.DB, promoID))
	})

	s.Run("Normal case: Recommitting the same bill replays the stored outcome", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.WithPerCustomerLimit(5)
		}).BuildInfra())
		token := s.token(t)

		req := commitRequest(promoID, uuid.New())
		first := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, req, token)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		// a retry with a different discount must not overwrite the stored record
		req.DiscountCents = 99999
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, req, token)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())

		var res response.RedemptionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &res))
		require.True(t, res.Replayed)
		require.Equal(t, int64(20000), res.DiscountCents)

		require.Equal(t, int64(1), dbtest.GlobalUsageCount(t, s.DB, promoID), "replay must not consume capacity")
		require.Equal(t, int32(1), dbtest.CustomerUsageCount(t, s.DB, promoID, req.CustomerID))
		require.Equal(t, int64(1), dbtest.RedemptionCount(t, s.DB, promoID))
	})

	s.Run("Concurrency: distinct bills racing for the last slot yield exactly one success", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
			b.WithTotalLimit(1).WithPerCustomerLimit(5)
		}).BuildInfra())
		token := s.token(t)

		const workers = 8
		codes := make(chan int, workers)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := commitRequest(promoID, uuid.New())
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, req, token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		created, conflicted := 0, 0
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one commit may win the last slot")
		require.Equal(t, workers-1, conflicted)

		require.Equal(t, int64(1), dbtest.GlobalUsageCount(t, s.DB, promoID))
		require.Equal(t, int64(1), dbtest.RedemptionCount(t, s.DB, promoID))
	})

	s.Run("Error case: Per-customer limit rejects a second bill from the same customer", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().BuildInfra())
		token := s.token(t)
		customerID := uuid.New()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, commitRequest(promoID, customerID), token)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, commitRequest(promoID, customerID), token)
		require.Equal(t, http.StatusConflict, second.Code, second.Body.String())

		// the refused commit must not leave a partial write behind
		require.Equal(t, int64(1), dbtest.GlobalUsageCount(t, s.DB, promoID))
		require.Equal(t, int32(1), dbtest.CustomerUsageCount(t, s.DB, promoID, customerID))
		require.Equal(t, int64(1), dbtest.RedemptionCount(t, s.DB, promoID))
	})

	s.Run("Error case: Inactive promotion cannot be committed", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().Inactive().BuildInfra())
		token := s.token(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, commitRequest(promoID, uuid.New()), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, int64(0), dbtest.RedemptionCount(t, s.DB, promoID))
	})

	s.Run("Error case: Unknown promotion returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, commitRequest(uuid.New(), uuid.New()), s.token(t))
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when no token supplied", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().BuildInfra())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, commitRequest(promoID, uuid.New()), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestGet - Redemption lookup API tests
// =============================================================================

func (s *RedemptionSuite) TestGet() {
	s.Run("Normal case: Committed redemption retrieved by bill id", func() {
		t := s.T()

		promoID := dbtest.InsertPromotion(t, s.DB, builder.NewPromotionBuilder().BuildInfra())
		token := s.token(t)

		req := commitRequest(promoID, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redemptionsURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		getResp := httptest.PerformRequest(t, s.Router, http.MethodGet, redemptionsURL+"/"+req.BillID.String(), nil, token)
		require.Equal(t, http.StatusOK, getResp.Code, getResp.Body.String())

		var res response.RedemptionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, getResp.Body, &res))
		require.Equal(t, req.BillID.String(), res.BillID)
		require.Equal(t, promoID.String(), res.PromotionID)
		require.Equal(t, int64(20000), res.DiscountCents)
		require.Len(t, res.Breakdown, 1)
	})

	s.Run("Error case: Returns 404 for a bill that was never committed", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, redemptionsURL+"/"+uuid.New().String(), nil, s.token(t))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
