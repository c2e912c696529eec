//go:build e2e

package promotion_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salon-promo/internal/domain/staff"
	"salon-promo/internal/handler/dto/response"
	"salon-promo/tests/common/authtest"
	"salon-promo/tests/common/builder"
	"salon-promo/tests/common/dbtest"
	"salon-promo/tests/common/httptest"
	"salon-promo/tests/common/testutil"
	"salon-promo/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	promotionsURL = "/api/promotions"
	quotesURL     = "/api/quotes"
)

type PromotionSuite struct {
	e2e.SharedSuite
}

func (s *PromotionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PromotionSuite))
}

func (s *PromotionSuite) adminToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), staff.RoleAdmin)
}

func (s *PromotionSuite) posToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), staff.RolePOS)
}

func (s *PromotionSuite) createPromotion(t *testing.T, b *builder.PromotionBuilder, token string) string {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.PromotionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

// =============================================================================
// TestPromotionLifecycle - Catalog management API tests
// =============================================================================

func (s *PromotionSuite) TestPromotionLifecycle() {
	s.Run("Normal case: Admin creates a promotion and reads it back", func() {
		t := s.T()
		token := s.adminToken(t)

		id := s.createPromotion(t, builder.NewPromotionBuilder().WithName("March Flat 200"), token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/"+id, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "March Flat 200", res.Name)
		require.Equal(t, "FLAT", res.PromoType)
		require.True(t, res.IsActive)
		require.Equal(t, int64(0), res.CurrentUsageCount)
	})

	s.Run("Normal case: Deactivated promotion stops quoting but stays readable", func() {
		t := s.T()
		admin := s.adminToken(t)
		pos := s.posToken(t)

		id := s.createPromotion(t, builder.NewPromotionBuilder(), admin)

		quote := builder.NewBillBuilder().BuildQuoteRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quote, pos)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var before response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &before))
		require.True(t, before.Applied)
		require.NotNil(t, before.PromotionID)
		require.Equal(t, id, *before.PromotionID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, promotionsURL+"/"+id, nil, admin)
		require.Equal(t, http.StatusNoContent, dw.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quote, pos)
		require.Equal(t, http.StatusOK, w.Code)

		var after response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &after))
		require.False(t, after.Applied)
		require.Equal(t, after.SubtotalCents, after.PayableCents)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/"+id, nil, admin)
		require.Equal(t, http.StatusOK, gw.Code)
		var res response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &res))
		require.False(t, res.IsActive)
	})

	s.Run("Normal case: List includes created promotions", func() {
		t := s.T()
		token := s.adminToken(t)

		s.createPromotion(t, builder.NewPromotionBuilder().WithName("Promo One"), token)
		s.createPromotion(t, builder.NewPromotionBuilder().WithName("Promo Two"), token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*response.PromotionListItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)
	})

	s.Run("Error case: Duplicate coupon code is rejected", func() {
		t := s.T()
		token := s.adminToken(t)

		s.createPromotion(t, builder.NewPromotionBuilder().AsCoupon("FESTIVE20"), token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL,
			builder.NewPromotionBuilder().WithName("Second Coupon").AsCoupon("FESTIVE20").BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Invalid payload is rejected by binding", func() {
		t := s.T()
		token := s.adminToken(t)

		body := testutil.DtoMap(t, builder.NewPromotionBuilder().BuildCreateRequestDTO(),
			testutil.Field("promo_type", "BOGOF"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, body, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Auth test - Non-admin roles cannot manage the catalog", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL,
			builder.NewPromotionBuilder().BuildCreateRequestDTO(), s.posToken(t))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when not authenticated", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestQuote - Bill evaluation API tests
// =============================================================================

func (s *PromotionSuite) TestQuote() {
	s.Run("Normal case: Largest discount wins when several promotions are eligible", func() {
		t := s.T()
		admin := s.adminToken(t)
		pos := s.posToken(t)

		s.createPromotion(t, builder.NewPromotionBuilder().WithName("Small Flat").AsFlat(5000), admin)
		bigID := s.createPromotion(t, builder.NewPromotionBuilder().WithName("Quarter Off").AsPercentage(25, 0), admin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewBillBuilder().WithSubtotal(100000).BuildQuoteRequestDTO(), pos)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Applied)
		require.Equal(t, bigID, *res.PromotionID)
		require.Equal(t, int64(25000), res.DiscountCents)
		require.Equal(t, int64(75000), res.PayableCents)
	})

	s.Run("Normal case: Coupon promotion applies only when its code is presented", func() {
		t := s.T()
		admin := s.adminToken(t)
		pos := s.posToken(t)

		s.createPromotion(t, builder.NewPromotionBuilder().AsCoupon("SAVE200"), admin)

		without := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewBillBuilder().BuildQuoteRequestDTO(), pos)
		require.Equal(t, http.StatusOK, without.Code)
		var res response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, without.Body, &res))
		require.False(t, res.Applied)

		with := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewBillBuilder().WithCoupon("SAVE200").BuildQuoteRequestDTO(), pos)
		require.Equal(t, http.StatusOK, with.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, with.Body, &res))
		require.True(t, res.Applied)
		require.Equal(t, int64(20000), res.DiscountCents)
	})

	s.Run("Normal case: Quoting is read-only and repeatable", func() {
		t := s.T()
		admin := s.adminToken(t)
		pos := s.posToken(t)

		id := s.createPromotion(t, builder.NewPromotionBuilder(), admin)

		quote := builder.NewBillBuilder().BuildQuoteRequestDTO()
		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, quote, pos)
			require.Equal(t, http.StatusOK, w.Code)
		}

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/"+id, nil, admin)
		require.Equal(t, http.StatusOK, gw.Code)
		var res response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &res))
		require.Equal(t, int64(0), res.CurrentUsageCount, "quoting must never consume capacity")
	})

	s.Run("Normal case: Promotion starting later today is quotable all day", func() {
		t := s.T()
		pos := s.posToken(t)

		// Day granularity: the whole first calendar day counts, even when
		// the stored start_date carries a later time of day.
		var lateToday time.Time
		require.NoError(t, s.DB.QueryRow(context.Background(),
			`SELECT date_trunc('day', now()) + interval '23 hours 59 minutes'`).Scan(&lateToday))

		row := builder.NewPromotionBuilder().
			WithName("Evening Launch").
			WithDates(lateToday, lateToday.AddDate(0, 1, 0)).
			BuildInfra()
		id := dbtest.InsertPromotion(t, s.DB, row)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewBillBuilder().WithSubtotal(100000).BuildQuoteRequestDTO(), pos)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, res.Applied, "first-day promotion must be visible before its start time of day")
		require.Equal(t, id.String(), *res.PromotionID)
	})

	s.Run("Error case: Invalid segment is rejected by binding", func() {
		t := s.T()

		body := testutil.DtoMap(t, builder.NewBillBuilder().BuildQuoteRequestDTO(),
			testutil.Field("customer_segment", "VIP"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, body, s.posToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
