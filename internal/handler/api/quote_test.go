//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-promo/internal/domain/staff"
	"salon-promo/internal/handler/api"
	"salon-promo/internal/usecase/queries"
	"salon-promo/tests/common/builder"
	"salon-promo/tests/common/httptest"
	"salon-promo/tests/common/testutil"
	queriesmock "salon-promo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("staff_role", staff.RolePOS)
		c.Next()
	}

	s.router.POST("/quotes", authMiddleware, s.handler.Quote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestQuote() {
	url := "/quotes"
	reqBody := builder.NewBillBuilder().BuildQuoteRequestDTO()

	s.Run("success: returns 200 with applied promotion", func() {
		promotionID := uuid.New()
		name := "Festive Flat 200"
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{
				Applied:       true,
				PromotionID:   &promotionID,
				PromotionName: &name,
				SubtotalCents: 100000,
				DiscountCents: 20000,
				PayableCents:  80000,
				Breakdown:     []queries.ComponentAmountView{{Kind: "FLAT", AmountCents: 20000}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["applied"])
		s.Equal(promotionID.String(), body["promotion_id"])
		s.EqualValues(80000, body["payable_cents"])
	})

	s.Run("success: returns 200 when nothing applies", func() {
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{
				Applied:       false,
				SubtotalCents: 100000,
				PayableCents:  100000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(false, body["applied"])
		s.NotContains(body, "promotion_id")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []promotionTestCase{
			{name: "missing customer", mutate: testutil.Field("customer_id", nil), expectCode: http.StatusBadRequest},
			{name: "unknown segment", mutate: testutil.Field("customer_segment", "VIP"), expectCode: http.StatusBadRequest},
			{name: "negative subtotal", mutate: testutil.Field("subtotal_cents", -1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when the bill fails domain validation", func() {
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidBill).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bill")
	})

	s.Run("error: 503 Service Unavailable when the catalog cannot be read", func() {
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCatalogUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Quote temporarily unavailable")
	})

	s.Run("error: 503 Service Unavailable when the ledger cannot be read", func() {
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrLedgerUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Quote temporarily unavailable")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
