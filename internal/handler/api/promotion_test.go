//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-promo/internal/domain/staff"
	"salon-promo/internal/handler/api"
	"salon-promo/internal/infra"
	"salon-promo/internal/usecase/commands"
	"salon-promo/tests/common/builder"
	"salon-promo/tests/common/httptest"
	"salon-promo/tests/common/testutil"
	commandsmock "salon-promo/tests/mock/commands"
	queriesmock "salon-promo/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromotionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	mockQueries  *queriesmock.MockPromotionQueries
	handler      *api.PromotionHandler
}

func (s *PromotionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromotionQueries(s.mockCtrl)
	s.handler = api.NewPromotionHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", uuid.New())
		c.Set("staff_role", staff.RoleAdmin)
		c.Next()
	}

	s.router.POST("/promotions", authMiddleware, s.handler.Create)
	s.router.GET("/promotions", authMiddleware, s.handler.List)
	s.router.GET("/promotions/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/promotions/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/promotions/:id", authMiddleware, s.handler.Deactivate)
	s.router.GET("/promotions/:id/usage", authMiddleware, s.handler.Usage)
}

func (s *PromotionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromotionHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionHandlerTestSuite))
}

type promotionTestCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PromotionHandlerTestSuite) TestCreate() {
	url := "/promotions"

	promoBuilder := builder.NewPromotionBuilder()
	reqBody := promoBuilder.BuildCreateRequestDTO()
	returnView := promoBuilder.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreatePromotion(gomock.Any(), gomock.Any()).
			Return(&commands.CreatePromotionResult{PromotionID: returnView.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal("FLAT", body["promo_type"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []promotionTestCase{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "unknown promo type", mutate: testutil.Field("promo_type", "BOGOF"), expectCode: http.StatusBadRequest},
			{name: "unknown targeting type", mutate: testutil.Field("targeting_type", "VIP"), expectCode: http.StatusBadRequest},
			{name: "unknown activation mode", mutate: testutil.Field("activation_mode", "MANUAL"), expectCode: http.StatusBadRequest},
			{name: "percent above 100", mutate: testutil.Field("percent_off", 101), expectCode: http.StatusBadRequest},
			{name: "missing start date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "zero total usage limit", mutate: testutil.Field("total_usage_limit", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate coupon code", func() {
		s.mockCommands.EXPECT().CreatePromotion(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicatePromotion).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *PromotionHandlerTestSuite) TestGet() {
	returnView := builder.NewPromotionBuilder().BuildView()

	s.Run("success: returns 200 with promotion", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions/"+returnView.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 404 Not Found for unknown promotion", func() {
		unknownID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknownID).
			Return(nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions/"+unknownID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *PromotionHandlerTestSuite) TestList() {
	s.Run("success: returns 200 with items", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 50, 0).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: pagination parameters pass through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 10, 20).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions?limit=10&offset=20", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestUpdate / TestDeactivate / TestUsage
// ================================================================================

func (s *PromotionHandlerTestSuite) TestUpdate() {
	promoBuilder := builder.NewPromotionBuilder()
	reqBody := promoBuilder.BuildCreateRequestDTO()
	returnView := promoBuilder.BuildView()
	url := "/promotions/" + returnView.ID.String()

	s.Run("success: returns 200 with updated promotion", func() {
		s.mockCommands.EXPECT().UpdatePromotion(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 404 Not Found for unknown promotion", func() {
		s.mockCommands.EXPECT().UpdatePromotion(gomock.Any(), returnView.ID, gomock.Any()).
			Return(commands.ErrPromotionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *PromotionHandlerTestSuite) TestDeactivate() {
	promotionID := uuid.New()
	url := "/promotions/" + promotionID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivatePromotion(gomock.Any(), promotionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown promotion", func() {
		s.mockCommands.EXPECT().DeactivatePromotion(gomock.Any(), promotionID).
			Return(commands.ErrPromotionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *PromotionHandlerTestSuite) TestUsage() {
	promotionID := uuid.New()

	s.Run("success: returns 200 with counters", func() {
		s.mockQueries.EXPECT().UsageByPromotion(gomock.Any(), promotionID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/promotions/"+promotionID.String()+"/usage", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
