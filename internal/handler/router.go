package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-promo/internal/handler/api"
	"salon-promo/internal/handler/middleware"
	"salon-promo/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	promotionHandler *api.PromotionHandler,
	quoteHandler *api.QuoteHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, promotionHandler, quoteHandler, redemptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	promotionHandler *api.PromotionHandler,
	quoteHandler *api.QuoteHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "", Handler: promotionHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: promotionHandler.Get},
				{Method: http.MethodGet, Path: "/:id/usage", Handler: promotionHandler.Usage},
			})

			catalogWrites := promotions.Group("")
			catalogWrites.Use(authMiddleware.RequireCatalogManager())
			addRoutes(catalogWrites, []route{
				{Method: http.MethodPost, Path: "", Handler: promotionHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: promotionHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: promotionHandler.Deactivate},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.Quote},
			{Method: http.MethodPost, Path: "/redemptions", Handler: redemptionHandler.Commit},
			{Method: http.MethodGet, Path: "/redemptions/:billId", Handler: redemptionHandler.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
