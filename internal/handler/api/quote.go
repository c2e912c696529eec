package api

import (
	"errors"
	"net/http"

	reqdto "salon-promo/internal/handler/dto/request"
	resdto "salon-promo/internal/handler/dto/response"
	"salon-promo/internal/handler/httperr"
	"salon-promo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Quote a bill
// @Description Evaluate a bill against the promotion catalog and return the best discount
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Bill to evaluate"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.Evaluate(c.Request.Context(), req.ToQuery())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidBill):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bill", nil)
		case errors.Is(err, queries.ErrCatalogUnavailable),
			errors.Is(err, queries.ErrLedgerUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Quote temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Quote failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
