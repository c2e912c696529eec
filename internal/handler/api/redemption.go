package api

import (
	"errors"
	"net/http"

	reqdto "salon-promo/internal/handler/dto/request"
	resdto "salon-promo/internal/handler/dto/response"
	"salon-promo/internal/handler/httperr"
	"salon-promo/internal/infra"
	"salon-promo/internal/usecase/commands"
	"salon-promo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.RedemptionQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.RedemptionQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Commit a redemption
// @Description Atomically record a redemption and consume usage capacity. Committing the same bill twice replays the stored outcome.
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommitRedemptionRequest true "Redemption to commit"
// @Success 200 {object} resdto.RedemptionResponse "Replayed earlier commit"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redemptions [post]
func (h *RedemptionHandler) Commit(c *gin.Context) {
	var req reqdto.CommitRedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CommitRedemption(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
		case errors.Is(err, commands.ErrPromotionInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Promotion no longer active", nil)
		case errors.Is(err, commands.ErrTotalLimitExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Promotion usage limit exhausted", nil)
		case errors.Is(err, commands.ErrCustomerLimitExceeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Customer usage limit exhausted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Commit failed", nil)
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRedemptionRecord(result.Redemption, result.IsReplayed))
}

// @Summary Get redemption
// @Description Get the committed redemption for a bill
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param billId path string true "Bill ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /redemptions/{billId} [get]
func (h *RedemptionHandler) Get(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("billId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bill id", nil)
		return
	}

	view, err := h.q.GetByBillID(c.Request.Context(), billID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load redemption", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionView(view))
}
