package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "salon-promo/internal/handler/dto/request"
	resdto "salon-promo/internal/handler/dto/response"
	"salon-promo/internal/handler/httperr"
	"salon-promo/internal/infra"
	"salon-promo/internal/usecase/commands"
	"salon-promo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Create promotion
// @Description Create a new promotion in the catalog
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Create promotion request"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreatePromotion(c.Request.Context(), req.ToCommand())
	if err != nil {
		status := http.StatusBadRequest
		msg := "Create promotion failed"
		switch {
		case errors.Is(err, commands.ErrDuplicatePromotion):
			status = http.StatusConflict
			msg = "Promotion already exists"
		case errors.Is(err, commands.ErrDatabaseOperationFailed):
			status = http.StatusInternalServerError
			msg = "Internal server error"
		}
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.PromotionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotionView(view))
}

// @Summary Get promotion
// @Description Get a promotion by ID
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary List promotions
// @Description List promotions, newest first
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.PromotionListItemResponse
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.q.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionList(items))
}

// @Summary Update promotion
// @Description Replace a promotion's configuration
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.CreatePromotionRequest true "Update promotion request"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.CreatePromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.UpdatePromotion(c.Request.Context(), id, req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrPromotionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotion", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary Deactivate promotion
// @Description Soft-disable a promotion; it stops matching immediately
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err = h.cmds.DeactivatePromotion(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPromotionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Deactivate failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Promotion usage
// @Description Per-customer usage counters for a promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {array} resdto.PromotionUsageResponse
// @Failure 400 {object} map[string]string
// @Router /promotions/{id}/usage [get]
func (h *PromotionHandler) Usage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	items, err := h.q.UsageByPromotion(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load usage", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionUsageList(items))
}
