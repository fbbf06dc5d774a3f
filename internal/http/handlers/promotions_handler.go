package handlers

import (
	"errors"
	"net/http"

	"mysched/internal/domain"
	"mysched/internal/service"

	"github.com/gin-gonic/gin"
)

type PromotionsHandler struct {
	promotions *service.PromotionsService
}

func NewPromotionsHandler(promotions *service.PromotionsService) *PromotionsHandler {
	return &PromotionsHandler{promotions: promotions}
}

// ListPromotions godoc
// @Summary List promotions
// @Description Loads the promotions tab on demand and returns its records, optionally filtered.
// @Tags promotions
// @Produce json
// @Param q query string false "Free-text filter over title, description and type"
// @Param type query string false "Exact promotion type filter"
// @Success 200 {object} PromotionsResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/promotions [get]
func (h *PromotionsHandler) ListPromotions(c *gin.Context) {
	records, err := h.promotions.Load(c.Request.Context())
	if err != nil {
		// The pricing tab masquerading as promotions is not a failure; the
		// caller gets an empty list plus the schema it should publish.
		if errors.Is(err, service.ErrSchemaMismatch) {
			c.JSON(http.StatusOK, PromotionsResponse{
				Promotions: []domain.PromotionRecord{},
				Notice:     "no promotions found; " + service.ExpectedPromoSchema,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	filtered := service.FilterPromotions(records, c.Query("q"), c.Query("type"))
	c.JSON(http.StatusOK, PromotionsResponse{Promotions: filtered})
}
