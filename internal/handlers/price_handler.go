package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/services"
)

// PriceHandler serves the cached live price basket.
type PriceHandler struct {
	priceService services.PriceServicer
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(priceService services.PriceServicer) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// GetLivePrices handles fetching the fixed asset basket through the TTL cache.
// @Summary     Live prices
// @Tags        prices
// @Produce     json
// @Success     200 {object} services.PriceBook
// @Failure     429 {object} ErrorResponse "Upstream rate limited, no cache available"
// @Failure     500 {object} ErrorResponse "Upstream failure, no cache available"
// @Failure     504 {object} ErrorResponse "Upstream timeout, no cache available"
// @Router      /prices [get]
func (h *PriceHandler) GetLivePrices(c *gin.Context) {
	book, err := h.priceService.GetLivePrices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}
