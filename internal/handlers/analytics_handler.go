package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/services"
)

// AnalyticsHandler serves derived portfolio analytics.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetPortfolioAnalytics handles computing a portfolio's aggregate analytics.
// @Summary     Portfolio analytics
// @Tags        analytics
// @Produce     json
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} services.PortfolioAnalytics
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id}/analytics [get]
func (h *AnalyticsHandler) GetPortfolioAnalytics(c *gin.Context) {
	portfolioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	analytics, err := h.analyticsService.GetPortfolioAnalytics(portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
