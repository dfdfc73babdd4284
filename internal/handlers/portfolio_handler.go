package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
	"patrimonio/internal/services"
)

// PortfolioHandler handles portfolio CRUD requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// AllocationRequest represents one nested allocation in a portfolio create.
type AllocationRequest struct {
	AssetName  string  `json:"asset_name" binding:"required,min=1,max=50"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
	Color      string  `json:"color" binding:"omitempty,hex_color"`
}

// CreatePortfolioRequest represents the request payload for creating a portfolio.
type CreatePortfolioRequest struct {
	Name                string              `json:"name" binding:"omitempty,max=100"`
	Mode                string              `json:"mode" binding:"omitempty,portfolio_mode"`
	InitialCapital      float64             `json:"initial_capital" binding:"gte=0"`
	MonthlyContribution float64             `json:"monthly_contribution" binding:"gte=0"`
	ExpectedReturn      *float64            `json:"expected_return"`
	YearsProjection     *int                `json:"years_projection" binding:"omitempty,gt=0"`
	Allocations         []AllocationRequest `json:"allocations" binding:"omitempty,dive"`
}

// UpdatePortfolioRequest represents the request payload for updating a portfolio.
// Absent fields keep their current value.
type UpdatePortfolioRequest struct {
	Name                *string  `json:"name" binding:"omitempty,max=100"`
	Mode                *string  `json:"mode" binding:"omitempty,portfolio_mode"`
	InitialCapital      *float64 `json:"initial_capital" binding:"omitempty,gte=0"`
	MonthlyContribution *float64 `json:"monthly_contribution" binding:"omitempty,gte=0"`
	ExpectedReturn      *float64 `json:"expected_return"`
	YearsProjection     *int     `json:"years_projection" binding:"omitempty,gt=0"`
}

// ListPortfolios handles listing all portfolios, newest first.
// @Summary     List portfolios
// @Tags        portfolios
// @Produce     json
// @Success     200 {array} models.Portfolio
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [get]
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	portfolios, err := h.portfolioService.GetPortfolios()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolios)
}

// CreatePortfolio handles creating a portfolio with optional nested allocations.
// @Summary     Create portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       request body CreatePortfolioRequest true "Portfolio details"
// @Success     201 {object} models.Portfolio
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.CreatePortfolioInput{
		Name:                req.Name,
		Mode:                models.PortfolioMode(req.Mode),
		InitialCapital:      req.InitialCapital,
		MonthlyContribution: req.MonthlyContribution,
		ExpectedReturn:      req.ExpectedReturn,
		YearsProjection:     req.YearsProjection,
	}
	for _, alloc := range req.Allocations {
		input.Allocations = append(input.Allocations, services.AllocationInput{
			AssetName:  alloc.AssetName,
			Percentage: alloc.Percentage,
			Color:      alloc.Color,
		})
	}

	portfolio, err := h.portfolioService.CreatePortfolio(input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, portfolio)
}

// GetPortfolio handles fetching a single portfolio.
// @Summary     Get portfolio
// @Tags        portfolios
// @Produce     json
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} models.Portfolio
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.GetPortfolioByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// UpdatePortfolio handles updating a portfolio's configuration.
// @Summary     Update portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id      path int                    true "Portfolio ID"
// @Param       request body UpdatePortfolioRequest true "Fields to update"
// @Success     200 {object} models.Portfolio
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id} [put]
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdatePortfolioInput{
		Name:                req.Name,
		InitialCapital:      req.InitialCapital,
		MonthlyContribution: req.MonthlyContribution,
		ExpectedReturn:      req.ExpectedReturn,
		YearsProjection:     req.YearsProjection,
	}
	if req.Mode != nil {
		mode := models.PortfolioMode(*req.Mode)
		input.Mode = &mode
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// DeletePortfolio handles deleting a portfolio and its children.
// @Summary     Delete portfolio
// @Tags        portfolios
// @Produce     json
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.DeletePortfolio(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deleted"})
}
