package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
	"patrimonio/internal/services"
)

// TransactionHandler handles ledger transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Date is an ISO 8601 string; timezone-naive values are read
// as UTC.
type CreateTransactionRequest struct {
	AssetName          string  `json:"asset_name" binding:"required,min=1,max=50"`
	Type               string  `json:"type" binding:"omitempty,transaction_type"`
	Amount             float64 `json:"amount"`
	Quantity           float64 `json:"quantity" binding:"gte=0"`
	PriceAtTransaction float64 `json:"price_at_transaction" binding:"gte=0"`
	Notes              *string `json:"notes" binding:"omitempty,max=500"`
	Date               *string `json:"date"`
}

// ListTransactions handles listing a portfolio's transactions, newest date first.
// @Summary     List portfolio transactions
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Portfolio ID"
// @Success     200 {array} models.Transaction
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id}/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	portfolioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetPortfolioTransactions(portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles recording a transaction against a portfolio.
// @Summary     Record transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Portfolio ID"
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolios/{id}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	portfolioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date: "+*req.Date))
			return
		}
		date = &parsed
	}

	transaction, err := h.transactionService.CreateTransaction(portfolioID, services.CreateTransactionInput{
		AssetName:          req.AssetName,
		Type:               models.TransactionType(req.Type),
		Amount:             req.Amount,
		Quantity:           req.Quantity,
		PriceAtTransaction: req.PriceAtTransaction,
		Notes:              req.Notes,
		Date:               date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// DeleteTransaction handles deleting a single transaction.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
