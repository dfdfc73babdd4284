package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
)

// transactionService handles ledger transaction business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// GetPortfolioTransactions returns a portfolio's transactions, newest date first.
func (s *transactionService) GetPortfolioTransactions(portfolioID uint) ([]models.Transaction, error) {
	if err := s.ensurePortfolioExists(portfolioID); err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	if err := s.db.Where("portfolio_id = ?", portfolioID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// CreateTransaction records a transaction against an existing portfolio.
// Type defaults to buy and date defaults to the current time.
func (s *transactionService) CreateTransaction(portfolioID uint, input CreateTransactionInput) (*models.Transaction, error) {
	if err := s.ensurePortfolioExists(portfolioID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		PortfolioID:        portfolioID,
		AssetName:          input.AssetName,
		Type:               input.Type,
		Amount:             input.Amount,
		Quantity:           input.Quantity,
		PriceAtTransaction: input.PriceAtTransaction,
		Notes:              input.Notes,
		Date:               time.Now().UTC(),
	}
	if transaction.Type == "" {
		transaction.Type = models.TransactionTypeBuy
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction removes a single transaction.
func (s *transactionService) DeleteTransaction(id uint) error {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *transactionService) ensurePortfolioExists(portfolioID uint) error {
	var portfolio models.Portfolio
	if err := s.db.Select("id").First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPortfolioNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
