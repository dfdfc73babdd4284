package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
)

// analyticsService reduces a portfolio's ledger into per-asset totals.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// GetPortfolioAnalytics aggregates a portfolio's transactions into per-asset
// invested amounts and quantities.
//
// Sells reduce an asset's bucket but never the running total_invested, and
// contribution entries touch neither; both behaviors are part of the ledger
// contract the frontend renders.
func (s *analyticsService) GetPortfolioAnalytics(portfolioID uint) (*PortfolioAnalytics, error) {
	var portfolio models.Portfolio
	if err := s.db.First(&portfolio, portfolioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("portfolio_id = ?", portfolioID).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	assets := make(map[string]AssetBucket)
	totalInvested := 0.0
	var first, last *time.Time

	for _, t := range transactions {
		// Every referenced asset gets a bucket, even if only contributions
		// touched it.
		bucket := assets[t.AssetName]

		switch t.Type {
		case models.TransactionTypeBuy:
			bucket.Invested += t.Amount
			bucket.Quantity += t.Quantity
			totalInvested += t.Amount
		case models.TransactionTypeSell:
			bucket.Invested -= t.Amount
			bucket.Quantity -= t.Quantity
		}
		assets[t.AssetName] = bucket

		date := t.Date
		if first == nil || date.Before(*first) {
			first = &date
		}
		if last == nil || date.After(*last) {
			last = &date
		}
	}

	return &PortfolioAnalytics{
		PortfolioID:      portfolio.ID,
		PortfolioName:    portfolio.Name,
		TotalInvested:    totalInvested,
		Assets:           assets,
		TransactionCount: len(transactions),
		FirstInvestment:  first,
		LastInvestment:   last,
	}, nil
}
