package models

import "time"

// TransactionType represents the type of ledger transaction.
type TransactionType string

const (
	TransactionTypeBuy          TransactionType = "buy"
	TransactionTypeSell         TransactionType = "sell"
	TransactionTypeContribution TransactionType = "contribution"
)

// Transaction represents a real investment transaction recorded against a portfolio.
type Transaction struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	PortfolioID        uint            `gorm:"not null;index" json:"portfolio_id"`
	AssetName          string          `gorm:"size:50;not null" json:"asset_name"`
	Type               TransactionType `gorm:"size:20;not null" json:"type"`
	Amount             float64         `gorm:"not null" json:"amount"`
	Quantity           float64         `gorm:"default:0" json:"quantity"`
	PriceAtTransaction float64         `gorm:"default:0" json:"price_at_transaction"`
	Notes              *string         `json:"notes"`
	Date               time.Time       `gorm:"not null" json:"date"`
	CreatedAt          time.Time       `json:"created_at"`
}
