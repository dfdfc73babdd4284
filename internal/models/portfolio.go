package models

import "time"

// PortfolioMode represents the strategy label attached to a portfolio.
type PortfolioMode string

const (
	PortfolioModeNormie    PortfolioMode = "normie"
	PortfolioModeSovereign PortfolioMode = "sovereign"
	PortfolioModeCustom    PortfolioMode = "custom"
)

// Portfolio represents a saved portfolio configuration.
type Portfolio struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	Name                string        `gorm:"size:100;not null" json:"name"`
	Mode                PortfolioMode `gorm:"size:20;not null" json:"mode"`
	InitialCapital      float64       `gorm:"default:0" json:"initial_capital"`
	MonthlyContribution float64       `gorm:"default:0" json:"monthly_contribution"`
	ExpectedReturn      float64       `gorm:"default:8" json:"expected_return"`
	YearsProjection     int           `gorm:"default:10" json:"years_projection"`
	IsActive            bool          `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`

	// Derived fields populated at query time from the transactions table.
	TotalInvested    float64 `gorm:"-" json:"total_invested"`
	TransactionCount int     `gorm:"-" json:"transaction_count"`

	// Relationships
	Allocations  []Allocation  `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"allocations"`
	Transactions []Transaction `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
}

// Allocation represents a target percentage weight for one asset within a portfolio.
type Allocation struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PortfolioID uint    `gorm:"not null;index" json:"portfolio_id"`
	AssetName   string  `gorm:"size:50;not null" json:"asset_name"`
	Percentage  float64 `gorm:"not null" json:"percentage"`
	Color       string  `gorm:"size:10;default:#64748B" json:"color"`
}
