package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "patrimonio/internal/errors"
	"patrimonio/internal/models"
)

const (
	defaultPortfolioName  = "Mi Portfolio"
	defaultExpectedReturn = 8.0
	defaultYearsProjected = 10
	defaultColor          = "#64748B"
)

// portfolioService handles portfolio-related business logic.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// CreatePortfolio creates a portfolio and its nested allocations atomically.
func (s *portfolioService) CreatePortfolio(input CreatePortfolioInput) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		Name:                input.Name,
		Mode:                input.Mode,
		InitialCapital:      input.InitialCapital,
		MonthlyContribution: input.MonthlyContribution,
		ExpectedReturn:      defaultExpectedReturn,
		YearsProjection:     defaultYearsProjected,
		IsActive:            true,
	}
	if portfolio.Name == "" {
		portfolio.Name = defaultPortfolioName
	}
	if portfolio.Mode == "" {
		portfolio.Mode = models.PortfolioModeNormie
	}
	if input.ExpectedReturn != nil {
		portfolio.ExpectedReturn = *input.ExpectedReturn
	}
	if input.YearsProjection != nil {
		portfolio.YearsProjection = *input.YearsProjection
	}

	for _, alloc := range input.Allocations {
		color := alloc.Color
		if color == "" {
			color = defaultColor
		}
		portfolio.Allocations = append(portfolio.Allocations, models.Allocation{
			AssetName:  alloc.AssetName,
			Percentage: alloc.Percentage,
			Color:      color,
		})
	}

	// Parent and children commit together; a crash cannot leave a portfolio
	// without its allocations.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(portfolio).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// An empty portfolio still serializes allocations as [] rather than null.
	if portfolio.Allocations == nil {
		portfolio.Allocations = []models.Allocation{}
	}
	return portfolio, nil
}

// GetPortfolios returns all portfolios, newest first, with allocations and
// derived ledger totals populated.
func (s *portfolioService) GetPortfolios() ([]models.Portfolio, error) {
	portfolios := []models.Portfolio{}
	if err := s.db.Preload("Allocations").
		Order("created_at DESC").
		Find(&portfolios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.decoratePortfolios(portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

// GetPortfolioByID returns a single portfolio with allocations and derived totals.
func (s *portfolioService) GetPortfolioByID(id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Preload("Allocations").First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	single := []models.Portfolio{portfolio}
	if err := s.decoratePortfolios(single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// UpdatePortfolio applies the provided fields to an existing portfolio;
// nil fields keep their current value.
func (s *portfolioService) UpdatePortfolio(id uint, input UpdatePortfolioInput) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.Name != nil {
		portfolio.Name = *input.Name
	}
	if input.Mode != nil {
		portfolio.Mode = *input.Mode
	}
	if input.InitialCapital != nil {
		portfolio.InitialCapital = *input.InitialCapital
	}
	if input.MonthlyContribution != nil {
		portfolio.MonthlyContribution = *input.MonthlyContribution
	}
	if input.ExpectedReturn != nil {
		portfolio.ExpectedReturn = *input.ExpectedReturn
	}
	if input.YearsProjection != nil {
		portfolio.YearsProjection = *input.YearsProjection
	}

	if err := s.db.Save(&portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetPortfolioByID(id)
}

// DeletePortfolio removes a portfolio and all of its allocations and
// transactions in one transaction. Children go first so the delete cannot
// strand orphaned rows on engines without enforced foreign keys.
func (s *portfolioService) DeletePortfolio(id uint) error {
	var portfolio models.Portfolio
	if err := s.db.First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPortfolioNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// decoratePortfolios batch-populates the derived total_invested and
// transaction_count fields from the transactions table.
func (s *portfolioService) decoratePortfolios(portfolios []models.Portfolio) error {
	if len(portfolios) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(portfolios))
	for i := range portfolios {
		ids = append(ids, portfolios[i].ID)
	}

	type ledgerRow struct {
		PortfolioID      uint
		TotalInvested    float64
		TransactionCount int
	}
	var rows []ledgerRow

	// Only buys count toward total_invested, mirroring the analytics totals.
	if err := s.db.Model(&models.Transaction{}).
		Select("portfolio_id, COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_invested, COUNT(*) AS transaction_count",
			models.TransactionTypeBuy).
		Where("portfolio_id IN ?", ids).
		Group("portfolio_id").
		Scan(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byID := make(map[uint]ledgerRow, len(rows))
	for _, r := range rows {
		byID[r.PortfolioID] = r
	}
	for i := range portfolios {
		if r, ok := byID[portfolios[i].ID]; ok {
			portfolios[i].TotalInvested = r.TotalInvested
			portfolios[i].TransactionCount = r.TransactionCount
		}
		if portfolios[i].Allocations == nil {
			portfolios[i].Allocations = []models.Allocation{}
		}
	}
	return nil
}
