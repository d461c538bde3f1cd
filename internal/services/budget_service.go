package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles budget persistence.
type budgetService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, log *zap.SugaredLogger) BudgetServicer {
	return &budgetService{db: db, log: log}
}

// Set creates or replaces the budget for a category. Setting an existing
// category replaces the prior limit and restamps the created date.
func (s *budgetService) Set(category string, monthlyLimit float64) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("category = ?", category).First(&budget).Error

	switch {
	case err == nil:
		budget.MonthlyLimit = monthlyLimit
		budget.CreatedDate = time.Now()
		if err := s.db.Save(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{
			Category:     category,
			MonthlyLimit: monthlyLimit,
			CreatedDate:  time.Now(),
		}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("budget set", "category", category, "monthly_limit", monthlyLimit)
	return &budget, nil
}

// List returns all budgets.
func (s *budgetService) List() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// Limits returns the category -> monthly limit mapping.
func (s *budgetService) Limits() (map[string]float64, error) {
	budgets, err := s.List()
	if err != nil {
		return nil, err
	}

	limits := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.MonthlyLimit
	}
	return limits, nil
}
