package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// TransactionFilter holds optional date bounds for listing transactions.
// Both bounds are inclusive; omitting both returns all records.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}

// TransactionServicer defines the contract for transaction persistence.
type TransactionServicer interface {
	Create(date time.Time, category, description string, amount float64, txType models.TransactionType) (*models.Transaction, error)
	List(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ListAll(filter TransactionFilter) ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	Delete(id string) error
}

// BudgetServicer defines the contract for budget persistence.
type BudgetServicer interface {
	Set(category string, monthlyLimit float64) (*models.Budget, error)
	List() ([]models.Budget, error)
	Limits() (map[string]float64, error)
}
