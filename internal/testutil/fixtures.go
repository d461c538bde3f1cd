package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"fintrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction with the given fields and a
// generated description.
func CreateTestTransaction(t *testing.T, db *gorm.DB, date time.Time, category string, amount float64, txType models.TransactionType) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:        date,
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Amount:      amount,
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, category string, monthlyLimit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category:     category,
		MonthlyLimit: monthlyLimit,
		CreatedDate:  time.Now().UTC(),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
