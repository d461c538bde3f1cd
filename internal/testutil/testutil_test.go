package testutil_test

import (
	"testing"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"transactions", "budgets"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tx := testutil.CreateTestTransaction(t, db, date, "Groceries", 42.5, models.TransactionTypeExpense)
	if tx.ID == "" {
		t.Fatal("transaction should have a generated ID")
	}
	if tx.Amount != 42.5 {
		t.Errorf("expected amount 42.5, got %v", tx.Amount)
	}

	budget := testutil.CreateTestBudget(t, db, "Groceries", 500)
	if budget.MonthlyLimit != 500 {
		t.Errorf("expected monthly limit 500, got %v", budget.MonthlyLimit)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTransactionNotFound, "custom message")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
