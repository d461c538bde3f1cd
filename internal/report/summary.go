// Package report is the aggregation engine: pure functions over a snapshot
// of transactions and budget limits. It performs no I/O and holds no state
// across calls; every function returns a fresh result derived only from its
// inputs.
package report

import (
	"time"

	"fintrack/internal/models"
)

// Summary is the derived financial overview for a period.
type Summary struct {
	PeriodStart       time.Time          `json:"period_start"`
	PeriodEnd         time.Time          `json:"period_end"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpenses     float64            `json:"total_expenses"`
	NetSavings        float64            `json:"net_savings"`
	SavingsRate       float64            `json:"savings_rate"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
	TransactionCount  int                `json:"transaction_count"`
}

// Summarize computes a Summary over transactions already filtered to the
// inclusive [periodStart, periodEnd] window. An empty input yields nil, the
// distinguished "no data" result; callers must branch on it before reading
// fields.
//
// Amounts pass through unchanged; negative or zero amounts are summed as-is.
// SavingsRate is defined as 0 when there is no income (not an error).
// Category keys are used verbatim: "Groceries" and "groceries" are distinct.
func Summarize(transactions []models.Transaction, periodStart, periodEnd time.Time) *Summary {
	if len(transactions) == 0 {
		return nil
	}

	s := &Summary{
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		ExpenseByCategory: make(map[string]float64),
		IncomeByCategory:  make(map[string]float64),
		TransactionCount:  len(transactions),
	}

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
			s.IncomeByCategory[t.Category] += t.Amount
		case models.TransactionTypeExpense:
			s.TotalExpenses += t.Amount
			s.ExpenseByCategory[t.Category] += t.Amount
		}
	}

	s.NetSavings = s.TotalIncome - s.TotalExpenses
	if s.TotalIncome > 0 {
		s.SavingsRate = s.NetSavings / s.TotalIncome * 100
	}

	return s
}

// CategoryTotals sums amounts per category for the given transaction type.
// Categories appear only when they have at least one matching transaction.
// Used to derive chart series without a full summary.
func CategoryTotals(transactions []models.Transaction, txType models.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == txType {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}
