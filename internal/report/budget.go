package report

import "fintrack/internal/models"

// StatusLevel classifies spending against a budget limit.
type StatusLevel string

const (
	StatusGood    StatusLevel = "good"
	StatusWarning StatusLevel = "warning"
	StatusOver    StatusLevel = "over"
)

// warningThreshold is the percentage above which a budget is flagged.
// Exactly 80% is still good; the threshold is exclusive.
const warningThreshold = 80.0

// BudgetStatus describes one category's spending against its monthly limit.
type BudgetStatus struct {
	Budget         float64     `json:"budget"`
	Spent          float64     `json:"spent"`
	Remaining      float64     `json:"remaining"`
	PercentageUsed float64     `json:"percentage_used"`
	Status         StatusLevel `json:"status"`
}

// CheckBudgets computes per-category budget status from the given
// transactions (expected to be restricted to the current month by the
// caller) and the category -> monthly limit mapping. Spending in categories
// without a budget entry is ignored. An empty limits mapping yields nil, the
// distinguished "no budgets" result.
//
// Remaining of exactly zero is still good; only negative remaining is over.
func CheckBudgets(transactions []models.Transaction, limits map[string]float64) map[string]BudgetStatus {
	if len(limits) == 0 {
		return nil
	}

	spending := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == models.TransactionTypeExpense {
			spending[t.Category] += t.Amount
		}
	}

	statuses := make(map[string]BudgetStatus, len(limits))
	for category, limit := range limits {
		spent := spending[category]
		remaining := limit - spent

		var percentage float64
		if limit > 0 {
			percentage = spent / limit * 100
		}

		level := StatusGood
		switch {
		case remaining < 0:
			level = StatusOver
		case percentage > warningThreshold:
			level = StatusWarning
		}

		statuses[category] = BudgetStatus{
			Budget:         limit,
			Spent:          spent,
			Remaining:      remaining,
			PercentageUsed: percentage,
			Status:         level,
		}
	}

	return statuses
}
