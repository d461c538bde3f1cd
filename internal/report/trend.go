package report

import (
	"sort"

	"fintrack/internal/models"
)

// MonthTotal holds the income and expense sums for one calendar month.
type MonthTotal struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MonthlyTotals aggregates transactions into chronological per-month income
// and expense totals. This is the precomputed series handed to the trend
// chart renderer. An empty input yields nil.
func MonthlyTotals(transactions []models.Transaction) []MonthTotal {
	if len(transactions) == 0 {
		return nil
	}

	byMonth := make(map[string]*MonthTotal)
	for _, t := range transactions {
		month := t.Date.Format("2006-01")
		mt, ok := byMonth[month]
		if !ok {
			mt = &MonthTotal{Month: month}
			byMonth[month] = mt
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			mt.Income += t.Amount
		case models.TransactionTypeExpense:
			mt.Expenses += t.Amount
		}
	}

	totals := make([]MonthTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		totals = append(totals, *mt)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })

	return totals
}
