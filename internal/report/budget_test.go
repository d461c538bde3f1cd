package report_test

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

func TestCheckBudgets(t *testing.T) {
	t.Run("no limits yields nil", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.TransactionTypeExpense, "Groceries", 100),
		}
		if got := report.CheckBudgets(transactions, nil); got != nil {
			t.Errorf("expected nil when no budgets are set, got %v", got)
		}
		if got := report.CheckBudgets(transactions, map[string]float64{}); got != nil {
			t.Errorf("expected nil for empty limits, got %v", got)
		}
	})

	t.Run("under budget is good", func(t *testing.T) {
		statuses := report.CheckBudgets(
			[]models.Transaction{tx(models.TransactionTypeExpense, "Groceries", 150)},
			map[string]float64{"Groceries": 200},
		)

		status := statuses["Groceries"]
		if !almostEqual(status.Spent, 150) {
			t.Errorf("expected spent 150, got %v", status.Spent)
		}
		if !almostEqual(status.Remaining, 50) {
			t.Errorf("expected remaining 50, got %v", status.Remaining)
		}
		if !almostEqual(status.PercentageUsed, 75) {
			t.Errorf("expected 75%% used, got %v", status.PercentageUsed)
		}
		if status.Status != report.StatusGood {
			t.Errorf("expected status good, got %s", status.Status)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		statuses := report.CheckBudgets(
			[]models.Transaction{tx(models.TransactionTypeExpense, "Groceries", 120)},
			map[string]float64{"Groceries": 100},
		)

		status := statuses["Groceries"]
		if !almostEqual(status.Remaining, -20) {
			t.Errorf("expected remaining -20, got %v", status.Remaining)
		}
		if !almostEqual(status.PercentageUsed, 120) {
			t.Errorf("expected 120%% used, got %v", status.PercentageUsed)
		}
		if status.Status != report.StatusOver {
			t.Errorf("expected status over, got %s", status.Status)
		}
	})

	t.Run("threshold boundaries", func(t *testing.T) {
		tests := []struct {
			name  string
			spent float64
			limit float64
			want  report.StatusLevel
		}{
			{"exactly 80 percent is good", 80, 100, report.StatusGood},
			{"just above 80 percent warns", 80.01, 100, report.StatusWarning},
			{"spent equal to limit warns", 100, 100, report.StatusWarning},
			{"one cent over is over", 100.01, 100, report.StatusOver},
			{"zero spending is good", 0, 100, report.StatusGood},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				statuses := report.CheckBudgets(
					[]models.Transaction{tx(models.TransactionTypeExpense, "Fun", tc.spent)},
					map[string]float64{"Fun": tc.limit},
				)
				if got := statuses["Fun"].Status; got != tc.want {
					t.Errorf("spent %v of %v: expected %s, got %s", tc.spent, tc.limit, tc.want, got)
				}
			})
		}
	})

	t.Run("more spending never lowers usage or raises remaining", func(t *testing.T) {
		limits := map[string]float64{"Fun": 100}

		prev := report.CheckBudgets(nil, limits)["Fun"]
		for _, spent := range []float64{0.01, 10, 50, 80, 80.01, 99.99, 100, 100.01, 150, 500} {
			cur := report.CheckBudgets(
				[]models.Transaction{tx(models.TransactionTypeExpense, "Fun", spent)},
				limits,
			)["Fun"]

			if cur.PercentageUsed < prev.PercentageUsed {
				t.Errorf("spent %v: usage dropped from %v to %v", spent, prev.PercentageUsed, cur.PercentageUsed)
			}
			if cur.Remaining > prev.Remaining {
				t.Errorf("spent %v: remaining rose from %v to %v", spent, prev.Remaining, cur.Remaining)
			}
			prev = cur
		}
	})

	t.Run("income does not count as spending", func(t *testing.T) {
		statuses := report.CheckBudgets(
			[]models.Transaction{
				tx(models.TransactionTypeIncome, "Groceries", 500),
				tx(models.TransactionTypeExpense, "Groceries", 40),
			},
			map[string]float64{"Groceries": 100},
		)
		if !almostEqual(statuses["Groceries"].Spent, 40) {
			t.Errorf("expected spent 40, got %v", statuses["Groceries"].Spent)
		}
	})

	t.Run("unbudgeted spending is ignored", func(t *testing.T) {
		statuses := report.CheckBudgets(
			[]models.Transaction{
				tx(models.TransactionTypeExpense, "Transport", 60),
				tx(models.TransactionTypeExpense, "Groceries", 10),
			},
			map[string]float64{"Groceries": 100},
		)
		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		if _, ok := statuses["Transport"]; ok {
			t.Error("unbudgeted category must not appear in the result")
		}
	})

	t.Run("category with no spending reports zero", func(t *testing.T) {
		statuses := report.CheckBudgets(nil, map[string]float64{"Groceries": 100})

		status := statuses["Groceries"]
		if !almostEqual(status.Spent, 0) || !almostEqual(status.Remaining, 100) {
			t.Errorf("expected spent 0 / remaining 100, got %v / %v", status.Spent, status.Remaining)
		}
		if status.Status != report.StatusGood {
			t.Errorf("expected status good, got %s", status.Status)
		}
	})

	t.Run("zero limit yields zero percentage", func(t *testing.T) {
		statuses := report.CheckBudgets(
			[]models.Transaction{tx(models.TransactionTypeExpense, "Fun", 10)},
			map[string]float64{"Fun": 0},
		)
		status := statuses["Fun"]
		if status.PercentageUsed != 0 {
			t.Errorf("expected 0%% for zero limit, got %v", status.PercentageUsed)
		}
		if status.Status != report.StatusOver {
			t.Errorf("expected status over for spending against a zero limit, got %s", status.Status)
		}
	})
}
