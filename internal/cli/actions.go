package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// addTransaction collects and stores one income or expense record. After an
// expense it reports the category's budget position when one is set.
func (c *CLI) addTransaction(kind models.TransactionType) {
	title := "ADD INCOME"
	if kind == models.TransactionTypeExpense {
		title = "ADD EXPENSE"
	}
	c.heading(title)

	date, ok := c.promptDate()
	if !ok {
		return
	}
	category, ok := c.promptText("category", "Category: ")
	if !ok {
		return
	}
	description, ok := c.promptText("description", "Description: ")
	if !ok {
		return
	}
	amount, ok := c.promptAmount("Amount: ")
	if !ok {
		return
	}

	transaction, err := c.transactions.Create(date, category, description, amount, kind)
	if err != nil {
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, "\nTransaction added (ID: %s)\n", transaction.ID)

	if kind == models.TransactionTypeExpense {
		c.warnIfOverBudget(category)
	}
}

// warnIfOverBudget prints the category's current-month budget position.
func (c *CLI) warnIfOverBudget(category string) {
	statuses, err := c.currentBudgetStatus()
	if err != nil {
		c.reportError(err)
		return
	}

	status, ok := statuses[category]
	if !ok {
		return
	}

	switch status.Status {
	case report.StatusOver:
		fmt.Fprintf(c.out, "WARNING: you have exceeded your %s budget by %.2f\n", category, -status.Remaining)
	case report.StatusWarning:
		fmt.Fprintf(c.out, "WARNING: you have used %.1f%% of your %s budget\n", status.PercentageUsed, category)
	default:
		fmt.Fprintf(c.out, "Budget: %.2f remaining in %s (%.1f%% used)\n", status.Remaining, category, status.PercentageUsed)
	}
}

// viewTransactions lists transactions over a selectable window.
func (c *CLI) viewTransactions() {
	c.heading("VIEW TRANSACTIONS")
	fmt.Fprintln(c.out, "1. Last 7 days")
	fmt.Fprintln(c.out, "2. Last 30 days")
	fmt.Fprintln(c.out, "3. All transactions")
	fmt.Fprintln(c.out, "4. Custom date range")

	choice, ok := c.promptChoice("Choose option (1-4): ", 1, 4)
	if !ok {
		return
	}

	var filter services.TransactionFilter
	now := today()
	switch choice {
	case 1:
		from := now.AddDate(0, 0, -7)
		filter = services.TransactionFilter{From: &from, To: &now}
	case 2:
		from := now.AddDate(0, 0, -30)
		filter = services.TransactionFilter{From: &from, To: &now}
	case 4:
		from, ok := c.promptDateField("Start date (YYYY-MM-DD): ")
		if !ok {
			return
		}
		to, ok := c.promptDateField("End date (YYYY-MM-DD): ")
		if !ok {
			return
		}
		filter = services.TransactionFilter{From: &from, To: &to}
	}

	transactions, err := c.transactions.ListAll(filter)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(transactions) == 0 {
		fmt.Fprintln(c.out, "No transactions found.")
		return
	}

	c.printTransactions(transactions)
}

func (c *CLI) printTransactions(transactions []models.Transaction) {
	fmt.Fprintf(c.out, "\n%-12s %-8s %-20s %-30s %10s\n", "DATE", "TYPE", "CATEGORY", "DESCRIPTION", "AMOUNT")
	fmt.Fprintln(c.out, strings.Repeat("-", 84))
	for _, t := range transactions {
		fmt.Fprintf(c.out, "%-12s %-8s %-20s %-30s %10.2f\n",
			t.Date.Format(dateOnly), t.Type, truncate(t.Category, 20), truncate(t.Description, 30), t.Amount)
	}
	fmt.Fprintf(c.out, "\n%d transaction(s)\n", len(transactions))
}

// setBudget creates or replaces a category's monthly limit.
func (c *CLI) setBudget() {
	c.heading("SET BUDGET")

	category, ok := c.promptText("category", "Category: ")
	if !ok {
		return
	}
	limit, ok := c.promptAmount("Monthly limit: ")
	if !ok {
		return
	}

	if _, err := c.budgets.Set(category, limit); err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "Budget set for %s: %.2f per month\n", category, limit)
}

// viewBudgetStatus prints the current month's spending against each budget.
func (c *CLI) viewBudgetStatus() {
	c.heading("BUDGET STATUS")

	statuses, err := c.currentBudgetStatus()
	if err != nil {
		c.reportError(err)
		return
	}
	if statuses == nil {
		fmt.Fprintln(c.out, "No budgets set.")
		return
	}

	categories := make([]string, 0, len(statuses))
	for category := range statuses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		s := statuses[category]
		fmt.Fprintf(c.out, "\n%s [%s]\n", category, strings.ToUpper(string(s.Status)))
		fmt.Fprintf(c.out, "  Budget:    %10.2f\n", s.Budget)
		fmt.Fprintf(c.out, "  Spent:     %10.2f\n", s.Spent)
		fmt.Fprintf(c.out, "  Remaining: %10.2f\n", s.Remaining)
		fmt.Fprintf(c.out, "  Used:      %9.1f%%\n", s.PercentageUsed)
	}
}

// currentBudgetStatus computes budget status over the current calendar month.
func (c *CLI) currentBudgetStatus() (map[string]report.BudgetStatus, error) {
	limits, err := c.budgets.Limits()
	if err != nil {
		return nil, err
	}

	// Stored dates are UTC midnight; the month window must be too.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := c.transactions.ListAll(services.TransactionFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	return report.CheckBudgets(transactions, limits), nil
}

// generateReport prints a financial summary over a selectable window.
func (c *CLI) generateReport() {
	c.heading("FINANCIAL REPORT")
	fmt.Fprintln(c.out, "1. Last month")
	fmt.Fprintln(c.out, "2. Last 3 months")
	fmt.Fprintln(c.out, "3. Last 6 months")
	fmt.Fprintln(c.out, "4. Last 12 months")

	choice, ok := c.promptChoice("Choose period (1-4): ", 1, 4)
	if !ok {
		return
	}
	months := map[int]int{1: 1, 2: 3, 3: 6, 4: 12}[choice]

	periodEnd := time.Now()
	periodStart := periodEnd.AddDate(0, 0, -months*30)

	transactions, err := c.transactions.ListAll(services.TransactionFilter{From: &periodStart, To: &periodEnd})
	if err != nil {
		c.reportError(err)
		return
	}

	summary := report.Summarize(transactions, periodStart, periodEnd)
	if summary == nil {
		fmt.Fprintln(c.out, "No transactions found for the specified period.")
		return
	}

	fmt.Fprintf(c.out, "\nPeriod: %s to %s\n", summary.PeriodStart.Format(dateOnly), summary.PeriodEnd.Format(dateOnly))
	fmt.Fprintf(c.out, "Total income:   %12.2f\n", summary.TotalIncome)
	fmt.Fprintf(c.out, "Total expenses: %12.2f\n", summary.TotalExpenses)
	fmt.Fprintf(c.out, "Net savings:    %12.2f\n", summary.NetSavings)
	fmt.Fprintf(c.out, "Savings rate:   %11.1f%%\n", summary.SavingsRate)
	fmt.Fprintf(c.out, "Transactions:   %12d\n", summary.TransactionCount)

	c.printCategoryTotals("Expenses by category:", summary.ExpenseByCategory)
	c.printCategoryTotals("Income by category:", summary.IncomeByCategory)
}

func (c *CLI) printCategoryTotals(title string, totals map[string]float64) {
	if len(totals) == 0 {
		return
	}
	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Fprintf(c.out, "\n%s\n", title)
	for _, category := range categories {
		fmt.Fprintf(c.out, "  %-24s %10.2f\n", category, totals[category])
	}
}

// generateCharts renders the expense pie chart and/or the monthly trend chart
// from series precomputed by the aggregation engine.
func (c *CLI) generateCharts() {
	c.heading("GENERATE CHARTS")
	fmt.Fprintln(c.out, "1. Expense breakdown (pie)")
	fmt.Fprintln(c.out, "2. Monthly trend (line)")
	fmt.Fprintln(c.out, "3. Both")

	choice, ok := c.promptChoice("Choose option (1-3): ", 1, 3)
	if !ok {
		return
	}

	transactions, err := c.transactions.ListAll(services.TransactionFilter{})
	if err != nil {
		c.reportError(err)
		return
	}
	if len(transactions) == 0 {
		fmt.Fprintln(c.out, "No transaction data available for charts.")
		return
	}

	if choice == 1 || choice == 3 {
		byCategory := report.CategoryTotals(transactions, models.TransactionTypeExpense)
		if len(byCategory) == 0 {
			fmt.Fprintln(c.out, "No expense data available for the pie chart.")
		} else if err := export.ExpensePieChart("expense_breakdown.html", byCategory); err != nil {
			c.reportError(err)
		} else {
			fmt.Fprintln(c.out, "Saved expense_breakdown.html")
		}
	}

	if choice == 2 || choice == 3 {
		if err := export.TrendChart("monthly_trends.html", report.MonthlyTotals(transactions)); err != nil {
			c.reportError(err)
		} else {
			fmt.Fprintln(c.out, "Saved monthly_trends.html")
		}
	}
}

// convertCurrency converts an amount between two currencies. Lookup failures
// are reported as unavailability, never as a fault.
func (c *CLI) convertCurrency() {
	c.heading("CURRENCY CONVERTER")

	amount, ok := c.promptAmount("Amount: ")
	if !ok {
		return
	}
	from, ok := c.promptText("currency", "From currency (e.g. USD): ")
	if !ok {
		return
	}
	to, ok := c.promptText("currency", "To currency (e.g. EUR): ")
	if !ok {
		return
	}

	converted, found := c.converter.Convert(context.Background(), amount, from, to)
	if !found {
		fmt.Fprintln(c.out, "Conversion unavailable. Please try again later.")
		return
	}
	fmt.Fprintf(c.out, "%.2f %s = %.2f %s\n", amount, strings.ToUpper(from), converted, strings.ToUpper(to))
}

// exportData writes all transactions to a CSV file.
func (c *CLI) exportData() {
	c.heading("EXPORT DATA")

	filename, ok := c.readLine(fmt.Sprintf("Filename (default: %s): ", c.exportFile))
	if !ok {
		return
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = c.exportFile
	}

	transactions, err := c.transactions.ListAll(services.TransactionFilter{})
	if err != nil {
		c.reportError(err)
		return
	}

	if err := export.WriteCSVFile(filename, transactions); err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "Exported %d transaction(s) to %s\n", len(transactions), filename)
}

// deleteTransaction removes a record by ID after confirmation.
func (c *CLI) deleteTransaction() {
	c.heading("DELETE TRANSACTION")

	recent, err := c.transactions.ListAll(services.TransactionFilter{})
	if err != nil {
		c.reportError(err)
		return
	}
	if len(recent) == 0 {
		fmt.Fprintln(c.out, "No transactions to delete.")
		return
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	fmt.Fprintln(c.out, "Most recent transactions:")
	for _, t := range recent {
		fmt.Fprintf(c.out, "  %s  %s  %-8s %-20s %10.2f\n",
			t.ID, t.Date.Format(dateOnly), t.Type, truncate(t.Category, 20), t.Amount)
	}

	id, ok := c.promptText("id", "\nTransaction ID to delete: ")
	if !ok {
		return
	}
	confirm, ok := c.readLine(fmt.Sprintf("Delete transaction %s? (yes/no): ", id))
	if !ok || !strings.EqualFold(strings.TrimSpace(confirm), "yes") {
		fmt.Fprintln(c.out, "Deletion cancelled.")
		return
	}

	if err := c.transactions.Delete(id); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrTransactionNotFound.Code {
			fmt.Fprintf(c.out, "Transaction %s not found.\n", id)
			return
		}
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "Transaction %s deleted.\n", id)
}

// clearAllData drops and recreates the schema after double confirmation.
func (c *CLI) clearAllData() {
	c.heading("CLEAR ALL DATA")
	fmt.Fprintln(c.out, "This permanently removes every transaction and budget.")

	first, ok := c.readLine("Type 'DELETE ALL' to confirm: ")
	if !ok || strings.TrimSpace(first) != "DELETE ALL" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	second, ok := c.readLine("Final confirmation - type 'YES' to proceed: ")
	if !ok || strings.TrimSpace(second) != "YES" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}

	if err := c.resetter.Reset(); err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintln(c.out, "All data cleared.")
}

// promptDateField re-prompts for a single YYYY-MM-DD date.
func (c *CLI) promptDateField(prompt string) (time.Time, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return time.Time{}, false
		}
		parsed, verr := ParseDate(line)
		if verr != nil {
			fmt.Fprintf(c.out, "Invalid date: %s. Please try again.\n", verr.Reason)
			continue
		}
		return parsed, true
	}
}

func (c *CLI) heading(title string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.Repeat("=", 30))
	fmt.Fprintln(c.out, title)
	fmt.Fprintln(c.out, strings.Repeat("=", 30))
}

// reportError logs the failure and tells the user the operation was aborted.
// Store failures are fatal to the in-progress operation, not retried.
func (c *CLI) reportError(err error) {
	c.log.Errorw("operation failed", "error", err)
	fmt.Fprintf(c.out, "Operation failed: %v\n", err)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
