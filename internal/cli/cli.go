// Package cli implements the interactive menu-driven shell. It collects and
// validates input at the boundary, delegates persistence to the services,
// and renders the aggregation engine's results as text.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"fintrack/internal/services"
)

// Converter converts an amount between two currencies. False means no rate
// could be obtained.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, bool)
}

// Resetter drops and recreates the storage schema.
type Resetter interface {
	Reset() error
}

// CLI drives the interactive finance tracker session.
type CLI struct {
	transactions services.TransactionServicer
	budgets      services.BudgetServicer
	converter    Converter
	resetter     Resetter
	exportFile   string
	log          *zap.SugaredLogger

	in  *bufio.Scanner
	out io.Writer
}

// New creates a CLI reading from in and writing to out.
func New(
	transactions services.TransactionServicer,
	budgets services.BudgetServicer,
	converter Converter,
	resetter Resetter,
	exportFile string,
	log *zap.SugaredLogger,
	in io.Reader,
	out io.Writer,
) *CLI {
	return &CLI{
		transactions: transactions,
		budgets:      budgets,
		converter:    converter,
		resetter:     resetter,
		exportFile:   exportFile,
		log:          log,
		in:           bufio.NewScanner(in),
		out:          out,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (c *CLI) Run() {
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintln(c.out, "PERSONAL FINANCE TRACKER")
	fmt.Fprintln(c.out, strings.Repeat("=", 60))

	for {
		c.printMenu()

		choice, ok := c.promptChoice("Choose an option (1-12): ", 1, 12)
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.addTransaction("income")
		case 2:
			c.addTransaction("expense")
		case 3:
			c.viewTransactions()
		case 4:
			c.setBudget()
		case 5:
			c.viewBudgetStatus()
		case 6:
			c.generateReport()
		case 7:
			c.generateCharts()
		case 8:
			c.convertCurrency()
		case 9:
			c.exportData()
		case 10:
			c.deleteTransaction()
		case 11:
			c.clearAllData()
		case 12:
			fmt.Fprintln(c.out, "Goodbye!")
			return
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
	fmt.Fprintln(c.out, "MAIN MENU")
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
	fmt.Fprintln(c.out, " 1. Add Income")
	fmt.Fprintln(c.out, " 2. Add Expense")
	fmt.Fprintln(c.out, " 3. View Transactions")
	fmt.Fprintln(c.out, " 4. Set Budget")
	fmt.Fprintln(c.out, " 5. View Budget Status")
	fmt.Fprintln(c.out, " 6. Financial Report")
	fmt.Fprintln(c.out, " 7. Generate Charts")
	fmt.Fprintln(c.out, " 8. Currency Converter")
	fmt.Fprintln(c.out, " 9. Export Data (CSV)")
	fmt.Fprintln(c.out, "10. Delete Transaction")
	fmt.Fprintln(c.out, "11. Clear All Data")
	fmt.Fprintln(c.out, "12. Exit")
	fmt.Fprintln(c.out, strings.Repeat("-", 40))
}

// readLine reads one line of input. The second return value is false when
// input is exhausted.
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptChoice re-prompts until a valid menu choice is entered.
func (c *CLI) promptChoice(prompt string, min, max int) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		choice, verr := ParseChoice(line, min, max)
		if verr != nil {
			fmt.Fprintf(c.out, "Invalid input: %s. Please try again.\n", verr.Reason)
			continue
		}
		return choice, true
	}
}

// promptAmount re-prompts until a positive decimal is entered.
func (c *CLI) promptAmount(prompt string) (float64, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		amount, verr := ParseAmount(line)
		if verr != nil {
			fmt.Fprintf(c.out, "Invalid amount: %s. Please try again.\n", verr.Reason)
			continue
		}
		return amount, true
	}
}

// promptText re-prompts until a non-empty value is entered.
func (c *CLI) promptText(field, prompt string) (string, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return "", false
		}
		value, verr := ParseText(field, line)
		if verr != nil {
			fmt.Fprintf(c.out, "Invalid %s: %s. Please try again.\n", field, verr.Reason)
			continue
		}
		return value, true
	}
}

// promptDate offers today's date or a custom YYYY-MM-DD date.
func (c *CLI) promptDate() (time.Time, bool) {
	fmt.Fprintln(c.out, "\nDate options:")
	fmt.Fprintln(c.out, "1. Use today's date")
	fmt.Fprintln(c.out, "2. Enter custom date (YYYY-MM-DD)")

	choice, ok := c.promptChoice("Choose option (1 or 2): ", 1, 2)
	if !ok {
		return time.Time{}, false
	}
	if choice == 1 {
		return today(), true
	}

	for {
		line, ok := c.readLine("Enter date (YYYY-MM-DD): ")
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

// today returns the current local calendar date at UTC midnight, the same
// stored form as parsed input dates.
func today() time.Time {
	return toDate(time.Now())
}

// toDate truncates t to its calendar date in t's own location, stamped at
// UTC midnight so comparisons against stored dates line up.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
