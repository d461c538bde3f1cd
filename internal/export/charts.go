package export

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fintrack/internal/report"
)

// ExpensePieChart renders a pie chart of expense totals by category to an
// HTML file. The byCategory series comes precomputed from the aggregation
// engine (Summary.ExpenseByCategory).
func ExpensePieChart(path string, byCategory map[string]float64) error {
	if len(byCategory) == 0 {
		return fmt.Errorf("no expense data to chart")
	}

	// Deterministic slice order for rendering.
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	items := make([]opts.PieData, 0, len(categories))
	for _, category := range categories {
		items = append(items, opts.PieData{Name: category, Value: byCategory[category]})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Expense Breakdown by Category"}))
	pie.AddSeries("expenses", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}))

	return renderToFile(path, pie)
}

// TrendChart renders monthly income vs expense totals as a line chart to an
// HTML file. The totals come precomputed from report.MonthlyTotals.
func TrendChart(path string, totals []report.MonthTotal) error {
	if len(totals) == 0 {
		return fmt.Errorf("no transaction data to chart")
	}

	months := make([]string, 0, len(totals))
	income := make([]opts.LineData, 0, len(totals))
	expenses := make([]opts.LineData, 0, len(totals))
	for _, mt := range totals {
		months = append(months, mt.Month)
		income = append(income, opts.LineData{Value: mt.Income})
		expenses = append(expenses, opts.LineData{Value: mt.Expenses})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Monthly Income vs Expenses"}))
	line.SetXAxis(months).
		AddSeries("Income", income).
		AddSeries("Expenses", expenses)

	return renderToFile(path, line)
}

type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(path string, chart renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
