package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"fintrack/internal/export"
	"fintrack/internal/models"
)

func TestWriteCSV(t *testing.T) {
	t.Run("writes header and rows in input order", func(t *testing.T) {
		transactions := []models.Transaction{
			{
				Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
				Category:    "Groceries",
				Description: "Weekly shop",
				Amount:      42.5,
				Type:        models.TransactionTypeExpense,
			},
			{
				Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				Category:    "Salary",
				Description: "Monthly pay",
				Amount:      3500,
				Type:        models.TransactionTypeIncome,
			},
		}

		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, transactions); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}

		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d records", len(records))
		}

		wantHeader := []string{"Date", "Category", "Description", "Amount", "Type"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Errorf("header column %d: expected %q, got %q", i, col, records[0][i])
			}
		}

		first := records[1]
		if first[0] != "2026-03-15" {
			t.Errorf("expected date 2026-03-15, got %q", first[0])
		}
		if first[3] != "42.50" {
			t.Errorf("expected amount formatted as 42.50, got %q", first[3])
		}
		if first[4] != "expense" {
			t.Errorf("expected type expense, got %q", first[4])
		}

		if records[2][1] != "Salary" {
			t.Errorf("expected second row category Salary, got %q", records[2][1])
		}
	})

	t.Run("empty input yields only the header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Errorf("expected a single header line, got %d lines", len(lines))
		}
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		transactions := []models.Transaction{
			{
				Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
				Category:    "Dining",
				Description: "Lunch, with tip",
				Amount:      18,
				Type:        models.TransactionTypeExpense,
			},
		}

		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, transactions); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if records[1][2] != "Lunch, with tip" {
			t.Errorf("expected description round-trip, got %q", records[1][2])
		}
	})
}
