// Package export renders store snapshots and precomputed report series into
// files: CSV for raw transactions, HTML charts for the report visuals.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fintrack/internal/models"
)

// csvHeader is the flat tabular form for raw transaction export.
var csvHeader = []string{"Date", "Category", "Description", "Amount", "Type"}

// WriteCSV writes one row per transaction to w in the order given.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Category,
			t.Description,
			fmt.Sprintf("%.2f", t.Amount),
			string(t.Type),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the transactions to the named file.
func WriteCSVFile(path string, transactions []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return WriteCSV(f, transactions)
}
