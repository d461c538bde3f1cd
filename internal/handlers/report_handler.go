package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// ReportHandler handles summary reports and CSV export.
type ReportHandler struct {
	transactionService services.TransactionServicer
	log                *zap.SugaredLogger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(transactionService services.TransactionServicer, log *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{transactionService: transactionService, log: log}
}

// reportWindows are the selectable report periods in months.
var reportWindows = map[int]bool{1: true, 3: true, 6: true, 12: true}

// GetSummary handles generating a financial summary over the last N months
// (1, 3, 6, or 12; default 3). The window counts 30 days per month back
// from today.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	months := 3
	if v := c.Query("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || !reportWindows[parsed] {
			respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be 1, 3, 6, or 12"))
			return
		}
		months = parsed
	}

	periodEnd := time.Now()
	periodStart := periodEnd.AddDate(0, 0, -months*30)

	transactions, err := h.transactionService.ListAll(services.TransactionFilter{From: &periodStart, To: &periodEnd})
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	summary := report.Summarize(transactions, periodStart, periodEnd)
	if summary == nil {
		c.JSON(http.StatusOK, MessageResponse{Message: "No transactions found for the specified period"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ExportCSV handles streaming all transactions as a CSV attachment.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	transactions, err := h.transactionService.ListAll(services.TransactionFilter{})
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="financial_data.csv"`)
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, transactions); err != nil {
		// Headers are already out; log and abort the stream.
		h.log.Errorw("csv export failed", "error", err)
	}
}
