package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService      services.BudgetServicer
	transactionService services.TransactionServicer
	log                *zap.SugaredLogger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, transactionService services.TransactionServicer, log *zap.SugaredLogger) *BudgetHandler {
	return &BudgetHandler{
		budgetService:      budgetService,
		transactionService: transactionService,
		log:                log,
	}
}

// SetBudgetRequest represents the request payload for setting a budget.
type SetBudgetRequest struct {
	Category     string  `json:"category" binding:"required"`
	MonthlyLimit float64 `json:"monthly_limit" binding:"required,gt=0"`
}

// SetBudget handles creating or replacing a category's monthly budget.
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.Set(req.Category, req.MonthlyLimit)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgets handles listing all budgets.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets, err := h.budgetService.List()
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudgetStatus handles computing budget status for the current month.
func (h *BudgetHandler) GetBudgetStatus(c *gin.Context) {
	limits, err := h.budgetService.Limits()
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	from, to := currentMonthRange(time.Now())
	transactions, err := h.transactionService.ListAll(services.TransactionFilter{From: &from, To: &to})
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	statuses := report.CheckBudgets(transactions, limits)
	if statuses == nil {
		c.JSON(http.StatusOK, MessageResponse{Message: "No budgets set"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_status": statuses})
}

// currentMonthRange returns the inclusive bounds of now's calendar month,
// anchored at UTC midnight. Stored transaction dates are UTC midnight, so the
// window must be too or first-of-month records fall outside it.
func currentMonthRange(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}
