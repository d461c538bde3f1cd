package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	log                *zap.SugaredLogger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, log *zap.SugaredLogger) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, log: log}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount validation lives here at the boundary; the core accepts any value.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required,iso_date"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,transaction_type"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse(dateOnly, req.Date)
	if err != nil {
		respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a YYYY-MM-DD date"))
		return
	}

	transaction, err := h.transactionService.Create(
		date, req.Category, req.Description, req.Amount, models.TransactionType(req.Type),
	)
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions, most recent date first.
// Optional from/to query parameters bound the date range inclusively.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	result, err := h.transactionService.List(page, services.TransactionFilter{From: from, To: to})
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a single transaction by ID.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles permanently deleting a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.Delete(c.Param("id")); err != nil {
		respondWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted"})
}
