package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
)

// Converter converts an amount between two currencies. The boolean result is
// false when no rate could be obtained.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, bool)
}

// CurrencyHandler handles currency conversion requests.
type CurrencyHandler struct {
	converter Converter
	log       *zap.SugaredLogger
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(converter Converter, log *zap.SugaredLogger) *CurrencyHandler {
	return &CurrencyHandler{converter: converter, log: log}
}

// ConvertRequest represents the request payload for a currency conversion.
type ConvertRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	From   string  `json:"from" binding:"required,iso4217"`
	To     string  `json:"to" binding:"required,iso4217"`
}

// Convert handles converting an amount between currencies. Lookup failures
// surface as RATES_UNAVAILABLE rather than an internal error.
func (h *CurrencyHandler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, h.log, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	converted, ok := h.converter.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if !ok {
		respondWithError(c, h.log, apperrors.ErrRatesUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount":    req.Amount,
		"from":      req.From,
		"to":        req.To,
		"converted": converted,
	})
}
