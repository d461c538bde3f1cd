package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
)

// Resetter drops and recreates the storage schema.
type Resetter interface {
	Reset() error
}

// AdminHandler handles maintenance operations.
type AdminHandler struct {
	resetter Resetter
	log      *zap.SugaredLogger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(resetter Resetter, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{resetter: resetter, log: log}
}

// Reset wipes all data by dropping and recreating the schema.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.resetter.Reset(); err != nil {
		respondWithError(c, h.log, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "All data cleared"})
}
