package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
)

// respondServiceError maps a service error to an HTTP response.
//
// A PartialReconciliationError is never collapsed into a generic message:
// the response body carries exactly which line items applied, which failed
// and which were not attempted, so the caller can see the ledger state.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var partial *apperrors.PartialReconciliationError
	if errors.As(err, &partial) {
		logger.Error("Reconciliation partially applied", slog.String("error", partial.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "Operation partially applied; see detail for ledger state",
			"invoiceID":    partial.InvoiceID,
			"applied":      partial.Applied,
			"failed":       partial.Failed,
			"notAttempted": partial.NotAttempted,
		})
		return
	}

	if se, ok := apperrors.IsStoreError(err); ok {
		logger.Error("Remote store failure", slog.String("error", err.Error()))
		status := http.StatusBadGateway
		if se.Kind == apperrors.StoreRateLimited {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "Backing store unavailable", "detail": se.Kind})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Invalid lifecycle transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("State conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
