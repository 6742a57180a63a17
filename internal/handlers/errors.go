package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Unclassified errors
// are logged and reported with the generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err, "Invalid input")})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err, "Not found")})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.Message(err, "Conflict")})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// respondBindError reports a malformed request body or query string.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
