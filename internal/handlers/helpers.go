package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/logger"
	"patrimon/internal/portfolio"
	"patrimon/internal/services"
	"patrimon/internal/uuid"
)

// getActor extracts the authenticated actor from the Gin context.
// Returns ErrUnauthorized if not present.
func getActor(c *gin.Context) (services.Actor, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return services.Actor{}, apperrors.ErrUnauthorized
	}
	return services.Actor{
		UserID:   userID.(string),
		ReadOnly: c.GetBool("readOnly"),
	}, nil
}

// parsePathID validates a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseReportContext reads the optional ?context= query parameter.
// An empty value means consolidated.
func parseReportContext(c *gin.Context) (portfolio.Context, error) {
	rctx, ok := portfolio.ParseContext(c.Query("context"))
	if !ok {
		return "", apperrors.ErrInvalidContext
	}
	return rctx, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple acknowledgement response.
type MessageResponse struct {
	Message string `json:"message"`
}
