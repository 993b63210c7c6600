package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code      string `json:"code,omitempty"` // UUID from PlatformError
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError handles domain errors and returns appropriate HTTP responses.
// Unexpected errors are wrapped at the handler layer so every response maps
// to a logged PlatformError.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if !errors.As(err, &domainErr) {
		domainErr = platformerrors.AsError(reqCtx.Request.Context(), platformerrors.LayerHandler, err, message)
	}
	if domainErr == nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   message,
			Message: message,
		})
		return
	}

	platformerrors.LogError(logger.GetLogger(), domainErr)

	statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.Type)
	errorMessage := domainErr.Message
	if errorMessage == "" {
		errorMessage = message
	}

	reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
		Code:      domainErr.UUID,
		Error:     errorMessage,
		Message:   errorMessage,
		RequestID: domainErr.RequestID,
	})
}

// HandleNewError creates a new typed error at the handler layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, errorType, message, nil, "")
	HandleError(reqCtx, err, message)
}
