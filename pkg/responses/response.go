package responses

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/nfteams-api/pkg/apperr"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse is the envelope used by the bracket and summary endpoints.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ValidationErrorResponse carries per-field binding failures.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// TextResponse is the chat style payload returned by competition endpoints.
type TextResponse struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// SendSuccess sends data wrapped in the {"success": true, "data": ...} envelope.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{Success: true, Data: data})
}

// SendText sends a chat style text payload.
func SendText(c *gin.Context, statusCode int, text string) {
	c.JSON(statusCode, TextResponse{Text: text, Type: "text"})
}

// SendError aborts the request with a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  statusCode,
	})
}

// ValidationError sends a 400 with field details.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  message,
		Code:   http.StatusBadRequest,
		Fields: fields,
	})
}

// Fail converts err into an error response. Errors from the apperr taxonomy
// expose their message; anything else becomes a generic 500. The full error
// chain is only logged.
func Fail(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logger.From(c).Error("unhandled error", zap.Error(err))
		InternalServerError(c, "")
		return
	}

	status := appErr.Kind.Status()
	if status >= http.StatusInternalServerError {
		logger.From(c).Error(appErr.Message, zap.Error(err))
	} else {
		logger.From(c).Info("request rejected", zap.Int("status", status), zap.Error(err))
	}
	SendError(c, status, appErr.Message)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	SendError(c, http.StatusInternalServerError, message)
}
