package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error carrying an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrConflict       = New(http.StatusConflict, "Conflict", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Authentication error types
var (
	ErrEmailExists        = New(http.StatusConflict, "Email already registered", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password", nil)
)

// Business logic error types
var (
	ErrInvalidID         = New(http.StatusBadRequest, "Invalid id format", nil)
	ErrFishNotFound      = New(http.StatusNotFound, "Fish not found", nil)
	ErrCartLineNotFound  = New(http.StatusNotFound, "Cart item not found", nil)
	ErrOrderNotFound     = New(http.StatusNotFound, "Order not found", nil)
	ErrInvalidQuantity   = New(http.StatusBadRequest, "Quantity must not be negative", nil)
	ErrInvalidStatus     = New(http.StatusBadRequest, "Unknown order status", nil)
	ErrInvalidTransition = New(http.StatusConflict, "Order status transition not allowed", nil)
	ErrEmptyOrder        = New(http.StatusBadRequest, "No cart items supplied", nil)
)

// Handle writes err as a {success, message} envelope on the gin context.
// Errors that are not application errors become logged 500s with a generic
// message so store failures never surface raw to clients.
func Handle(c *gin.Context, err error) {
	var appErr *Error
	if !stderrors.As(err, &appErr) {
		zap.L().Error("Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = ErrInternalServer
	}

	c.JSON(appErr.Code, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
