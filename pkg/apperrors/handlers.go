package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler converts errors into JSON responses.
type GinErrorHandler struct {
	// Debug keeps underlying error details in responses. Leave false in
	// production so internals never leak to clients.
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
		// Work on a copy so shared error values are never mutated.
		redacted := *appErr
		if h.Debug {
			if redacted.Err != nil {
				redacted.Details = redacted.Err.Error()
			}
		} else {
			redacted.Message = "Internal server error"
			redacted.Details = nil
		}
		appErr = &redacted
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug switches the default handler between development and production
// behavior. Called once from app bootstrap.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError writes err through the default handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError when err carries one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
