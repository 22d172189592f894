package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler renders AppErrors for Gin.
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError renders err as JSON. Unknown errors become a 500 with
// internal detail stripped unless Debug is set.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the package-level shortcut used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: false}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
