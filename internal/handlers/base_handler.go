package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
)

// BaseHandler carries the helpers every HTTP handler embeds: binding,
// validation, error rendering and identity extraction.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into obj and runs the
// validator; on failure the error response is already written.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.runValidation(c, obj)
}

// BindAndValidateQuery does the same for query parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"code", string(appErr.Code),
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}
	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetAndAuthorizeUserID pulls the authenticated user id set by the auth
// middleware; writes a 401 when it is missing.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	userIDVal, exists := c.Get("userID")
	if !exists {
		logger.CtxWarn(ctx, "unauthorized: userID not in context", "path", c.Request.URL.Path, "ip", c.ClientIP())
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		logger.CtxWarn(ctx, "unauthorized: invalid userID in context", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}
	return userID, true
}

// RequireParam returns the named path parameter, writing a 400 when empty.
func (h *BaseHandler) RequireParam(c *gin.Context, key string) (string, bool) {
	value := c.Param(key)
	if value == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: "+key))
		return "", false
	}
	return value, true
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePagination reads page/limit query params; clamping happens in
// pkg/pagination when the service normalizes them.
func ParsePagination(c *gin.Context) (page, limit int) {
	return ParseQueryInt(c, "page", 0), ParseQueryInt(c, "limit", 0)
}
