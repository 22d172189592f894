package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

// FileHandler streams stored resume files. Recruiters reach resumes
// through the application listings; the path itself is the capability,
// but the route still requires an authenticated caller.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{BaseHandler: base, storage: store}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware())
	{
		files.GET("/*filepath", h.Serve)
	}
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err, "file", "File not found"))
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", "attachment")
	c.Status(http.StatusOK)
	// Headers are already written; a copy failure here can only be dropped.
	_, _ = io.Copy(c.Writer, reader)
}
