package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

// resumes are modest documents; anything bigger is a mistake.
const maxResumeSize = 10 << 20

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	storage            storage.Storage
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, store storage.Storage) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		storage:            store,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobseeker := r.Group("/applications")
	jobseeker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobseeker))
	{
		jobseeker.POST("", h.Apply)
		jobseeker.GET("/me", h.GetAllMy)
		jobseeker.GET("/me/cancelled", h.GetMyCancelled)
		jobseeker.GET("/me/:applicationId", h.GetOneOfMy)
		jobseeker.PATCH("/:applicationId/cancel", h.Cancel)
		jobseeker.DELETE("/:applicationId", h.Delete)
	}

	recruiter := r.Group("/applications")
	recruiter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter))
	{
		recruiter.PATCH("/:applicationId/status", h.UpdateStatus)
	}
}

// Apply accepts multipart form data: a job_id field and an optional
// resume file, stored before the service call so a duplicate apply can
// clean it up.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID := c.PostForm("job_id")
	if jobID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required field: job_id"))
		return
	}

	resumePath, ok := h.saveResume(c, userID)
	if !ok {
		return
	}

	application, err := h.applicationService.Apply(userID, jobID, resumePath)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// saveResume stores the optional resume upload and returns its path;
// ok=false means the error response was already written.
func (h *ApplicationHandler) saveResume(c *gin.Context, userID string) (string, bool) {
	file, err := c.FormFile("resume")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", true
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid resume upload: "+err.Error()))
		return "", false
	}

	if file.Size > maxResumeSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Resume exceeds the 10MB limit"))
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return "", false
	}
	defer src.Close()

	path := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), filepath.Ext(file.Filename))
	if err := h.storage.Save(c.Request.Context(), path, src); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return "", false
	}
	return path, true
}

func (h *ApplicationHandler) GetAllMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applications, err := h.applicationService.GetAllMy(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) GetMyCancelled(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applications, err := h.applicationService.GetMyCancelled(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) GetOneOfMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}
	application, err := h.applicationService.GetOneOfMy(userID, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	application, err := h.applicationService.UpdateStatus(userID, applicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}
	application, err := h.applicationService.Cancel(userID, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}
	if err := h.applicationService.DeleteMy(userID, applicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
