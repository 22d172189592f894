package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("", h.GetAll)
		public.GET("/search", h.Search)
		public.GET("/job-details/:jobId", h.GetByID)
	}

	recruiter := r.Group("/jobs")
	recruiter.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleRecruiter))
	{
		recruiter.POST("", h.Create)
		recruiter.PATCH("/:jobId", h.Update)
		recruiter.DELETE("/:jobId", h.Delete)
		recruiter.GET("/own-posted-jobs", h.GetOwn)
		recruiter.GET("/own-posted-jobs/:jobId", h.GetOneOwn)
		recruiter.GET("/applications/:jobId", h.GetApplicants)
		recruiter.GET("/applications/:jobId/:applicationId", h.GetOneApplicant)
	}

	admin := r.Group("/jobs/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.DELETE("/:jobId", h.DeleteByAdmin)
	}
}

func (h *JobHandler) GetAll(c *gin.Context) {
	page, limit := ParsePagination(c)
	result, err := h.jobService.GetAll(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.jobService.Search(c.Query("query"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	job, err := h.jobService.GetByID(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	job, err := h.jobService.Update(userID, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	if err := h.jobService.DeleteByOwner(userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) DeleteByAdmin(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	if err := h.jobService.DeleteByAdmin(jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	page, limit := ParsePagination(c)
	result, err := h.jobService.GetOwn(userID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *JobHandler) GetOneOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	job, err := h.jobService.GetOneOwn(userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetApplicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	applicants, err := h.jobService.GetApplicants(userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applicants})
}

func (h *JobHandler) GetOneApplicant(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "jobId")
	if !ok {
		return
	}
	applicationID, ok := h.RequireParam(c, "applicationId")
	if !ok {
		return
	}
	application, err := h.jobService.GetOneApplicant(userID, jobID, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
