package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/current", h.GetCurrent)
		users.GET("/details/:userId", h.GetByID)
		users.PUT("/own-details", h.UpdateOwnDetails)
		users.DELETE("/own", h.DeleteOwn)
	}

	admin := r.Group("/users/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/recruiters", h.GetAllRecruiters)
		admin.GET("/jobseekers", h.GetAllJobseekers)
		admin.GET("/deleted-accounts", h.GetAllDeleted)
		admin.DELETE("/:userId", h.DeleteByAdmin)
	}
}

func (h *UserHandler) GetCurrent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetCurrent(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	userID, ok := h.RequireParam(c, "userId")
	if !ok {
		return
	}
	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateOwnDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateOwnDetails(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteOwn(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account scheduled for deletion"})
}

func (h *UserHandler) DeleteByAdmin(c *gin.Context) {
	userID, ok := h.RequireParam(c, "userId")
	if !ok {
		return
	}
	if err := h.userService.DeleteByAdmin(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (h *UserHandler) GetAllRecruiters(c *gin.Context) {
	page, limit := ParsePagination(c)
	result, err := h.userService.GetAllRecruiters(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetAllJobseekers(c *gin.Context) {
	page, limit := ParsePagination(c)
	result, err := h.userService.GetAllJobseekers(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetAllDeleted(c *gin.Context) {
	page, limit := ParsePagination(c)
	result, err := h.userService.GetAllDeleted(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
