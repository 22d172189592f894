package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{BaseHandler: base, skillService: skillService}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	skills.Use(middleware.AuthMiddleware())
	{
		skills.POST("", h.Create)
		skills.GET("/:skillId", h.GetByID)
		skills.DELETE("/:skillId", h.DeleteOwn)
	}

	admin := r.Group("/skills/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.GetAll)
	}
}

func (h *SkillHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	skill, err := h.skillService.Create(userID, req.SkillName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) GetAll(c *gin.Context) {
	page, limit := ParsePagination(c)
	result, err := h.skillService.GetAll(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SkillHandler) GetByID(c *gin.Context) {
	skillID, ok := h.RequireParam(c, "skillId")
	if !ok {
		return
	}
	skill, err := h.skillService.GetByID(skillID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) DeleteOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	skillID, ok := h.RequireParam(c, "skillId")
	if !ok {
		return
	}
	if err := h.skillService.DeleteOwn(userID, skillID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
