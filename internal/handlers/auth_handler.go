package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register/recruiter", h.RegisterRecruiter)
		auth.POST("/register/jobseeker", h.RegisterJobseeker)
		auth.POST("/verify-email", h.VerifyEmail)
		auth.POST("/login", h.Login)
		auth.POST("/recover", h.RecoverAccount)
		auth.POST("/recover/verify", h.VerifyRecovery)
	}

	protected := r.Group("/auth")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) RegisterRecruiter(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.RegisterRecruiter(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Verification code sent"})
}

func (h *AuthHandler) RegisterJobseeker(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.RegisterJobseeker(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Verification code sent"})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	user, err := h.authService.VerifyEmail(req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) RecoverAccount(c *gin.Context) {
	var req dto.RecoverRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.RecoverAccount(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recovery code sent"})
}

func (h *AuthHandler) VerifyRecovery(c *gin.Context) {
	var req dto.VerifyRecoveryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.VerifyRecovery(req.Code); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account recovered"})
}
