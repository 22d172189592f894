package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.POST("", h.Create)
		notifications.GET("", h.GetAll)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.GET("/:notificationId", h.GetOne)
		notifications.PATCH("/:notificationId", h.MarkAsRead)
		notifications.DELETE("/:notificationId", h.Delete)
	}
}

// Create stores a notification for the caller. The recipient is taken
// from the token, never from the body.
func (h *NotificationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.CreateNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	notification, err := h.notificationService.Create(userID, req.Message, req.Data)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) GetAll(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.GetAll(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) GetOne(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	notificationID, ok := h.RequireParam(c, "notificationId")
	if !ok {
		return
	}
	notification, err := h.notificationService.GetOne(userID, notificationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	notificationID, ok := h.RequireParam(c, "notificationId")
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkAsRead(userID, notificationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	notificationID, ok := h.RequireParam(c, "notificationId")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(userID, notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
