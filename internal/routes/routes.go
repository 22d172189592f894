package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/ws"
)

// RegisterRoutes wires every HTTP and WebSocket route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.FileHandler.RegisterRoutes(api)
	}

	// The websocket handshake authenticates itself via the token query
	// parameter, so no AuthMiddleware here.
	ginRouter.GET("/ws", wsHandler.ServeWS)
	logger.Info("WebSocket route /ws registered")
}
