package routes

import (
	"github.com/gin-gonic/gin"

	"modelboard_backend/internal/handlers"
)

// RegisterRoutes wires every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.RegistrationHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}
}
