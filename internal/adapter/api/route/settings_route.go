package route

import (
	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/controller"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

// ConfigureSettingsRoutes registers the session profile endpoints
func ConfigureSettingsRoutes(router *gin.RouterGroup, settingsController *controller.SettingsController) {
	settingsGroup := router.Group("/settings")
	settingsGroup.Use(session.Middleware())
	{
		settingsGroup.GET("", settingsController.Get)
		settingsGroup.PUT("", settingsController.Update)
	}
}
