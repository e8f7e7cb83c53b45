package route

import (
	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/controller"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

// ConfigureChatRoutes registers the conversation endpoints. Every route
// is scoped to a session via the session-id header middleware.
func ConfigureChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, analysisController *controller.AnalysisController) {
	chatGroup := router.Group("/chat")
	chatGroup.Use(session.Middleware())
	{
		chatGroup.POST("/messages", chatController.ProcessMessage)
		chatGroup.POST("/analyze", analysisController.Analyze)
		chatGroup.GET("/welcome", chatController.GetWelcome)
		chatGroup.GET("/history", chatController.GetHistory)
		chatGroup.DELETE("/history", chatController.DeleteHistory)
	}
}
