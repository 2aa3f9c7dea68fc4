package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All
// restaurant-scoped routes accept either the restaurant ID or its slug.
func RegisterRoutes(api *gin.RouterGroup, h Handler) {
	restaurants := api.Group("/restaurants/:restaurant_id")
	{
		chatGroup := restaurants.Group("/chat")
		{
			chatGroup.POST("", h.Chat)
			chatGroup.POST("/stream", h.ChatStream)
			chatGroup.GET("/suggestions", h.Suggestions)
			chatGroup.GET("/analytics", h.Analytics)
			chatGroup.POST("/cache/invalidate", h.InvalidateCache)
		}

		ai := restaurants.Group("/ai")
		{
			ai.GET("/config", h.GetConfig)
			ai.GET("/config/frontend", h.GetFrontendConfig)
			ai.PUT("/config", h.UpdateConfig)
			ai.GET("/health", h.AIHealth)
			ai.GET("/voices", h.Voices)
		}

		speech := restaurants.Group("/speech")
		{
			speech.POST("/transcribe", h.Transcribe)
			speech.POST("/synthesize", h.Synthesize)
		}
	}
}
