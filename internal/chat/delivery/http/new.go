package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-ai-service/internal/aiconfig"
	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/pkg/llmprovider"
	"restaurant-ai-service/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ChatStream(c *gin.Context)
	Suggestions(c *gin.Context)
	Analytics(c *gin.Context)
	GetConfig(c *gin.Context)
	GetFrontendConfig(c *gin.Context)
	UpdateConfig(c *gin.Context)
	InvalidateCache(c *gin.Context)
	Transcribe(c *gin.Context)
	Synthesize(c *gin.Context)
	AIHealth(c *gin.Context)
	Voices(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	configs  *aiconfig.Service
	provider llmprovider.Provider
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, configs *aiconfig.Service, provider llmprovider.Provider) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		configs:  configs,
		provider: provider,
	}
}
