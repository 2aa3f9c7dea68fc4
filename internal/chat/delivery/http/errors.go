package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500; the underlying message never reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrRestaurantNotFound):
		response.NotFound(c, err)
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	case errors.Is(err, chat.ErrSpeechDisabled):
		c.JSON(http.StatusForbidden, response.Resp{
			ErrorCode: http.StatusForbidden,
			Message:   "speech is not enabled for this restaurant",
		})
	default:
		response.InternalError(c, err)
	}
}
