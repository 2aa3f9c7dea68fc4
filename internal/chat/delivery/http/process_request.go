package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingRestaurantID = errors.New("restaurant_id is required")

// restaurantID pulls the restaurant identifier (ID or slug) from the URI.
func restaurantID(c *gin.Context) (string, error) {
	id := c.Param("restaurant_id")
	if id == "" {
		return "", errMissingRestaurantID
	}
	return id, nil
}

// processChatReq binds and validates the chat message body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSuggestionsReq binds the suggestions query parameters. An absent
// message yields the conversation-starter suggestions.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAnalyticsReq binds the analytics window query parameters.
func (h *handler) processAnalyticsReq(c *gin.Context) (analyticsReq, error) {
	var req analyticsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSynthesizeReq binds and validates the speech synthesis body.
func (h *handler) processSynthesizeReq(c *gin.Context) (synthesizeReq, error) {
	var req synthesizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
