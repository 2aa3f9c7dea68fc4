package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/pkg/openai"
	"restaurant-ai-service/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one conversational turn and returns the complete answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       restaurant_id path string  true "Restaurant ID or slug"
// @Param       body          body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Restaurant not found"
// @Router      /api/v1/restaurants/{restaurant_id}/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput(restID))
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, newChatResp(output))
}

// ChatStream godoc
// @Summary     Stream a chat answer
// @Description Runs one conversational turn and streams the answer as
// @Description newline-delimited JSON events: token, then done (or error).
// @Tags        Chat
// @Accept      json
// @Produce     application/x-ndjson
// @Param       restaurant_id path string  true "Restaurant ID or slug"
// @Param       body          body chatReq true "Chat message"
// @Success     200 {string} string "NDJSON event stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Restaurant not found"
// @Router      /api/v1/restaurants/{restaurant_id}/chat/stream [POST]
func (h *handler) ChatStream(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	c.Writer.Header().Set("Content-Type", "application/x-ndjson")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	enc := json.NewEncoder(c.Writer)
	emit := func(event chat.StreamEvent) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(event); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	if err := h.uc.ChatStream(ctx, req.toInput(restID), emit); err != nil {
		h.l.Errorf(ctx, "uc.ChatStream: %v", err)
		// Headers are not out yet only when the turn failed before the
		// first event, so a JSON error response is still possible.
		if !c.Writer.Written() {
			respondError(c, err)
		}
	}
}

// Suggestions godoc
// @Summary     Suggested follow-up questions
// @Description Returns follow-up prompts based on the customer's message, or
// @Description conversation starters when no message is given.
// @Tags        Chat
// @Produce     json
// @Param       restaurant_id path  string true  "Restaurant ID or slug"
// @Param       message       query string false "Customer message"
// @Success     200 {object} suggestionsResp
// @Failure     404 {object} response.Resp "Restaurant not found"
// @Router      /api/v1/restaurants/{restaurant_id}/chat/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	suggestions, err := h.uc.Suggestions(ctx, restID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggestions: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, suggestionsResp{Suggestions: suggestions})
}

// Analytics godoc
// @Summary     Chat analytics
// @Description Aggregates chat analytics events for a restaurant.
// @Tags        Chat
// @Produce     json
// @Param       restaurant_id path  string true  "Restaurant ID or slug"
// @Param       since         query string false "Window start (RFC3339)"
// @Param       days          query int    false "Window size in days (default 7)"
// @Success     200 {object} analyticsResp
// @Failure     404 {object} response.Resp "Restaurant not found"
// @Router      /api/v1/restaurants/{restaurant_id}/chat/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processAnalyticsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	since, err := req.window()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analytics(ctx, chat.AnalyticsInput{RestaurantID: restID, Since: since})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, newAnalyticsResp(output))
}

// GetConfig godoc
// @Summary     Get AI configuration
// @Description Returns the restaurant's full AI configuration.
// @Tags        AIConfig
// @Produce     json
// @Param       restaurant_id path string true "Restaurant ID"
// @Success     200 {object} aiconfig.Config
// @Router      /api/v1/restaurants/{restaurant_id}/ai/config [GET]
func (h *handler) GetConfig(c *gin.Context) {
	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, h.configs.Get(c.Request.Context(), restID))
}

// GetFrontendConfig godoc
// @Summary     Get frontend AI configuration
// @Description Returns the customer-facing view of the AI configuration.
// @Description Speech flags are masked when the mode disables speech.
// @Tags        AIConfig
// @Produce     json
// @Param       restaurant_id path string true "Restaurant ID"
// @Success     200 {object} aiconfig.FrontendConfig
// @Router      /api/v1/restaurants/{restaurant_id}/ai/config/frontend [GET]
func (h *handler) GetFrontendConfig(c *gin.Context) {
	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	cfg := h.configs.Get(c.Request.Context(), restID)
	response.OK(c, cfg.FrontendView())
}

// UpdateConfig godoc
// @Summary     Update AI configuration
// @Description Applies a partial update to the restaurant's AI configuration.
// @Description Fields absent from the body keep their current values.
// @Tags        AIConfig
// @Accept      json
// @Produce     json
// @Param       restaurant_id path string          true "Restaurant ID"
// @Param       body          body aiconfig.Config true "Configuration changes"
// @Success     200 {object} aiconfig.Config
// @Failure     400 {object} response.Resp "Validation failed"
// @Router      /api/v1/restaurants/{restaurant_id}/ai/config [PUT]
func (h *handler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// Decode on top of the current config so omitted fields survive.
	cfg := h.configs.Get(ctx, restID)
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.configs.Update(ctx, restID, cfg)
	if err != nil {
		h.l.Warnf(ctx, "configs.Update: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, updated)
}

// InvalidateCache godoc
// @Summary     Invalidate cached answers
// @Description Drops cached answers for a restaurant. With item_id in the
// @Description body only that item's deterministic entries are dropped (plus
// @Description the semantic tier); without it every cache is cleared.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       restaurant_id path string        true  "Restaurant ID"
// @Param       body          body invalidateReq false "Invalidation scope"
// @Success     200 {object} map[string]interface{}
// @Router      /api/v1/restaurants/{restaurant_id}/chat/cache/invalidate [POST]
func (h *handler) InvalidateCache(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req invalidateReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	if req.ItemID != "" {
		err = h.uc.InvalidateItem(ctx, restID, req.ItemID)
	} else {
		err = h.uc.InvalidateRestaurant(ctx, restID)
	}
	if err != nil {
		h.l.Errorf(ctx, "invalidate cache: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"status": "invalidated"})
}

// Transcribe godoc
// @Summary     Transcribe customer audio
// @Description Converts an uploaded audio file to text. Requires the
// @Description restaurant's speech recognition to be enabled.
// @Tags        Speech
// @Accept      multipart/form-data
// @Produce     json
// @Param       restaurant_id path     string true "Restaurant ID"
// @Param       audio         formData file   true "Audio file"
// @Success     200 {object} transcribeResp
// @Failure     403 {object} response.Resp "Speech disabled"
// @Router      /api/v1/restaurants/{restaurant_id}/speech/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	text, err := h.uc.Transcribe(ctx, restID, audio, header.Filename)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		respondError(c, err)
		return
	}

	response.OK(c, transcribeResp{Text: text})
}

// Synthesize godoc
// @Summary     Synthesize speech
// @Description Converts assistant text to audio. Requires the restaurant's
// @Description speech synthesis to be enabled.
// @Tags        Speech
// @Accept      json
// @Produce     audio/mpeg
// @Param       restaurant_id path string        true "Restaurant ID"
// @Param       body          body synthesizeReq true "Text to synthesize"
// @Success     200 {string} binary "MP3 audio"
// @Failure     403 {object} response.Resp "Speech disabled"
// @Router      /api/v1/restaurants/{restaurant_id}/speech/synthesize [POST]
func (h *handler) Synthesize(c *gin.Context) {
	ctx := c.Request.Context()

	restID, err := restaurantID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processSynthesizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	audio, err := h.uc.Synthesize(ctx, restID, req.Text, req.Voice)
	if err != nil {
		h.l.Errorf(ctx, "uc.Synthesize: %v", err)
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// AIHealth godoc
// @Summary     AI provider health
// @Description Reports the configured generation provider and model.
// @Tags        AI
// @Produce     json
// @Param       restaurant_id path string true "Restaurant ID"
// @Success     200 {object} map[string]interface{}
// @Router      /api/v1/restaurants/{restaurant_id}/ai/health [GET]
func (h *handler) AIHealth(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "ok",
		"provider": h.provider.Name(),
		"model":    h.provider.Model(),
	})
}

// Voices godoc
// @Summary     Available voices
// @Description Lists the voices available for speech synthesis.
// @Tags        AI
// @Produce     json
// @Param       restaurant_id path string true "Restaurant ID"
// @Success     200 {object} map[string]interface{}
// @Router      /api/v1/restaurants/{restaurant_id}/ai/voices [GET]
func (h *handler) Voices(c *gin.Context) {
	response.OK(c, gin.H{"voices": openai.Voices})
}
