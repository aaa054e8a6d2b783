package handlers

import (
	"net/http"

	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// LiveHandler controls the live pipeline feed
type LiveHandler struct {
	feed      *store.Feed
	validator *validator.Validate
}

// NewLiveHandler creates a new live feed handler
func NewLiveHandler(feed *store.Feed, validate *validator.Validate) *LiveHandler {
	return &LiveHandler{feed: feed, validator: validate}
}

// LiveRequest toggles the live feed
type LiveRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// LiveResponse reports the feed state
type LiveResponse struct {
	Enabled bool   `json:"enabled"`
	Mode    string `json:"mode"`
}

// Status returns the live feed state
// @Summary Live feed status
// @Description Report whether the feed is running and how updates are delivered
// @Tags live
// @Accept json
// @Produce json
// @Success 200 {object} LiveResponse "Current feed state"
// @Router /live [get]
func (h *LiveHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, LiveResponse{
		Enabled: h.feed.Live(),
		Mode:    h.feed.Mode(),
	})
}

// Toggle starts or stops the live feed
// @Summary Toggle the live feed
// @Description Enable or disable live pipeline updates
// @Tags live
// @Accept json
// @Produce json
// @Param live body LiveRequest true "Enabled flag"
// @Success 200 {object} LiveResponse "New feed state"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Change subscription failed"
// @Router /live [patch]
func (h *LiveHandler) Toggle(c *gin.Context) {
	var req LiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.feed.SetLive(*req.Enabled); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, LiveResponse{
		Enabled: h.feed.Live(),
		Mode:    h.feed.Mode(),
	})
}
