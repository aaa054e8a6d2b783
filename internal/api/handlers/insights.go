package handlers

import (
	"net/http"

	"salesflow-backend/internal/insight"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// InsightsHandler serves generated pipeline commentary
type InsightsHandler struct {
	store    *store.Store
	insights insight.Generator
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(s *store.Store, insights insight.Generator) *InsightsHandler {
	return &InsightsHandler{store: s, insights: insights}
}

// Pipeline returns an executive summary of the active pipeline
// @Summary Pipeline insight
// @Description Generate a short executive summary; degrades to a fixed message when generation fails
// @Tags insights
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Generated summary"
// @Router /insights/pipeline [get]
func (h *InsightsHandler) Pipeline(c *gin.Context) {
	summary, err := h.insights.SummarizePipeline(c.Request.Context(), h.store.Deals(), h.store.Reps())
	if err != nil {
		summary = insight.FallbackPipeline
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
