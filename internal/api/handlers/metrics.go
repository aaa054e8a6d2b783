package handlers

import (
	"net/http"

	"salesflow-backend/internal/metrics"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves derived dashboard figures. Everything here is
// recomputed from the current deal and rep collections on each request.
type MetricsHandler struct {
	store *store.Store
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(s *store.Store) *MetricsHandler {
	return &MetricsHandler{store: s}
}

// Summary returns the headline dashboard figures
// @Summary Headline metrics
// @Description Total revenue, pipeline value, win rate and average deal size
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {object} metrics.Summary "Successfully computed metrics"
// @Router /metrics [get]
func (h *MetricsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Aggregate(h.store.Deals()))
}

// Stages returns deal value and count per pipeline stage
// @Summary Pipeline by stage
// @Description Deal value and count per stage, in pipeline order
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {array} metrics.StageSlice "Per-stage totals"
// @Router /metrics/stages [get]
func (h *MetricsHandler) Stages(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.RevenueByStage(h.store.Deals()))
}

// Categories returns deal value per category
// @Summary Revenue by category
// @Description Deal value per category; empty categories are omitted
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {array} metrics.Slice "Per-category totals"
// @Router /metrics/categories [get]
func (h *MetricsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.RevenueByCategory(h.store.Deals()))
}

// BusinessTypes returns deal value per business type
// @Summary Revenue by business type
// @Description Deal value split between new and existing business
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {array} metrics.Slice "Per-type totals"
// @Router /metrics/business-types [get]
func (h *MetricsHandler) BusinessTypes(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.RevenueByBusinessType(h.store.Deals()))
}

// Monthly returns the closed-won revenue trend by month
// @Summary Monthly revenue
// @Description Closed-won revenue grouped by close month, chronological
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {array} metrics.MonthlyPoint "Monthly revenue points"
// @Router /metrics/monthly [get]
func (h *MetricsHandler) Monthly(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.MonthlyRevenue(h.store.Deals()))
}

// Performance returns the per-rep performance matrix
// @Summary Rep performance
// @Description Revenue, pipeline, win rate and quota achievement per rep, ranked by achievement
// @Tags metrics
// @Accept json
// @Produce json
// @Success 200 {array} metrics.RepPerformance "Performance rows"
// @Router /metrics/performance [get]
func (h *MetricsHandler) Performance(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.PerformanceByRep(h.store.Deals(), h.store.Reps()))
}
