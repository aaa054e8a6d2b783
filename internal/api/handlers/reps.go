package handlers

import (
	"errors"
	"net/http"

	apperrors "salesflow-backend/internal/errors"
	"salesflow-backend/internal/incentive"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RepsHandler handles HTTP requests for sales reps
type RepsHandler struct {
	store     *store.Store
	validator *validator.Validate
}

// NewRepsHandler creates a new reps handler
func NewRepsHandler(s *store.Store, validate *validator.Validate) *RepsHandler {
	return &RepsHandler{store: s, validator: validate}
}

// QuotaRequest changes a rep's annual quota
type QuotaRequest struct {
	Quota float64 `json:"quota" validate:"required,gt=0"`
}

// ListReps returns all sales reps and teams
// @Summary List all sales reps
// @Description Get the full rep roster including teams
// @Tags reps
// @Accept json
// @Produce json
// @Success 200 {array} sales.SalesRep "Successfully retrieved reps"
// @Router /reps [get]
func (h *RepsHandler) ListReps(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Reps())
}

// UpdateQuota changes a rep's quota
// @Summary Update a rep's quota
// @Description Change the annual quota; achievement and incentives re-derive immediately
// @Tags reps
// @Accept json
// @Produce json
// @Param id path string true "Rep ID"
// @Param quota body QuotaRequest true "New quota"
// @Success 200 {object} sales.SalesRep "Successfully updated rep"
// @Failure 400 {object} ErrorResponse "Invalid quota"
// @Failure 404 {object} ErrorResponse "Rep not found"
// @Router /reps/{id}/quota [patch]
func (h *RepsHandler) UpdateQuota(c *gin.Context) {
	var req QuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep, err := h.store.UpdateRepQuota(c.Request.Context(), c.Param("id"), req.Quota)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrQuotaNotPositive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, rep)
}

// Incentive returns the rep's variable-pay statement
// @Summary Get a rep's incentive statement
// @Description Derive achievement, payout tier, variable pay and plan health from the current quota and deals
// @Tags reps
// @Accept json
// @Produce json
// @Param id path string true "Rep ID"
// @Success 200 {object} incentive.Statement "Successfully computed statement"
// @Failure 404 {object} ErrorResponse "Rep not found"
// @Router /reps/{id}/incentive [get]
func (h *RepsHandler) Incentive(c *gin.Context) {
	rep, err := h.store.Rep(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, incentive.Calculate(rep, h.store.Deals()))
}
