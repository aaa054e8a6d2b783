package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "salesflow-backend/internal/errors"
	"salesflow-backend/internal/insight"
	"salesflow-backend/internal/sales"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// closeDateLayout is the wire format of deal dates
const closeDateLayout = "2006-01-02"

// DealsHandler handles HTTP requests for deals
type DealsHandler struct {
	store     *store.Store
	insights  insight.Generator
	validator *validator.Validate
}

// NewDealsHandler creates a new deals handler
func NewDealsHandler(s *store.Store, insights insight.Generator, validate *validator.Validate) *DealsHandler {
	return &DealsHandler{
		store:     s,
		insights:  insights,
		validator: validate,
	}
}

// DealRequest is the write payload for creating or fully updating a deal.
// StageDate optionally overrides the stage-history timestamp recorded for
// the deal's stage.
type DealRequest struct {
	CustomerName  string  `json:"customerName" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	Stage         string  `json:"stage" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	BusinessType  string  `json:"businessType"`
	AssignedRepID string  `json:"assignedRepId" validate:"required"`
	CloseDate     string  `json:"closeDate" validate:"required"`
	Probability   int     `json:"probability" validate:"gte=0,lte=100"`
	Notes         string  `json:"notes"`
	StageDate     string  `json:"stageDate"`
}

// toDeal converts the request into a domain deal plus the optional stage
// timestamp override. Domain enums are validated here so a bad payload
// never reaches the store.
func (r *DealRequest) toDeal() (sales.Deal, time.Time, error) {
	stage := sales.Stage(r.Stage)
	if !stage.Valid() {
		return sales.Deal{}, time.Time{}, apperrors.ErrInvalidStage
	}
	category := sales.Category(r.Category)
	if !category.Valid() {
		return sales.Deal{}, time.Time{}, apperrors.ErrInvalidCategory
	}
	businessType := sales.BusinessType(r.BusinessType)
	if r.BusinessType != "" && !businessType.Valid() {
		return sales.Deal{}, time.Time{}, apperrors.ErrInvalidBusinessType
	}

	closeDate, err := time.Parse(closeDateLayout, r.CloseDate)
	if err != nil {
		return sales.Deal{}, time.Time{}, apperrors.NewValidationError("closeDate", "must be formatted YYYY-MM-DD")
	}

	var stageAt time.Time
	if r.StageDate != "" {
		stageAt, err = time.Parse(closeDateLayout, r.StageDate)
		if err != nil {
			return sales.Deal{}, time.Time{}, apperrors.NewValidationError("stageDate", "must be formatted YYYY-MM-DD")
		}
	}

	return sales.Deal{
		CustomerName:  r.CustomerName,
		Title:         r.Title,
		Value:         r.Value,
		Stage:         stage,
		Category:      category,
		BusinessType:  businessType,
		AssignedRepID: r.AssignedRepID,
		CloseDate:     closeDate,
		Probability:   r.Probability,
		Notes:         r.Notes,
	}, stageAt, nil
}

// MoveStageRequest selects the direction of a stage move
type MoveStageRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next prev"`
}

// NotesRequest replaces a deal's notes
type NotesRequest struct {
	Notes string `json:"notes"`
}

// EditingRequest marks or unmarks a deal as being edited
type EditingRequest struct {
	Editing *bool `json:"editing" validate:"required"`
}

// ListDeals returns all deals
// @Summary List all deals
// @Description Get the full deal collection as currently known to the dashboard
// @Tags deals
// @Accept json
// @Produce json
// @Success 200 {array} sales.Deal "Successfully retrieved deals"
// @Router /deals [get]
func (h *DealsHandler) ListDeals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Deals())
}

// CreateDeal creates a new deal
// @Summary Create a new deal
// @Description Add a deal to the pipeline; it becomes visible immediately under a temporary id until the backend confirms
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body DealRequest true "Deal data"
// @Success 201 {object} sales.Deal "Successfully created deal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /deals [post]
func (h *DealsHandler) CreateDeal(c *gin.Context) {
	var req DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, stageAt, err := req.toDeal()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.CreateDeal(c.Request.Context(), deal, stageAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDeal applies a full edit to an existing deal
// @Summary Update a deal
// @Description Replace the editable fields of a deal; the stage history is preserved and extended
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param deal body DealRequest true "Deal data"
// @Success 200 {object} sales.Deal "Successfully updated deal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id} [put]
func (h *DealsHandler) UpdateDeal(c *gin.Context) {
	var req DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, stageAt, err := req.toDeal()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal.ID = c.Param("id")

	updated, err := h.store.UpdateDeal(c.Request.Context(), deal, stageAt)
	if err != nil {
		h.renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MoveStage moves a deal one stage forward or backward
// @Summary Move a deal through the pipeline
// @Description Move the deal one stage in the given direction, clamped at the pipeline ends
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param move body MoveStageRequest true "Move direction"
// @Success 200 {object} sales.Deal "Successfully moved deal"
// @Failure 400 {object} ErrorResponse "Invalid direction"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id}/stage [patch]
func (h *DealsHandler) MoveStage(c *gin.Context) {
	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.MoveStage(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		h.renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateNotes replaces a deal's notes
// @Summary Update deal notes
// @Description Replace the free-form notes attached to a deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param notes body NotesRequest true "Notes"
// @Success 200 {object} sales.Deal "Successfully updated notes"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id}/notes [patch]
func (h *DealsHandler) UpdateNotes(c *gin.Context) {
	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetEditing marks or unmarks a deal as being edited
// @Summary Mark a deal as under edit
// @Description While marked, the live feed never touches the deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param editing body EditingRequest true "Editing flag"
// @Success 200 {object} map[string]interface{} "Editing state applied"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id}/editing [patch]
func (h *DealsHandler) SetEditing(c *gin.Context) {
	var req EditingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if _, err := h.store.Deal(id); err != nil {
		h.renderStoreError(c, err)
		return
	}

	if *req.Editing {
		h.store.SetEditing(id)
	} else if h.store.EditingID() == id {
		h.store.SetEditing("")
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "editing": *req.Editing})
}

// DeleteDeal removes a deal
// @Summary Delete a deal
// @Description Remove the deal from the pipeline; it reappears with a notice if the backend rejects the removal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 204 "Successfully deleted deal"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id} [delete]
func (h *DealsHandler) DeleteDeal(c *gin.Context) {
	if err := h.store.DeleteDeal(c.Request.Context(), c.Param("id")); err != nil {
		h.renderStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DealInsight suggests a next action for one deal
// @Summary Suggest the next best action
// @Description Generate a one-line next action for the deal; degrades to a fixed suggestion when generation fails
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} map[string]string "Suggested action"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{id}/insight [get]
func (h *DealsHandler) DealInsight(c *gin.Context) {
	deal, err := h.store.Deal(c.Param("id"))
	if err != nil {
		h.renderStoreError(c, err)
		return
	}

	suggestion, err := h.insights.SuggestNextAction(c.Request.Context(), deal)
	if err != nil {
		suggestion = insight.FallbackNextAction
	}
	c.JSON(http.StatusOK, gin.H{"dealId": deal.ID, "suggestion": suggestion})
}

// renderStoreError maps store errors to HTTP responses
func (h *DealsHandler) renderStoreError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidDirection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
