package handlers

import (
	"net/http"

	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// NoticesHandler serves rollback notices
type NoticesHandler struct {
	store *store.Store
}

// NewNoticesHandler creates a new notices handler
func NewNoticesHandler(s *store.Store) *NoticesHandler {
	return &NoticesHandler{store: s}
}

// List returns the retained rollback notices, newest first
// @Summary List notices
// @Description Mutations that could not be confirmed and were rolled back
// @Tags notices
// @Accept json
// @Produce json
// @Success 200 {array} store.Notice "Retained notices"
// @Router /notices [get]
func (h *NoticesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Notices())
}

// Clear drops all retained notices
// @Summary Clear notices
// @Description Dismiss all retained rollback notices
// @Tags notices
// @Accept json
// @Produce json
// @Success 204 "Notices cleared"
// @Router /notices [delete]
func (h *NoticesHandler) Clear(c *gin.Context) {
	h.store.ClearNotices()
	c.Status(http.StatusNoContent)
}
