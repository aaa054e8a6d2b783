package handlers

import (
	"net/http"

	"salesflow-backend/internal/metrics"
	"salesflow-backend/internal/sales"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CustomersHandler serves the customer registry view
type CustomersHandler struct {
	store *store.Store
}

// NewCustomersHandler creates a new customers handler
func NewCustomersHandler(s *store.Store) *CustomersHandler {
	return &CustomersHandler{store: s}
}

// CustomerRow is one row of the customer registry: the deal plus its
// probability-weighted projection and the resolved rep name
type CustomerRow struct {
	sales.Deal
	WeightedValue float64 `json:"weightedValue"`
	RepName       string  `json:"repName"`
}

// Registry returns deals filtered for the customer registry
// @Summary Customer registry
// @Description Search and filter the deal book; rows carry the weighted projection and rep name, sorted by value descending
// @Tags customers
// @Accept json
// @Produce json
// @Param q query string false "Free-text search over customer, title, notes and category"
// @Param stage query string false "Stage filter" default(all)
// @Param category query string false "Category filter" default(all)
// @Param rep query string false "Rep filter" default(all)
// @Success 200 {array} CustomerRow "Matching rows"
// @Router /customers [get]
func (h *CustomersHandler) Registry(c *gin.Context) {
	filter := metrics.Filter{
		Query:    c.Query("q"),
		Stage:    c.DefaultQuery("stage", metrics.FilterAll),
		Category: c.DefaultQuery("category", metrics.FilterAll),
		RepID:    c.DefaultQuery("rep", metrics.FilterAll),
	}

	reps := h.store.Reps()
	matched := metrics.Registry(h.store.Deals(), filter)

	rows := make([]CustomerRow, len(matched))
	for i, d := range matched {
		rows[i] = CustomerRow{
			Deal:          d,
			WeightedValue: d.WeightedValue(),
			RepName:       sales.RepName(reps, d.AssignedRepID),
		}
	}
	c.JSON(http.StatusOK, rows)
}
