package testutils

import (
	"time"

	"salesflow-backend/internal/sales"

	"github.com/google/uuid"
)

// DealFactory provides methods to create test Deal data
type DealFactory struct{}

// NewDealFactory creates a new DealFactory
func NewDealFactory() *DealFactory {
	return &DealFactory{}
}

// Create creates a test deal with default values
func (f *DealFactory) Create() sales.Deal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return sales.Deal{
		ID:            uuid.NewString(),
		CustomerName:  "Test Customer",
		Title:         "Test Deal",
		Value:         0.5 * sales.Crore,
		Stage:         sales.StageLead,
		Category:      sales.CategorySoftware,
		BusinessType:  sales.BusinessTypeNew,
		AssignedRepID: "george",
		CloseDate:     time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		Probability:   20,
		LastUpdated:   now,
		StageHistory:  map[sales.Stage]time.Time{sales.StageLead: now},
	}
}

// CreateWithStage creates a test deal in the given stage
func (f *DealFactory) CreateWithStage(stage sales.Stage) sales.Deal {
	d := f.Create()
	d.Stage = stage
	d.StageHistory[stage] = d.LastUpdated
	if stage == sales.StageClosedWon {
		d.Probability = 100
	}
	return d
}

// RepFactory provides methods to create test SalesRep data
type RepFactory struct{}

// NewRepFactory creates a new RepFactory
func NewRepFactory() *RepFactory {
	return &RepFactory{}
}

// Create creates a test rep with default values
func (f *RepFactory) Create() sales.SalesRep {
	return sales.SalesRep{
		ID:              uuid.NewString(),
		Name:            "Test Rep",
		Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Test",
		Quota:           4 * sales.Crore,
		VariablePayPool: 8 * sales.Lakh,
	}
}

// CreateTeam creates a test team entry
func (f *RepFactory) CreateTeam(members ...string) sales.SalesRep {
	r := f.Create()
	r.Name = "Test Team"
	r.TeamMembers = members
	return r
}
