package sales

import "time"

// Category classifies the business line a deal belongs to
type Category string

const (
	CategorySoftware   Category = "Software"
	CategoryHardware   Category = "Hardware"
	CategoryServices   Category = "Services"
	CategoryCloud      Category = "Cloud"
	CategoryConsulting Category = "Consulting"
)

// Categories lists all deal categories
var Categories = []Category{
	CategorySoftware,
	CategoryHardware,
	CategoryServices,
	CategoryCloud,
	CategoryConsulting,
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// BusinessType distinguishes new business from expansion of an existing
// account
type BusinessType string

const (
	BusinessTypeNew      BusinessType = "New"
	BusinessTypeExisting BusinessType = "Existing"
)

// BusinessTypes lists all business types
var BusinessTypes = []BusinessType{BusinessTypeNew, BusinessTypeExisting}

// Valid reports whether b is a known business type
func (b BusinessType) Valid() bool {
	return b == BusinessTypeNew || b == BusinessTypeExisting
}

// Deal is a single sales opportunity. Amounts are INR.
type Deal struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	Title        string              `json:"title"`
	Value        float64             `json:"value"`
	Stage        Stage               `json:"stage"`
	Category     Category            `json:"category"`
	BusinessType BusinessType        `json:"businessType,omitempty"`
	AssignedRepID string             `json:"assignedRepId"`
	CloseDate    time.Time           `json:"closeDate"`
	Probability  int                 `json:"probability"`
	LastUpdated  time.Time           `json:"lastUpdated"`
	StageHistory map[Stage]time.Time `json:"stageHistory,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// Active reports whether the deal is still in flight, i.e. not closed
// won or lost.
func (d Deal) Active() bool {
	return !d.Stage.Terminal()
}

// WeightedValue is the probability-weighted projected volume of the deal
func (d Deal) WeightedValue() float64 {
	return d.Value * float64(d.Probability) / 100
}

// SetStage moves the deal to the given stage and records when it entered
// that stage. History entries for other stages are never removed.
func (d *Deal) SetStage(stage Stage, at time.Time) {
	d.Stage = stage
	if d.StageHistory == nil {
		d.StageHistory = make(map[Stage]time.Time)
	}
	d.StageHistory[stage] = at
	d.LastUpdated = at
}

// Clone returns a deep copy of the deal, including its stage history.
// Snapshots taken for optimistic rollback must not alias the live map.
func (d Deal) Clone() Deal {
	out := d
	if d.StageHistory != nil {
		out.StageHistory = make(map[Stage]time.Time, len(d.StageHistory))
		for k, v := range d.StageHistory {
			out.StageHistory[k] = v
		}
	}
	return out
}

// CloneDeals deep-copies a deal collection
func CloneDeals(deals []Deal) []Deal {
	out := make([]Deal, len(deals))
	for i, d := range deals {
		out[i] = d.Clone()
	}
	return out
}
