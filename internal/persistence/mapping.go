package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"salesflow-backend/internal/database/models"
	"salesflow-backend/internal/sales"
)

// dealToRecord flattens a domain deal into its storage shape
func dealToRecord(d sales.Deal) (models.DealRecord, error) {
	rec := models.DealRecord{
		ID:            d.ID,
		CustomerName:  d.CustomerName,
		Title:         d.Title,
		Value:         d.Value,
		Stage:         string(d.Stage),
		Category:      string(d.Category),
		BusinessType:  string(d.BusinessType),
		AssignedRepID: d.AssignedRepID,
		CloseDate:     d.CloseDate,
		Probability:   d.Probability,
		LastUpdated:   d.LastUpdated,
		Notes:         d.Notes,
	}
	if d.StageHistory != nil {
		history := make(map[string]time.Time, len(d.StageHistory))
		for stage, at := range d.StageHistory {
			history[string(stage)] = at
		}
		raw, err := json.Marshal(history)
		if err != nil {
			return models.DealRecord{}, fmt.Errorf("marshal stage history: %w", err)
		}
		rec.StageHistory = raw
	}
	return rec, nil
}

// recordToDeal restores a domain deal from its storage shape
func recordToDeal(rec models.DealRecord) (sales.Deal, error) {
	d := sales.Deal{
		ID:            rec.ID,
		CustomerName:  rec.CustomerName,
		Title:         rec.Title,
		Value:         rec.Value,
		Stage:         sales.Stage(rec.Stage),
		Category:      sales.Category(rec.Category),
		BusinessType:  sales.BusinessType(rec.BusinessType),
		AssignedRepID: rec.AssignedRepID,
		CloseDate:     rec.CloseDate,
		Probability:   rec.Probability,
		LastUpdated:   rec.LastUpdated,
		Notes:         rec.Notes,
	}
	if len(rec.StageHistory) > 0 {
		var history map[string]time.Time
		if err := json.Unmarshal(rec.StageHistory, &history); err != nil {
			return sales.Deal{}, fmt.Errorf("unmarshal stage history: %w", err)
		}
		d.StageHistory = make(map[sales.Stage]time.Time, len(history))
		for stage, at := range history {
			d.StageHistory[sales.Stage(stage)] = at
		}
	}
	return d, nil
}

// repToRecord flattens a domain rep into its storage shape
func repToRecord(r sales.SalesRep) (models.SalesRepRecord, error) {
	rec := models.SalesRepRecord{
		ID:              r.ID,
		Name:            r.Name,
		Avatar:          r.Avatar,
		Quota:           r.Quota,
		VariablePayPool: r.VariablePayPool,
	}
	if r.TeamMembers != nil {
		raw, err := json.Marshal(r.TeamMembers)
		if err != nil {
			return models.SalesRepRecord{}, fmt.Errorf("marshal team members: %w", err)
		}
		rec.TeamMembers = raw
	}
	return rec, nil
}

// recordToRep restores a domain rep from its storage shape
func recordToRep(rec models.SalesRepRecord) (sales.SalesRep, error) {
	r := sales.SalesRep{
		ID:              rec.ID,
		Name:            rec.Name,
		Avatar:          rec.Avatar,
		Quota:           rec.Quota,
		VariablePayPool: rec.VariablePayPool,
	}
	if len(rec.TeamMembers) > 0 {
		if err := json.Unmarshal(rec.TeamMembers, &r.TeamMembers); err != nil {
			return sales.SalesRep{}, fmt.Errorf("unmarshal team members: %w", err)
		}
	}
	return r, nil
}
