package models

import (
	"encoding/json"
	"time"
)

// DealRecord is the flat storage shape of a deal. Column names follow the
// snake_case schema of the dashboard's original datastore; internal
// components only ever see the domain type, mapped at the persistence
// boundary.
type DealRecord struct {
	ID            string          `json:"id" gorm:"primaryKey;size:64"`
	CustomerName  string          `json:"customer_name" gorm:"column:customer_name;not null"`
	Title         string          `json:"title" gorm:"column:title"`
	Value         float64         `json:"value" gorm:"column:value;not null;default:0"`
	Stage         string          `json:"stage" gorm:"column:stage;size:20"`
	Category      string          `json:"category" gorm:"column:category;size:20"`
	BusinessType  string          `json:"business_type" gorm:"column:business_type;size:10"`
	AssignedRepID string          `json:"assigned_rep_id" gorm:"column:assigned_rep_id;size:64;index"`
	CloseDate     time.Time       `json:"close_date" gorm:"column:close_date;type:date"`
	Probability   int             `json:"probability" gorm:"column:probability"`
	LastUpdated   time.Time       `json:"last_updated" gorm:"column:last_updated;index:idx_deals_last_updated,sort:desc"`
	StageHistory  json.RawMessage `json:"stage_history" gorm:"column:stage_history;type:jsonb"`
	Notes         string          `json:"notes" gorm:"column:notes"`
}

// TableName overrides the gorm table name
func (DealRecord) TableName() string {
	return "deals"
}
