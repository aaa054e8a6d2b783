package models

import "encoding/json"

// SalesRepRecord is the flat storage shape of a rep or team. Reps are
// seeded once and only their quota changes at runtime.
type SalesRepRecord struct {
	ID              string          `json:"id" gorm:"primaryKey;size:64"`
	Name            string          `json:"name" gorm:"column:name;not null"`
	Avatar          string          `json:"avatar" gorm:"column:avatar"`
	Quota           float64         `json:"quota" gorm:"column:quota;not null;default:0"`
	VariablePayPool float64         `json:"variable_pay_pool" gorm:"column:variable_pay_pool;not null;default:0"`
	TeamMembers     json.RawMessage `json:"team_members" gorm:"column:team_members;type:jsonb"`
}

// TableName overrides the gorm table name
func (SalesRepRecord) TableName() string {
	return "sales_reps"
}
