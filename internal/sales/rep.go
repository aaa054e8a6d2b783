package sales

// SalesRep is a quota-carrying representative or team. Reps are loaded at
// startup and never created or deleted at runtime; only the quota changes.
type SalesRep struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"`
	Quota           float64  `json:"quota"`
	VariablePayPool float64  `json:"variablePayPool"`
	TeamMembers     []string `json:"teamMembers,omitempty"`
}

// IsTeam reports whether the rep entry actually represents a team
func (r SalesRep) IsTeam() bool {
	return len(r.TeamMembers) > 0
}

// RepName resolves a rep id to its display name. A dangling reference
// degrades to "Unknown" rather than failing.
func RepName(reps []SalesRep, id string) string {
	for _, r := range reps {
		if r.ID == id {
			return r.Name
		}
	}
	return "Unknown"
}

// CloneReps copies a rep collection
func CloneReps(reps []SalesRep) []SalesRep {
	out := make([]SalesRep, len(reps))
	for i, r := range reps {
		out[i] = r
		if r.TeamMembers != nil {
			out[i].TeamMembers = append([]string(nil), r.TeamMembers...)
		}
	}
	return out
}
