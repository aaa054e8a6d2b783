package metrics

import (
	"sort"
	"strings"

	"salesflow-backend/internal/sales"
)

// FilterAll is the no-op value for the equality filters
const FilterAll = "all"

// Filter narrows a deal collection for search views. Query matches
// case-insensitively against customer name, title, notes and category;
// Stage, Category and RepID are independent equality filters combined
// with AND. Empty values and "all" disable the corresponding filter.
type Filter struct {
	Query    string
	Stage    string
	Category string
	RepID    string
}

func (f Filter) active(v string) bool {
	return v != "" && v != FilterAll
}

// Match reports whether the deal passes every enabled filter
func (f Filter) Match(d sales.Deal) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(d.CustomerName), q) &&
			!strings.Contains(strings.ToLower(d.Title), q) &&
			!strings.Contains(strings.ToLower(d.Notes), q) &&
			!strings.Contains(strings.ToLower(string(d.Category)), q) {
			return false
		}
	}
	if f.active(f.Stage) && string(d.Stage) != f.Stage {
		return false
	}
	if f.active(f.Category) && string(d.Category) != f.Category {
		return false
	}
	if f.active(f.RepID) && d.AssignedRepID != f.RepID {
		return false
	}
	return true
}

// Registry returns the deals passing the filter, sorted descending by
// value for the customer registry view. Equal values keep their original
// relative order.
func Registry(deals []sales.Deal, f Filter) []sales.Deal {
	out := make([]sales.Deal, 0, len(deals))
	for _, d := range deals {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
