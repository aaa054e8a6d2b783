// Package metrics computes derived sales figures from the full deal and
// rep collections. Every function is pure and recomputed from scratch on
// each call, so results can never go stale after a mutation.
package metrics

import (
	"sort"

	"salesflow-backend/internal/sales"
)

// Summary holds the headline dashboard figures
type Summary struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalPipelineValue float64 `json:"totalPipelineValue"`
	WinRate            float64 `json:"winRate"`
	AverageDealSize    float64 `json:"averageDealSize"`
}

// Aggregate computes the headline metrics over the full deal collection.
// An empty collection yields all zeros.
func Aggregate(deals []sales.Deal) Summary {
	var (
		revenue  float64
		pipeline float64
		won      int
		lost     int
	)
	for _, d := range deals {
		switch {
		case d.Stage == sales.StageClosedWon:
			revenue += d.Value
			won++
		case d.Stage == sales.StageClosedLost:
			lost++
		default:
			pipeline += d.Value
		}
	}

	closed := won + lost
	if closed == 0 {
		closed = 1 // win rate is 0 when nothing has closed, never NaN
	}

	avg := 0.0
	if won > 0 {
		avg = revenue / float64(won)
	}

	return Summary{
		TotalRevenue:       revenue,
		TotalPipelineValue: pipeline,
		WinRate:            float64(won) / float64(closed) * 100,
		AverageDealSize:    avg,
	}
}

// StageSlice is one bar of the pipeline-by-stage chart
type StageSlice struct {
	Stage sales.Stage `json:"stage"`
	Value float64     `json:"value"`
	Count int         `json:"count"`
}

// RevenueByStage sums deal values per pipeline stage. The result always
// contains one entry per configured stage, in pipeline order, regardless
// of input order.
func RevenueByStage(deals []sales.Deal) []StageSlice {
	totals := make(map[sales.Stage]*StageSlice, len(sales.Stages))
	out := make([]StageSlice, len(sales.Stages))
	for i, s := range sales.Stages {
		out[i] = StageSlice{Stage: s}
		totals[s] = &out[i]
	}
	for _, d := range deals {
		if slice, ok := totals[d.Stage]; ok {
			slice.Value += d.Value
			slice.Count++
		}
	}
	return out
}

// Slice is a labelled value in a rollup chart
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RevenueByCategory sums deal values per category, dropping categories
// with no value
func RevenueByCategory(deals []sales.Deal) []Slice {
	var out []Slice
	for _, cat := range sales.Categories {
		var total float64
		for _, d := range deals {
			if d.Category == cat {
				total += d.Value
			}
		}
		if total > 0 {
			out = append(out, Slice{Label: string(cat), Value: total})
		}
	}
	return out
}

// RevenueByBusinessType sums deal values per business type, dropping
// types with no value
func RevenueByBusinessType(deals []sales.Deal) []Slice {
	var out []Slice
	for _, bt := range sales.BusinessTypes {
		var total float64
		for _, d := range deals {
			if d.BusinessType == bt {
				total += d.Value
			}
		}
		if total > 0 {
			out = append(out, Slice{Label: string(bt), Value: total})
		}
	}
	return out
}

// MonthlyPoint is one point of the monthly revenue trend
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// MonthlyRevenue groups closed-won revenue by close month. Deals are
// stable-sorted ascending by close date first, so the output keys appear
// in chronological order; equal dates keep their original relative order.
func MonthlyRevenue(deals []sales.Deal) []MonthlyPoint {
	won := make([]sales.Deal, 0, len(deals))
	for _, d := range deals {
		if d.Stage == sales.StageClosedWon {
			won = append(won, d)
		}
	}
	sort.SliceStable(won, func(i, j int) bool {
		return won[i].CloseDate.Before(won[j].CloseDate)
	})

	index := make(map[string]int)
	var out []MonthlyPoint
	for _, d := range won {
		key := d.CloseDate.Format("Jan 06")
		if i, ok := index[key]; ok {
			out[i].Revenue += d.Value
			continue
		}
		index[key] = len(out)
		out = append(out, MonthlyPoint{Month: key, Revenue: d.Value})
	}
	return out
}

// RepPerformance is one row of the team performance matrix
type RepPerformance struct {
	Rep         sales.SalesRep `json:"rep"`
	Revenue     float64        `json:"revenue"`
	Pipeline    float64        `json:"pipeline"`
	WinRate     float64        `json:"winRate"`
	Achievement float64        `json:"achievement"`
}

// PerformanceByRep computes per-rep revenue, pipeline, win rate and quota
// achievement, ranked descending by achievement. Ties keep the roster
// order. A zero quota cannot occur in valid state but is guarded; it
// reports achievement 0 rather than dividing by zero.
func PerformanceByRep(deals []sales.Deal, reps []sales.SalesRep) []RepPerformance {
	out := make([]RepPerformance, len(reps))
	for i, rep := range reps {
		var (
			revenue  float64
			pipeline float64
			won      int
			lost     int
		)
		for _, d := range deals {
			if d.AssignedRepID != rep.ID {
				continue
			}
			switch {
			case d.Stage == sales.StageClosedWon:
				revenue += d.Value
				won++
			case d.Stage == sales.StageClosedLost:
				lost++
			default:
				pipeline += d.Value
			}
		}

		winRate := 0.0
		if won+lost > 0 {
			winRate = float64(won) / float64(won+lost) * 100
		}
		achievement := 0.0
		if rep.Quota > 0 {
			achievement = revenue / rep.Quota * 100
		}

		out[i] = RepPerformance{
			Rep:         rep,
			Revenue:     revenue,
			Pipeline:    pipeline,
			WinRate:     winRate,
			Achievement: achievement,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Achievement > out[j].Achievement
	})
	return out
}
