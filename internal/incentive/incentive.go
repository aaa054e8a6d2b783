// Package incentive computes variable-pay statements for a rep from the
// current quota and deal collection. Nothing here is cached: a quota edit
// is reflected on the next Calculate call.
package incentive

import "salesflow-backend/internal/sales"

// maxTierPercent is the payout percentage of the top achievement slab
const maxTierPercent = 20

// payoutTier maps an achievement floor to a variable-pay percentage
type payoutTier struct {
	Floor   float64
	Percent float64
}

// payoutTiers is evaluated high to low; the first slab whose floor the
// achievement reaches wins. Floors are inclusive.
var payoutTiers = []payoutTier{
	{Floor: 100, Percent: 20},
	{Floor: 51, Percent: 15},
	{Floor: 31, Percent: 10},
	{Floor: 10, Percent: 5},
}

// TierPercent returns the variable-pay percentage for an achievement
// percentage
func TierPercent(achievementPct float64) float64 {
	for _, t := range payoutTiers {
		if achievementPct >= t.Floor {
			return t.Percent
		}
	}
	return 0
}

// Checkpoint is one rolling pipeline-coverage target. Targets are fixed
// fractions of the rep's quota; Value sums the rep's deals in the
// checkpoint's stages. Purely informational, it never feeds the payout.
type Checkpoint struct {
	Label    string  `json:"label"`
	Window   string  `json:"window"`
	Target   float64 `json:"target"`
	Value    float64 `json:"value"`
	Achieved bool    `json:"achieved"`
}

// checkpointSpec fixes the label, quota fraction and stage set of each
// plan-health checkpoint
type checkpointSpec struct {
	label    string
	window   string
	fraction float64
	stages   []sales.Stage
}

var checkpointSpecs = []checkpointSpec{
	{label: "N (PO/Won)", window: "Current Month", fraction: 0.075, stages: []sales.Stage{sales.StageClosedWon}},
	{label: "N+1 (Neg)", window: "Negotiation", fraction: 0.15, stages: []sales.Stage{sales.StageNegotiation}},
	{label: "N+2 (Quote)", window: "Offer Submitted", fraction: 0.30, stages: []sales.Stage{sales.StageProposal}},
	{label: "N+3 (Lead)", window: "Pipeline", fraction: 0.60, stages: []sales.Stage{sales.StageLead, sales.StageQualified}},
}

// Statement is the full incentive picture for one rep
type Statement struct {
	RepID             string       `json:"repId"`
	Revenue           float64      `json:"revenue"`
	AchievementPct    float64      `json:"achievementPct"`
	TierPercent       float64      `json:"tierPercent"`
	PayoutRatio       float64      `json:"payoutRatio"`
	VariablePay       float64      `json:"variablePay"`
	IncentiveEligible bool         `json:"incentiveEligible"`
	IncentiveAmount   float64      `json:"incentiveAmount"`
	TotalEarnings     float64      `json:"totalEarnings"`
	PlanHealth        []Checkpoint `json:"planHealth"`
}

// Calculate derives the rep's statement from the full deal collection.
// Revenue counts only the rep's closed-won deals. A zero quota is invalid
// state but is guarded; achievement reports 0 instead of dividing.
func Calculate(rep sales.SalesRep, deals []sales.Deal) Statement {
	var revenue float64
	for _, d := range deals {
		if d.AssignedRepID == rep.ID && d.Stage == sales.StageClosedWon {
			revenue += d.Value
		}
	}

	achievement := 0.0
	if rep.Quota > 0 {
		achievement = revenue / rep.Quota * 100
	}

	tier := TierPercent(achievement)
	ratio := tier / maxTierPercent
	variablePay := rep.VariablePayPool * ratio

	eligible := achievement >= 100
	incentive := 0.0
	if eligible {
		incentive = rep.VariablePayPool * 0.5
	}

	return Statement{
		RepID:             rep.ID,
		Revenue:           revenue,
		AchievementPct:    achievement,
		TierPercent:       tier,
		PayoutRatio:       ratio,
		VariablePay:       variablePay,
		IncentiveEligible: eligible,
		IncentiveAmount:   incentive,
		TotalEarnings:     variablePay + incentive,
		PlanHealth:        planHealth(rep, deals),
	}
}

func planHealth(rep sales.SalesRep, deals []sales.Deal) []Checkpoint {
	out := make([]Checkpoint, len(checkpointSpecs))
	for i, spec := range checkpointSpecs {
		var value float64
		for _, d := range deals {
			if d.AssignedRepID != rep.ID {
				continue
			}
			for _, s := range spec.stages {
				if d.Stage == s {
					value += d.Value
					break
				}
			}
		}
		target := rep.Quota * spec.fraction
		out[i] = Checkpoint{
			Label:    spec.label,
			Window:   spec.window,
			Target:   target,
			Value:    value,
			Achieved: value >= target,
		}
	}
	return out
}
