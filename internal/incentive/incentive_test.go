package incentive

import (
	"testing"

	"salesflow-backend/internal/sales"

	"github.com/stretchr/testify/assert"
)

func TestTierPercentBoundaries(t *testing.T) {
	tests := []struct {
		achievement float64
		want        float64
	}{
		{0, 0},
		{9.999, 0},
		{10, 5},
		{30, 5},
		{31, 10},
		{50, 10},
		{51, 15},
		{99.999, 15},
		{100, 20},
		{150, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierPercent(tt.achievement), "achievement %.3f", tt.achievement)
	}
}

func TestCalculateOverachiever(t *testing.T) {
	// Quota 4 Cr with an 8 L variable-pay pool, 4.5 Cr closed won
	rep := sales.SalesRep{ID: "george", Quota: 4 * sales.Crore, VariablePayPool: 8 * sales.Lakh}
	deals := []sales.Deal{
		{ID: "a", AssignedRepID: "george", Stage: sales.StageClosedWon, Value: 3 * sales.Crore},
		{ID: "b", AssignedRepID: "george", Stage: sales.StageClosedWon, Value: 1.5 * sales.Crore},
		{ID: "c", AssignedRepID: "other", Stage: sales.StageClosedWon, Value: 9 * sales.Crore},
		{ID: "d", AssignedRepID: "george", Stage: sales.StageNegotiation, Value: 2 * sales.Crore},
	}

	got := Calculate(rep, deals)

	assert.Equal(t, 4.5*sales.Crore, got.Revenue)
	assert.InDelta(t, 112.5, got.AchievementPct, 0.001)
	assert.Equal(t, 20.0, got.TierPercent)
	assert.Equal(t, 1.0, got.PayoutRatio)
	assert.Equal(t, 8.0*sales.Lakh, got.VariablePay)
	assert.True(t, got.IncentiveEligible)
	assert.Equal(t, 4.0*sales.Lakh, got.IncentiveAmount)
	assert.Equal(t, 12.0*sales.Lakh, got.TotalEarnings)
}

func TestCalculateMidTier(t *testing.T) {
	// 1.4 Cr of a 4 Cr quota is 35%, landing in the 10% slab
	rep := sales.SalesRep{ID: "hari", Quota: 4 * sales.Crore, VariablePayPool: 8 * sales.Lakh}
	deals := []sales.Deal{
		{ID: "a", AssignedRepID: "hari", Stage: sales.StageClosedWon, Value: 1.4 * sales.Crore},
	}

	got := Calculate(rep, deals)

	assert.InDelta(t, 35.0, got.AchievementPct, 0.001)
	assert.Equal(t, 10.0, got.TierPercent)
	assert.Equal(t, 0.5, got.PayoutRatio)
	assert.Equal(t, 4.0*sales.Lakh, got.VariablePay)
	assert.False(t, got.IncentiveEligible)
	assert.Zero(t, got.IncentiveAmount)
	assert.Equal(t, 4.0*sales.Lakh, got.TotalEarnings)
}

func TestCalculateEmptyDeals(t *testing.T) {
	rep := sales.SalesRep{ID: "george", Quota: 4 * sales.Crore, VariablePayPool: 8 * sales.Lakh}

	got := Calculate(rep, nil)

	assert.Zero(t, got.Revenue)
	assert.Zero(t, got.AchievementPct)
	assert.Zero(t, got.TierPercent)
	assert.Zero(t, got.VariablePay)
	assert.False(t, got.IncentiveEligible)
	assert.Zero(t, got.TotalEarnings)
	for _, cp := range got.PlanHealth {
		assert.False(t, cp.Achieved)
		assert.Zero(t, cp.Value)
	}
}

func TestCalculateZeroQuotaGuard(t *testing.T) {
	rep := sales.SalesRep{ID: "x", Quota: 0, VariablePayPool: 8 * sales.Lakh}
	deals := []sales.Deal{
		{ID: "a", AssignedRepID: "x", Stage: sales.StageClosedWon, Value: sales.Crore},
	}

	got := Calculate(rep, deals)

	assert.Zero(t, got.AchievementPct)
	assert.Zero(t, got.TierPercent)
}

func TestPlanHealthCheckpoints(t *testing.T) {
	rep := sales.SalesRep{ID: "george", Quota: 100, VariablePayPool: 10}
	deals := []sales.Deal{
		{ID: "a", AssignedRepID: "george", Stage: sales.StageClosedWon, Value: 8},
		{ID: "b", AssignedRepID: "george", Stage: sales.StageNegotiation, Value: 10},
		{ID: "c", AssignedRepID: "george", Stage: sales.StageProposal, Value: 35},
		{ID: "d", AssignedRepID: "george", Stage: sales.StageLead, Value: 30},
		{ID: "e", AssignedRepID: "george", Stage: sales.StageQualified, Value: 25},
	}

	got := Calculate(rep, deals).PlanHealth

	assert.Len(t, got, 4)

	// N (PO/Won): target 7.5, value 8
	assert.Equal(t, "N (PO/Won)", got[0].Label)
	assert.Equal(t, 7.5, got[0].Target)
	assert.True(t, got[0].Achieved)

	// N+1 (Neg): target 15, value 10
	assert.Equal(t, "N+1 (Neg)", got[1].Label)
	assert.False(t, got[1].Achieved)

	// N+2 (Quote): target 30, value 35
	assert.Equal(t, "N+2 (Quote)", got[2].Label)
	assert.True(t, got[2].Achieved)

	// N+3 (Lead): target 60, value 55 pools Lead and Qualified
	assert.Equal(t, "N+3 (Lead)", got[3].Label)
	assert.Equal(t, 55.0, got[3].Value)
	assert.False(t, got[3].Achieved)
}
