package persistence

import (
	"context"
	"testing"

	apperrors "salesflow-backend/internal/errors"
	"salesflow-backend/internal/sales"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryServesSeedDataset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	reps, err := m.FetchReps(ctx)
	require.NoError(t, err)
	assert.Len(t, reps, 5)

	deals, err := m.FetchDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, 7)
}

func TestMemoryCreateAssignsIDAndTimestamp(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateDeal(ctx, sales.Deal{Title: "New Deal", Stage: sales.StageLead})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.LastUpdated.IsZero())

	deals, err := m.FetchDeals(ctx)
	require.NoError(t, err)
	assert.Len(t, deals, 8)
}

func TestMemoryUpdateAndDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	deals, err := m.FetchDeals(ctx)
	require.NoError(t, err)
	target := deals[0]
	target.Notes = "updated"

	require.NoError(t, m.UpdateDeal(ctx, target))
	require.NoError(t, m.DeleteDeal(ctx, target.ID))

	err = m.UpdateDeal(ctx, target)
	assert.True(t, apperrors.IsRemote(err))

	err = m.DeleteDeal(ctx, target.ID)
	assert.True(t, apperrors.IsRemote(err))
}

func TestMemoryUpdateRepQuota(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.UpdateRepQuota(ctx, "george", 5*sales.Crore))

	reps, err := m.FetchReps(ctx)
	require.NoError(t, err)
	for _, r := range reps {
		if r.ID == "george" {
			assert.Equal(t, 5.0*sales.Crore, r.Quota)
		}
	}

	err = m.UpdateRepQuota(ctx, "nobody", sales.Crore)
	assert.True(t, apperrors.IsRemote(err))
}

func TestMemoryFetchDealsReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.FetchDeals(ctx)
	require.NoError(t, err)
	first[0].Notes = "scribbled on the copy"

	second, err := m.FetchDeals(ctx)
	require.NoError(t, err)
	for _, d := range second {
		assert.NotEqual(t, "scribbled on the copy", d.Notes)
	}
}
