package persistence

import (
	"context"
	"sync"
	"time"

	"salesflow-backend/internal/errors"
	"salesflow-backend/internal/sales"

	"github.com/google/uuid"
)

// Memory is a collaborator backed by the seed dataset. It stands in when
// no database is configured, so the service still serves the full demo
// pipeline and every write confirms immediately.
type Memory struct {
	mu    sync.Mutex
	reps  []sales.SalesRep
	deals []sales.Deal
}

var _ Collaborator = (*Memory)(nil)

// NewMemory creates a seed-backed collaborator
func NewMemory() *Memory {
	return &Memory{
		reps:  sales.SeedReps(),
		deals: sales.SeedDeals(),
	}
}

// FetchReps returns all sales reps and teams
func (m *Memory) FetchReps(ctx context.Context) ([]sales.SalesRep, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sales.CloneReps(m.reps), nil
}

// FetchDeals returns all deals ordered by last update, newest first
func (m *Memory) FetchDeals(ctx context.Context) ([]sales.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deals := sales.CloneDeals(m.deals)
	for i := 0; i < len(deals); i++ {
		for j := i + 1; j < len(deals); j++ {
			if deals[j].LastUpdated.After(deals[i].LastUpdated) {
				deals[i], deals[j] = deals[j], deals[i]
			}
		}
	}
	return deals, nil
}

// CreateDeal stores the deal with a fresh id and timestamp
func (m *Memory) CreateDeal(ctx context.Context, deal sales.Deal) (sales.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deal.ID = uuid.NewString()
	deal.LastUpdated = time.Now().UTC()
	m.deals = append(m.deals, deal.Clone())
	return deal, nil
}

// UpdateDeal replaces the stored state of an existing deal
func (m *Memory) UpdateDeal(ctx context.Context, deal sales.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.deals {
		if d.ID == deal.ID {
			m.deals[i] = deal.Clone()
			return nil
		}
	}
	return errors.NewRemoteError("update deal", errors.ErrDealNotFound)
}

// DeleteDeal removes a deal
func (m *Memory) DeleteDeal(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.deals {
		if d.ID == id {
			m.deals = append(m.deals[:i], m.deals[i+1:]...)
			return nil
		}
	}
	return errors.NewRemoteError("delete deal", errors.ErrDealNotFound)
}

// UpdateRepQuota changes a rep's quota
func (m *Memory) UpdateRepQuota(ctx context.Context, repID string, quota float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.reps {
		if r.ID == repID {
			m.reps[i].Quota = quota
			return nil
		}
	}
	return errors.NewRemoteError("update quota", errors.ErrRepNotFound)
}
