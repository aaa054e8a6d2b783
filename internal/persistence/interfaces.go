package persistence

//go:generate mockgen -source=interfaces.go -destination=../mocks/persistence_mocks.go -package=mocks

import (
	"context"

	"salesflow-backend/internal/sales"
)

// Collaborator confirms writes that the store has already applied locally.
// Implementations must be safe for use from a single background worker;
// the store never issues two calls concurrently.
type Collaborator interface {
	// FetchReps returns all sales reps and teams
	FetchReps(ctx context.Context) ([]sales.SalesRep, error)

	// FetchDeals returns all deals ordered by last update, newest first
	FetchDeals(ctx context.Context) ([]sales.Deal, error)

	// CreateDeal persists a new deal and returns it with the
	// authoritative id and timestamp assigned by the backend
	CreateDeal(ctx context.Context, deal sales.Deal) (sales.Deal, error)

	// UpdateDeal persists the full state of an existing deal
	UpdateDeal(ctx context.Context, deal sales.Deal) error

	// DeleteDeal removes a deal
	DeleteDeal(ctx context.Context, id string) error

	// UpdateRepQuota persists a quota change for a rep
	UpdateRepQuota(ctx context.Context, repID string, quota float64) error
}

// Notifier delivers change signals from the backend. Subscribers treat a
// signal as "the deal set changed" and re-fetch wholesale.
type Notifier interface {
	// Subscribe invokes onChange for every change signal until the
	// returned cancel function is called or ctx is done
	Subscribe(ctx context.Context, onChange func()) (cancel func(), err error)
}
