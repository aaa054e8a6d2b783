package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"salesflow-backend/internal/errors"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/persistence"
	"salesflow-backend/internal/sales"
)

// remoteTimeout bounds each confirmation call. Remote work is detached
// from the request that issued it, so the request context is not used.
const remoteTimeout = 10 * time.Second

// taskQueueSize bounds how many unconfirmed writes may be in flight
const taskQueueSize = 64

// Store is the in-memory source of truth for the pipeline. Writes apply
// locally first and are confirmed against the collaborator by a single
// background worker, in issuance order. A failed confirmation rolls the
// local state back and records a notice; there is no automatic retry.
type Store struct {
	mu     sync.RWMutex
	reps   []sales.SalesRep
	deals  []sales.Deal
	editID string

	collab persistence.Collaborator
	logger *logger.Logger
	clock  func() time.Time

	tasks      chan func()
	pending    sync.WaitGroup
	closeMu    sync.Mutex
	closeOnce  sync.Once
	closed     bool
	workerDone chan struct{}

	// refreshSeq orders wholesale refetches so a slow fetch can never
	// overwrite the result of a newer one
	refreshSeq atomic.Uint64

	notices noticeLog
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// New creates a store bound to a collaborator and starts its sync worker
func New(collab persistence.Collaborator, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		collab:     collab,
		logger:     log,
		clock:      func() time.Time { return time.Now().UTC() },
		tasks:      make(chan func(), taskQueueSize),
		workerDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.worker()
	return s
}

func (s *Store) worker() {
	defer close(s.workerDone)
	for task := range s.tasks {
		task()
		s.pending.Done()
	}
}

// enqueue hands a confirmation task to the worker
func (s *Store) enqueue(task func()) error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return errors.ErrStoreClosed
	}
	s.pending.Add(1)
	s.tasks <- task
	return nil
}

// Wait blocks until every queued confirmation has completed. Intended for
// tests and shutdown.
func (s *Store) Wait() {
	s.pending.Wait()
}

// Close drains the confirmation queue and stops the worker
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.closeMu.Lock()
		s.closed = true
		s.closeMu.Unlock()
		s.pending.Wait()
		close(s.tasks)
		<-s.workerDone
	})
}

// Load pulls reps and deals from the collaborator. When the fetch fails
// the store falls back to the built-in seed dataset and records a notice,
// so the dashboard always has a pipeline to show.
func (s *Store) Load(ctx context.Context) error {
	reps, repsErr := s.collab.FetchReps(ctx)
	deals, dealsErr := s.collab.FetchDeals(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if repsErr != nil || dealsErr != nil {
		err := repsErr
		if err == nil {
			err = dealsErr
		}
		s.logger.WithError(err).Warn("Falling back to seed dataset")
		s.reps = sales.SeedReps()
		s.deals = sales.SeedDeals()
		s.notices.add(s.clock(), "load", "Could not reach the backend; showing demo data")
		return nil
	}

	s.reps = reps
	s.deals = deals
	return nil
}

// Refresh refetches the deal collection wholesale. Stale fetches lose:
// if another refresh started after this one, its result wins regardless
// of arrival order.
func (s *Store) Refresh(ctx context.Context) error {
	seq := s.refreshSeq.Add(1)

	deals, err := s.collab.FetchDeals(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.refreshSeq.Load() {
		return nil
	}
	s.deals = deals
	return nil
}

// Deals returns a deep copy of all deals
func (s *Store) Deals() []sales.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sales.CloneDeals(s.deals)
}

// Deal returns a copy of one deal by id
func (s *Store) Deal(id string) (sales.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return sales.Deal{}, errors.ErrDealNotFound
}

// Reps returns a copy of all sales reps
func (s *Store) Reps() []sales.SalesRep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sales.CloneReps(s.reps)
}

// Rep returns one sales rep by id
func (s *Store) Rep(id string) (sales.SalesRep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reps {
		if r.ID == id {
			reps := sales.CloneReps([]sales.SalesRep{r})
			return reps[0], nil
		}
	}
	return sales.SalesRep{}, errors.ErrRepNotFound
}

// SetEditing marks a deal as being edited. The live feed never touches
// the deal under edit. An empty id clears the mark.
func (s *Store) SetEditing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editID = id
}

// EditingID returns the id of the deal under edit, if any
func (s *Store) EditingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editID
}

// remoteCtx builds the context confirmation calls run under
func remoteCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), remoteTimeout)
}
