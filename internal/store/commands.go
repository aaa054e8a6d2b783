package store

import (
	"context"
	"strings"
	"time"

	"salesflow-backend/internal/errors"
	"salesflow-backend/internal/sales"

	"github.com/google/uuid"
)

// Directions for MoveStage
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// localIDPrefix marks a deal that only exists locally until the
// collaborator confirms its creation
const localIDPrefix = "local-"

// IsLocalID reports whether an id is a temporary local one
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}

// command is one optimistic mutation. The apply step has already run by
// the time the command is queued; remote confirms it, and exactly one of
// commit or rollback runs afterwards. Both run with the state lock held.
type command struct {
	op       string
	notice   string
	remote   func(ctx context.Context) error
	commit   func()
	rollback func()
}

// run queues the confirmation for a locally-applied mutation
func (s *Store) run(cmd command) error {
	return s.enqueue(func() {
		ctx, cancel := remoteCtx()
		defer cancel()

		err := cmd.remote(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.logger.WithError(err).WithField("op", cmd.op).Warn("Confirmation failed, rolling back")
			if cmd.rollback != nil {
				cmd.rollback()
			}
			s.notices.add(s.clock(), cmd.op, cmd.notice)
			return
		}
		if cmd.commit != nil {
			cmd.commit()
		}
	})
}

// CreateDeal adds a deal under a temporary local id and returns it
// immediately. When the collaborator confirms, the server id and timestamp
// replace the temporary ones; any fields edited in the meantime are kept.
// If confirmation fails the deal disappears again. A zero stageAt stamps
// the stage history with the current time.
func (s *Store) CreateDeal(ctx context.Context, deal sales.Deal, stageAt time.Time) (sales.Deal, error) {
	now := s.clock()
	if stageAt.IsZero() {
		stageAt = now
	}

	deal.ID = localIDPrefix + uuid.NewString()
	deal.StageHistory = nil
	deal.SetStage(deal.Stage, stageAt)
	deal.LastUpdated = now

	s.mu.Lock()
	s.deals = append([]sales.Deal{deal.Clone()}, s.deals...)
	s.mu.Unlock()

	tempID := deal.ID
	var confirmed sales.Deal
	err := s.run(command{
		op:     "create deal",
		notice: "Could not save the new deal " + deal.Title,
		remote: func(ctx context.Context) error {
			var err error
			confirmed, err = s.collab.CreateDeal(ctx, deal)
			return err
		},
		commit: func() {
			for i := range s.deals {
				if s.deals[i].ID == tempID {
					s.deals[i].ID = confirmed.ID
					s.deals[i].LastUpdated = confirmed.LastUpdated
					return
				}
			}
		},
		rollback: func() {
			s.removeDealLocked(tempID)
		},
	})
	if err != nil {
		s.mu.Lock()
		s.removeDealLocked(tempID)
		s.mu.Unlock()
		return sales.Deal{}, err
	}
	return deal, nil
}

// UpdateDeal applies a full edit to an existing deal. The stored stage
// history is preserved and extended; a non-zero stageAt overrides the
// timestamp recorded for the resulting stage, otherwise a stage change is
// stamped with the current time.
func (s *Store) UpdateDeal(ctx context.Context, incoming sales.Deal, stageAt time.Time) (sales.Deal, error) {
	now := s.clock()

	s.mu.Lock()
	idx := s.indexOfLocked(incoming.ID)
	if idx < 0 {
		s.mu.Unlock()
		return sales.Deal{}, errors.ErrDealNotFound
	}
	snapshot := s.deals[idx].Clone()

	updated := snapshot.Clone()
	updated.CustomerName = incoming.CustomerName
	updated.Title = incoming.Title
	updated.Value = incoming.Value
	updated.Category = incoming.Category
	updated.BusinessType = incoming.BusinessType
	updated.AssignedRepID = incoming.AssignedRepID
	updated.CloseDate = incoming.CloseDate
	updated.Probability = incoming.Probability
	updated.Notes = incoming.Notes

	switch {
	case !stageAt.IsZero():
		updated.SetStage(incoming.Stage, stageAt)
	case incoming.Stage != snapshot.Stage:
		updated.SetStage(incoming.Stage, now)
	default:
		updated.Stage = incoming.Stage
	}
	updated.LastUpdated = now

	s.deals[idx] = updated.Clone()
	s.mu.Unlock()

	return s.confirmUpdate(updated, snapshot, "update deal", "Could not save changes to "+updated.Title)
}

// MoveStage moves a deal one stage forward or backward. The move is
// clamped at both ends of the pipeline; the resulting stage is always
// restamped in the history even when it did not change.
func (s *Store) MoveStage(ctx context.Context, id, direction string) (sales.Deal, error) {
	now := s.clock()

	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return sales.Deal{}, errors.ErrDealNotFound
	}
	snapshot := s.deals[idx].Clone()

	var target sales.Stage
	switch direction {
	case DirectionNext:
		target = snapshot.Stage.Next()
	case DirectionPrev:
		target = snapshot.Stage.Prev()
	default:
		s.mu.Unlock()
		return sales.Deal{}, errors.ErrInvalidDirection
	}

	updated := snapshot.Clone()
	updated.SetStage(target, now)
	s.deals[idx] = updated.Clone()
	s.mu.Unlock()

	return s.confirmUpdate(updated, snapshot, "move stage", "Could not move "+updated.Title+" to "+string(target))
}

// UpdateNotes replaces the notes on a deal
func (s *Store) UpdateNotes(ctx context.Context, id, notes string) (sales.Deal, error) {
	now := s.clock()

	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return sales.Deal{}, errors.ErrDealNotFound
	}
	snapshot := s.deals[idx].Clone()

	updated := snapshot.Clone()
	updated.Notes = notes
	updated.LastUpdated = now
	s.deals[idx] = updated.Clone()
	s.mu.Unlock()

	return s.confirmUpdate(updated, snapshot, "update notes", "Could not save notes for "+updated.Title)
}

// confirmUpdate queues the remote confirmation of an already-applied deal
// update and arranges rollback to the snapshot
func (s *Store) confirmUpdate(updated, snapshot sales.Deal, op, notice string) (sales.Deal, error) {
	err := s.run(command{
		op:     op,
		notice: notice,
		remote: func(ctx context.Context) error {
			return s.collab.UpdateDeal(ctx, updated)
		},
		rollback: func() {
			if idx := s.indexOfLocked(snapshot.ID); idx >= 0 {
				s.deals[idx] = snapshot.Clone()
			}
		},
	})
	if err != nil {
		s.mu.Lock()
		if idx := s.indexOfLocked(snapshot.ID); idx >= 0 {
			s.deals[idx] = snapshot.Clone()
		}
		s.mu.Unlock()
		return sales.Deal{}, err
	}
	return updated, nil
}

// DeleteDeal removes a deal locally and confirms the removal. A failed
// confirmation puts the deal back.
func (s *Store) DeleteDeal(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return errors.ErrDealNotFound
	}
	snapshot := s.deals[idx].Clone()
	s.deals = append(s.deals[:idx], s.deals[idx+1:]...)
	if s.editID == id {
		s.editID = ""
	}
	s.mu.Unlock()

	err := s.run(command{
		op:     "delete deal",
		notice: "Could not delete " + snapshot.Title,
		remote: func(ctx context.Context) error {
			return s.collab.DeleteDeal(ctx, snapshot.ID)
		},
		rollback: func() {
			if s.indexOfLocked(snapshot.ID) < 0 {
				s.deals = append(s.deals, snapshot.Clone())
			}
		},
	})
	if err != nil {
		s.mu.Lock()
		if s.indexOfLocked(snapshot.ID) < 0 {
			s.deals = append(s.deals, snapshot.Clone())
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// UpdateRepQuota changes a rep's quota. Rollback on a failed confirmation
// refetches the authoritative rep list rather than restoring the local
// snapshot, since quotas may have moved remotely in the meantime.
func (s *Store) UpdateRepQuota(ctx context.Context, repID string, quota float64) (sales.SalesRep, error) {
	if quota <= 0 {
		return sales.SalesRep{}, errors.ErrQuotaNotPositive
	}

	s.mu.Lock()
	var updated sales.SalesRep
	found := false
	snapshot := sales.CloneReps(s.reps)
	for i := range s.reps {
		if s.reps[i].ID == repID {
			s.reps[i].Quota = quota
			updated = sales.CloneReps(s.reps[i : i+1])[0]
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return sales.SalesRep{}, errors.ErrRepNotFound
	}

	// Quota rollback refetches the authoritative rep list rather than
	// restoring the local snapshot, since quotas may have moved remotely
	// in the meantime. The refetch runs on the worker, outside the lock.
	err := s.enqueue(func() {
		ctx, cancel := remoteCtx()
		defer cancel()

		remoteErr := s.collab.UpdateRepQuota(ctx, repID, quota)
		if remoteErr == nil {
			return
		}
		s.logger.WithError(remoteErr).WithField("op", "update quota").Warn("Confirmation failed, rolling back")

		reps, fetchErr := s.collab.FetchReps(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if fetchErr != nil {
			s.logger.WithError(fetchErr).Warn("Rep reconciliation failed")
			s.reps = sales.CloneReps(snapshot)
		} else {
			s.reps = reps
		}
		s.notices.add(s.clock(), "update quota", "Could not save the quota change for "+updated.Name)
	})
	if err != nil {
		s.mu.Lock()
		s.reps = sales.CloneReps(snapshot)
		s.mu.Unlock()
		return sales.SalesRep{}, err
	}
	return updated, nil
}

// indexOfLocked finds a deal's position. Callers hold s.mu.
func (s *Store) indexOfLocked(id string) int {
	for i := range s.deals {
		if s.deals[i].ID == id {
			return i
		}
	}
	return -1
}

// removeDealLocked drops a deal by id. Callers hold s.mu.
func (s *Store) removeDealLocked(id string) {
	if idx := s.indexOfLocked(id); idx >= 0 {
		s.deals = append(s.deals[:idx], s.deals[idx+1:]...)
	}
}
