package store

import (
	"time"

	"github.com/google/uuid"
)

// maxNotices caps how many rollback notices are retained
const maxNotices = 20

// Notice is a user-facing record of a mutation that could not be
// confirmed and was rolled back
type Notice struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// noticeLog is a bounded list of notices, newest first. Access is guarded
// by the owning store's lock.
type noticeLog struct {
	entries []Notice
}

func (n *noticeLog) add(at time.Time, op, message string) {
	notice := Notice{
		ID:        uuid.NewString(),
		Op:        op,
		Message:   message,
		CreatedAt: at,
	}
	n.entries = append([]Notice{notice}, n.entries...)
	if len(n.entries) > maxNotices {
		n.entries = n.entries[:maxNotices]
	}
}

func (n *noticeLog) list() []Notice {
	out := make([]Notice, len(n.entries))
	copy(out, n.entries)
	return out
}

// Notices returns the retained rollback notices, newest first
func (s *Store) Notices() []Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notices.list()
}

// ClearNotices drops all retained notices
func (s *Store) ClearNotices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices.entries = nil
}
