package store

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"salesflow-backend/internal/persistence"
)

// Feed modes
const (
	ModeOff       = "off"
	ModePush      = "push"
	ModeSimulated = "simulated"
)

// FeedConfig tunes the simulated feed
type FeedConfig struct {
	Interval     time.Duration
	TickChance   float64
	JitterPoints int
}

// DefaultFeedConfig matches the dashboard's demo drift
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Interval:     3 * time.Second,
		TickChance:   0.3,
		JitterPoints: 5,
	}
}

// Feed drives live pipeline updates. With a notifier it runs in push mode
// and refetches on every change signal; without one it simulates drift by
// nudging deal probabilities on a ticker. Either way the deal marked as
// editing is left alone.
type Feed struct {
	store    *Store
	notifier persistence.Notifier
	cfg      FeedConfig

	mu     sync.Mutex
	live   bool
	cancel func()
	rng    *rand.Rand
}

// NewFeed creates a feed for the store. notifier may be nil, which forces
// simulation mode.
func NewFeed(s *Store, notifier persistence.Notifier, cfg FeedConfig) *Feed {
	if cfg.Interval <= 0 {
		cfg = DefaultFeedConfig()
	}
	return &Feed{
		store:    s,
		notifier: notifier,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Live reports whether the feed is running
func (f *Feed) Live() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// Mode reports how updates are delivered while live
func (f *Feed) Mode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.live {
		return ModeOff
	}
	if f.notifier != nil {
		return ModePush
	}
	return ModeSimulated
}

// SetLive starts or stops the feed. Stopping cancels the subscription or
// ticker; both are idempotent.
func (f *Feed) SetLive(enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if enabled == f.live {
		return nil
	}
	if !enabled {
		if f.cancel != nil {
			f.cancel()
			f.cancel = nil
		}
		f.live = false
		return nil
	}

	if f.notifier != nil {
		ctx := context.Background()
		cancel, err := f.notifier.Subscribe(ctx, func() {
			refreshCtx, refreshCancel := remoteCtx()
			defer refreshCancel()
			if err := f.store.Refresh(refreshCtx); err != nil {
				f.store.logger.WithError(err).Warn("Live refresh failed")
			}
		})
		if err != nil {
			return err
		}
		f.cancel = cancel
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		f.cancel = cancel
		go f.simulate(ctx)
	}

	f.live = true
	return nil
}

func (f *Feed) simulate(ctx context.Context) {
	ticker := time.NewTicker(f.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.tick()
		}
	}
}

// tick performs one simulation step: with the configured probability,
// nudge one random active deal's probability by the jitter amount
func (f *Feed) tick() {
	f.mu.Lock()
	roll := f.rng.Float64()
	up := f.rng.Intn(2) == 0
	pick := f.rng.Int()
	f.mu.Unlock()

	if roll >= f.cfg.TickChance {
		return
	}

	delta := f.cfg.JitterPoints
	if !up {
		delta = -delta
	}
	f.store.nudgeRandomDeal(pick, delta)
}

// nudgeRandomDeal adjusts the probability of one active deal, chosen by
// pick modulo the candidate count. The deal under edit is never a
// candidate. Probabilities stay within [5, 95].
func (s *Store) nudgeRandomDeal(pick, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]int, 0, len(s.deals))
	for i, d := range s.deals {
		if !d.Active() || d.ID == s.editID {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return false
	}

	idx := candidates[pick%len(candidates)]
	d := &s.deals[idx]
	d.Probability = clampProbability(d.Probability + delta)
	d.LastUpdated = s.clock()
	return true
}

func clampProbability(p int) int {
	if p < 5 {
		return 5
	}
	if p > 95 {
		return 95
	}
	return p
}
