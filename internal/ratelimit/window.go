// Package ratelimit throttles draft creation per client IP.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result is the outcome of one Allow check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// SlidingWindow counts events per key over a trailing window. It is
// in-memory and not shared between processes.
type SlidingWindow struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string][]time.Time
}

func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string][]time.Time),
	}
}

// Allow records one event for key if the window has room.
func (s *SlidingWindow) Allow(key string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamps := prune(s.buckets[key], now.Add(-s.window))

	if len(stamps) >= s.limit {
		s.buckets[key] = stamps
		reset := stamps[0].Add(s.window)
		return Result{
			Allowed:    false,
			Limit:      s.limit,
			ResetAt:    reset,
			RetryAfter: reset.Sub(now),
		}
	}

	stamps = append(stamps, now)
	s.buckets[key] = stamps
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(stamps),
		ResetAt:   stamps[0].Add(s.window),
	}
}

// Sweep drops keys whose events have all expired.
func (s *SlidingWindow) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.window)
	for key, stamps := range s.buckets {
		if stamps = prune(stamps, cutoff); len(stamps) == 0 {
			delete(s.buckets, key)
		} else {
			s.buckets[key] = stamps
		}
	}
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SlidingWindow) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SlidingWindow) keys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// prune drops timestamps at or before cutoff; stamps are in ascending order.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	return stamps[i:]
}
