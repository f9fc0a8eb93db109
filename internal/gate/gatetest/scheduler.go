// Package gatetest provides a hand-driven scheduler for gate tests.
package gatetest

import (
	"sync"
	"time"

	"github.com/theirongolddev/taka/internal/gate"
)

// Scheduler queues calls until Fire is invoked.
type Scheduler struct {
	mu      sync.Mutex
	pending []*timer
}

var _ gate.Scheduler = (*Scheduler)(nil)

type timer struct {
	s       *Scheduler
	d       time.Duration
	f       func()
	stopped bool
}

func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}

// AfterFunc implements gate.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) gate.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &timer{s: s, d: d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Pending returns the number of scheduled calls not yet fired or stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// LastDelay returns the delay of the most recent pending call.
func (s *Scheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0
	}
	return s.pending[len(s.pending)-1].d
}

// Fire runs every pending call and returns how many ran.
func (s *Scheduler) Fire() int {
	s.mu.Lock()
	due := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}
