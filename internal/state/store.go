package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
)

// Snapshot represents the latest backend health available to the UI.
type Snapshot struct {
	Health              recipes.Health
	HasHealth           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive health check failures
}

// IsOffline returns true when the API has been unreachable for multiple checks.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Online reports whether the last health check succeeded.
func (s Snapshot) Online() bool {
	return s.HasHealth && s.LastError == nil
}

// Store coordinates health updates between the poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a health check result. When err is non-nil the previous
// health is kept but the error is recorded for visibility.
func (s *Store) Update(health *recipes.Health, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if health != nil {
		s.snapshot.Health = *health
		s.snapshot.HasHealth = true
	} else {
		s.snapshot.HasHealth = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
