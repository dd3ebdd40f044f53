package state

import (
	"sync"
	"time"

	"github.com/colmreid/sundial/internal/appearance"
)

// Snapshot is the sync status the UI renders from.
type Snapshot struct {
	Appearance  appearance.Appearance
	ActiveTheme string

	AutoSync bool
	Interval time.Duration

	LastSync   time.Time
	LastResult string
	LastError  error
}

// Store coordinates concurrent updates to the snapshot. The sync engine and
// the host session write from their own goroutines; the UI reads on its
// refresh tick.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// RecordPass records the outcome of one sync pass.
func (s *Store) RecordPass(mode appearance.Appearance, result string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Appearance = mode
	s.snapshot.LastSync = time.Now()
	s.snapshot.LastResult = result
	s.snapshot.LastError = err
}

// SetSchedule records whether the poll timer is running and at what cadence.
func (s *Store) SetSchedule(enabled bool, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.AutoSync = enabled
	s.snapshot.Interval = interval
}

// SetActiveTheme records the theme the host is currently showing.
func (s *Store) SetActiveTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.ActiveTheme = name
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
