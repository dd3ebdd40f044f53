// Package feed keeps a bounded in-memory log of session notifications for
// the UI's activity pane.
package feed

import (
	"sync"
	"time"

	"github.com/colmreid/sundial/internal/host"
)

// Entry is one notification line.
type Entry struct {
	Time    time.Time
	Level   host.Level
	Message string
}

// Feed is a fixed-capacity ring of entries, oldest first. The zero value is
// unusable; call New.
type Feed struct {
	mu    sync.Mutex
	ring  []Entry
	idx   int
	count int
}

// New returns a feed keeping at most max entries.
func New(max int) *Feed {
	if max <= 0 {
		max = 1
	}
	return &Feed{ring: make([]Entry, max)}
}

// Append records a notification, evicting the oldest entry when full.
func (f *Feed) Append(level host.Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ring[f.idx] = Entry{Time: time.Now(), Level: level, Message: message}
	f.idx = (f.idx + 1) % len(f.ring)
	if f.count < len(f.ring) {
		f.count++
	}
}

// Entries returns a copy of the retained entries in arrival order.
func (f *Feed) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Entry, f.count)
	if f.count == len(f.ring) {
		for i := 0; i < f.count; i++ {
			out[i] = f.ring[(f.idx+i)%len(f.ring)]
		}
	} else {
		copy(out, f.ring[:f.count])
	}
	return out
}

// Len returns the number of retained entries.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}
