// Package state shares sync status between the engine and the UI.
//
// # Overview
//
// The sync engine runs on its own timer goroutine while the UI renders on
// the Bubble Tea loop. The Store sits between them: engine passes, schedule
// changes, and theme applies are recorded through typed setters, and the UI
// reads a consistent Snapshot on its refresh tick.
//
// # Concurrency Model
//
// A readers-writer lock guards one Snapshot value:
//
//   - RecordPass / SetSchedule / SetActiveTheme take the write lock
//   - Snapshot takes the read lock and returns a copy
//
// Snapshot contains only values, so the returned copy is independent; the
// UI can hold it across a frame without racing the engine.
//
// The zero Store is ready to use; Snapshot before any write returns the zero
// Snapshot, which the UI renders as "waiting for first sync".
package state
