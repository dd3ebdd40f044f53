// Package app provides the orchestration layer for sundial.
//
// # Overview
//
// This package wires together the theme registry, user preferences, the
// sync engine, and one of the two host implementations. It is the
// composition root: every CLI entry point resolves its dependencies here
// and the domain packages never import each other's concrete types beyond
// the host contract.
//
// # Entry Points
//
//  1. Run: the interactive session. Builds the bubbletea host, registers
//     the engine's settings command, and hands the engine lifecycle hooks
//     to the UI: session start begins polling, shutdown stops it.
//  2. RunOnce: a single attended sync pass over the line-oriented host.
//     The full session lifecycle runs (start, sync, shutdown) so pending
//     settings problems are reported exactly as they would be in the TUI.
//  3. Configure: the settings menu over plain stdin/stdout.
//  4. Detect and ListThemes: read-only queries with plain output.
//
// # Host Selection
//
// The sync engine only sees the interfaces in internal/host. Run gives it
// the bubbletea session; the one-shot commands give it the clihost. Both
// persist theme choices through internal/prefs, so a theme applied by
// "sundial sync" is the theme the next TUI session starts on.
//
// # Error Handling
//
// Fatal errors (returned to main): an unresolvable home directory and a
// failed engine construction. Everything else degrades: missing preference
// and overrides files mean defaults, malformed user theme files are skipped
// with a log line, and detection failures surface as "undetermined" rather
// than errors.
package app
