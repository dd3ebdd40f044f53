// Package config loads and saves the appearance sync settings.
//
// # Overview
//
// Sundial keeps its sync settings in a single JSON overrides file,
// ~/.config/sundial/sync.json by default. The file is sparse: it holds only
// the fields the user has changed, and it disappears entirely when
// everything is back at the defaults. A fresh install therefore has no
// config file at all and behaves exactly like the defaults describe.
//
// # Settings
//
//   - darkTheme (string): theme applied when the OS reports dark mode.
//     Default "dark".
//   - lightTheme (string): theme applied when the OS reports light mode.
//     Default "light".
//   - pollMs (number): milliseconds between appearance checks. Default
//     2000, floored at 500.
//
// # Merge Behavior
//
// Load never fails hard. Each field is merged independently and applies
// only when it is well formed: theme names must be strings that are
// non-empty after trimming, and the interval must be a number (rounded,
// then clamped to the floor). A malformed field silently keeps its default.
// A file that is missing yields defaults silently; a file that exists but
// is not a JSON object yields defaults plus an error the caller reports as
// a warning.
//
// # Save Behavior
//
// Save diffs the given Config against the defaults and writes only the
// difference, pretty-printed with a trailing newline. An empty diff removes
// the file instead (removal of an absent file is fine). The returned
// SaveResult says whether a file was written and how many overrides it
// carries, which the settings menu reports back to the user.
package config
