// Package theme holds the theme registry and the Lipgloss styling derived
// from it.
//
// # Overview
//
// A Theme is a small named palette; Styles turns one into the concrete
// Lipgloss styles the UI renders with. The Registry keeps themes in a stable
// order so cycling through them is deterministic.
//
// Four themes ship built in: the stock pair "dark" and "light" that the sync
// defaults point at, plus "nightfox" and "dayfox" as richer variants. Users
// can add their own as TOML files under ~/.config/sundial/themes; LoadDir
// merges them in at startup, inheriting unset colors from the stock theme of
// matching polarity.
//
// # Theme Files
//
// Example themes/ember.toml:
//
//	name = "ember"
//	dark = true
//
//	[colors]
//	background = "#1f1410"
//	text = "#f0e4dc"
//	accent = "#ff9466"
//
// A file without a name is rejected; other problems in individual files are
// reported but do not block startup.
package theme
