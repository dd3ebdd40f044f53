// Package appearance detects the operating system's light/dark preference.
//
// # Overview
//
// Sundial needs one bit from the desktop environment: is the user in dark
// mode? This package answers with a tri-state Appearance (Dark, Light,
// Undetermined) by shelling out to the platform's own settings tooling. No
// cgo, no OS frameworks, just short external queries with captured output.
//
// # Platform Queries
//
//   - macOS: `defaults read -g AppleInterfaceStyle`. The key holds "Dark"
//     while dark mode is on and does not exist otherwise, so a "does not
//     exist" failure is itself a positive light-mode signal.
//   - Linux (GNOME): `gsettings get org.gnome.desktop.interface
//     color-scheme`, falling back to the gtk-theme name when the scheme is
//     unset or reports "default". A theme name containing "dark" or "light"
//     decides; anything else is Undetermined.
//   - Windows: `reg query ...\Themes\Personalize /v AppsUseLightTheme`,
//     parsing the REG_DWORD hex value out of the command's text output.
//     0x0 means dark. Text parsing keeps the package buildable and testable
//     on every platform.
//   - Anything else: Undetermined without running a command.
//
// # Failure Behavior
//
// Detect never returns an error. Missing binaries, timeouts, unparseable
// output, and nonzero exits all collapse to Undetermined, which callers
// treat as "leave the theme alone". Each query is bounded by the detector's
// Timeout (1200ms by default) so a hung settings daemon cannot stall the
// caller's poll loop.
//
// Command failures are inspected through the structured Outcome type
// (captured stdout, stderr, and error) rather than by matching formatted
// error strings.
//
// # Testing
//
// The Detector's OS and Run fields exist for tests: fix OS to a platform and
// substitute a Runner that replays canned Outcomes to exercise every mapping
// without touching the real system.
package appearance
