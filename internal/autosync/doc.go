// Package autosync keeps the host tool's color theme in step with the
// operating system's light and dark appearance.
//
// # Overview
//
// A Controller ties the feature together. It loads the override settings
// and asks an appearance.Detector which mode the OS is in, then tells the
// host to switch themes through the surface defined in the host package.
// The host owns the terminal and the theme registry; this package only
// decides when a switch should happen and which theme to pick.
//
// # Policy
//
// Automatic switching is conservative. A pass runs only when the session
// is interactive and the host reports at least one theme. With stock
// settings the active theme must currently be one of the stock dark or
// light themes; a hand-picked theme blocks syncing so the user's explicit
// choice is never overwritten. Once the user configures their own dark or
// light theme the gate opens regardless of what is active, since the
// configuration itself states the intent.
//
// The gate is evaluated on every pass, not once at startup. Switching to
// a custom theme mid-session therefore stops the engine at the next tick
// without any coordination, and switching back to a stock theme revives
// it the same way.
//
// # Sync Passes
//
// SyncOnce is the unit of work. It detects the appearance and resolves
// the configured theme for that mode, then applies it when it differs
// from what the host is showing. An undetermined appearance changes
// nothing. When the configured theme is unknown to the host the pass
// falls back to the stock theme for that mode, and when an apply fails it
// retries once with the stock theme. Passes can overlap with timer ticks
// and menu saves; a compare-and-swap guard drops the extra pass instead
// of queueing it.
//
// # Notices
//
// Recurring passes would repeat the same complaint every tick, so every
// notice is keyed and emitted once per session. A blocked pass tells a
// theme-capable host once why nothing is happening; passing the gate
// re-arms that notice. A successful apply clears the keys for that
// theme, which lets a real regression warn again later.
//
// # Polling
//
// There is no portable change notification for the OS appearance, so the
// engine polls. Restart replaces the poll timer after settings changes
// and Stop ends it at shutdown. The timer goroutine holds no state; each
// tick just calls SyncOnce.
//
// # Settings Menu
//
// RunMenu edits a draft of the settings through the host's prompts. It
// needs an interactive host with themes and declines with a warning
// otherwise. The draft becomes live and is persisted only when the user
// picks Save.
// Persisting can fail after the draft is committed; the session keeps the
// new settings in that case and the user sees the write error.
//
// # Hot Reload
//
// A watcher on the config directory reloads the override file when it
// changes on disk, so edits made in another editor or session take
// effect without a restart. The reload compares the parsed settings to
// the current ones and does nothing when they match, which also swallows
// the event fired by our own save.
package autosync
