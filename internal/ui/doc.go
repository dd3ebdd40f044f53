// Package ui implements the interactive terminal session.
//
// # Architecture
//
// The package is built on bubbletea's model/update/view loop. Model holds
// everything the view needs: the latest sync snapshot, the activity feed
// viewport, the active theme, and any overlay (help or a prompt) currently
// covering the main screen.
//
// # Session Bridge
//
// The sync engine knows nothing about bubbletea. It talks to the terminal
// through Session, which implements the host interfaces: theme application,
// notices, and prompts. Session forwards engine events into the program as
// messages via the program's Send function, so all state changes land on
// the update loop like any other message.
//
// The one sharp edge is direction. Engine goroutines may call Send freely,
// but code already running inside Update must not, because Send can block
// until the update loop drains and the loop is busy running us. Theme
// changes made from a key press therefore mutate the model directly, while
// the same operation triggered by the engine goes through a message.
//
// # Prompts
//
// Engine prompts arrive as promptMsg and render as a centered overlay. The
// reply travels back on a buffered channel carried inside the request, so
// answering never blocks the update loop. Only one prompt is shown at a
// time; a second request arriving while one is open is answered immediately
// as dismissed rather than queued, which keeps the settings flow from
// stacking stale questions after the user walks away.
package ui
