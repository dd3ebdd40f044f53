// Package host defines the surface the sync engine consumes from the tool
// embedding it. The engine imports only this package from the host side;
// hosts import the engine, never the other way around.
package host

import "context"

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the lowercase level name used in logs and feeds.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Themes exposes the host's theme registry.
type Themes interface {
	// Active returns the current theme name, or "" when none is set yet.
	Active() string
	// Names lists the themes the host can apply.
	Names() []string
	// Apply switches the host to the named theme.
	Apply(name string) error
}

// Notifier delivers user-facing notices.
type Notifier interface {
	Notify(level Level, message string)
}

// InputPrompt describes a free-text prompt.
type InputPrompt struct {
	Title       string
	Prompt      string
	Placeholder string
}

// ChoicePrompt describes a pick-one prompt.
type ChoicePrompt struct {
	Title   string
	Options []string
}

// Prompter runs interactive prompts inside the host's session. ok is false
// when the user dismissed the prompt without answering.
type Prompter interface {
	Input(ctx context.Context, p InputPrompt) (value string, ok bool, err error)
	Choose(ctx context.Context, p ChoicePrompt) (index int, ok bool, err error)
}

// Host is everything the sync engine needs from the tool embedding it.
type Host interface {
	Themes
	Prompter
	Notifier

	// Interactive reports whether a user-facing session with theme
	// management is attached.
	Interactive() bool
}

// Command is an interactive command a component contributes to its host.
type Command struct {
	Name string
	Run  func(ctx context.Context)
}

// Registrar accepts contributed commands.
type Registrar interface {
	Register(Command)
}
