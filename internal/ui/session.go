package ui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colmreid/sundial/internal/feed"
	"github.com/colmreid/sundial/internal/host"
	"github.com/colmreid/sundial/internal/prefs"
	"github.com/colmreid/sundial/internal/state"
	"github.com/colmreid/sundial/internal/theme"
)

// Session is the host surface the sync engine talks to. Engine goroutines
// call its methods concurrently; everything that has to happen on the UI
// thread crosses over as a message through the program's Send function.
type Session struct {
	registry  *theme.Registry
	store     *state.Store
	feed      *feed.Feed
	prefsPath string

	mu       sync.Mutex
	active   string
	send     func(tea.Msg)
	commands []host.Command
}

var (
	_ host.Host      = (*Session)(nil)
	_ host.Registrar = (*Session)(nil)
)

// NewSession builds the session around the theme registry. The registry must
// be fully populated before the session starts; it is read-only afterwards.
func NewSession(registry *theme.Registry, store *state.Store, fd *feed.Feed, prefsPath string) *Session {
	return &Session{
		registry:  registry,
		store:     store,
		feed:      fd,
		prefsPath: prefsPath,
	}
}

// SetInitialTheme records the theme the session starts on without treating
// it as a user choice: nothing is persisted and no message is sent.
func (s *Session) SetInitialTheme(name string) {
	s.mu.Lock()
	s.active = name
	s.mu.Unlock()
	if s.store != nil {
		s.store.SetActiveTheme(name)
	}
}

// attach connects the session to a running program. Until this happens the
// session reports itself as non-interactive.
func (s *Session) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

// Interactive reports whether a program is attached.
func (s *Session) Interactive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send != nil
}

// Active returns the current theme name.
func (s *Session) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Names lists the themes the session can apply.
func (s *Session) Names() []string {
	return s.registry.Names()
}

// Apply switches to the named theme and tells the program to re-render.
func (s *Session) Apply(name string) error {
	return s.apply(name, true)
}

// apply performs the switch. The UI thread passes viaProgram=false because
// it adopts the theme directly; sending to the program from inside the
// update loop would wedge it.
func (s *Session) apply(name string, viaProgram bool) error {
	t, ok := s.registry.Get(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}

	s.mu.Lock()
	s.active = name
	send := s.send
	s.mu.Unlock()

	if s.store != nil {
		s.store.SetActiveTheme(name)
	}
	if s.prefsPath != "" {
		// Preference persistence is best effort, same as any other theme
		// switch in the session.
		_ = prefs.Save(s.prefsPath, prefs.Prefs{Theme: name})
	}

	if viaProgram && send != nil {
		send(themeChangedMsg{theme: t})
	}
	return nil
}

// Notify records a notice in the feed and nudges the program.
func (s *Session) Notify(level host.Level, message string) {
	if s.feed != nil {
		s.feed.Append(level, message)
	}
	s.post(feedChangedMsg{})
}

// Input asks the user for a line of text. It blocks until the user answers,
// dismisses the prompt, or ctx ends.
func (s *Session) Input(ctx context.Context, p host.InputPrompt) (string, bool, error) {
	reply := make(chan promptReply, 1)
	req := promptRequest{kind: promptInput, input: p, reply: reply}
	if !s.post(promptMsg{req: req}) {
		return "", false, fmt.Errorf("no interactive session attached")
	}

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-reply:
		return r.value, r.ok, nil
	}
}

// Choose asks the user to pick one of the prompt's options.
func (s *Session) Choose(ctx context.Context, p host.ChoicePrompt) (int, bool, error) {
	reply := make(chan promptReply, 1)
	req := promptRequest{kind: promptChoice, choice: p, reply: reply}
	if !s.post(promptMsg{req: req}) {
		return 0, false, fmt.Errorf("no interactive session attached")
	}

	select {
	case <-ctx.Done():
		return 0, false, ctx.Err()
	case r := <-reply:
		return r.index, r.ok, nil
	}
}

// Register adds a contributed command to the session.
func (s *Session) Register(cmd host.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, cmd)
}

// command returns the i-th registered command.
func (s *Session) command(i int) (host.Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.commands) {
		return host.Command{}, false
	}
	return s.commands[i], true
}

// post sends a message to the attached program. It reports false when no
// program is attached yet.
func (s *Session) post(msg tea.Msg) bool {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send == nil {
		return false
	}
	send(msg)
	return true
}
