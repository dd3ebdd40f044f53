package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colmreid/sundial/internal/appearance"
	"github.com/colmreid/sundial/internal/feed"
	"github.com/colmreid/sundial/internal/host"
	"github.com/colmreid/sundial/internal/state"
	"github.com/colmreid/sundial/internal/theme"
)

func newTestModel(t *testing.T) (Model, *Session) {
	t.Helper()
	store := &state.Store{}
	fd := feed.New(16)
	s := NewSession(theme.NewRegistry(), store, fd, filepath.Join(t.TempDir(), "prefs.toml"))
	s.SetInitialTheme("dark")
	m := New(Options{Session: s, Store: store, Feed: fd, ThemeName: "dark"})
	return resized(t, m), s
}

func resized(t *testing.T, m Model) Model {
	t.Helper()
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return mi.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	mi, cmd := m.Update(msg)
	return mi.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewLoadsAfterFirstResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q, want Loading...", got)
	}

	m = resized(t, m)
	if !strings.Contains(m.View(), "sundial") {
		t.Fatal("expected the main view after a window size message")
	}
}

func TestCycleThemeKey(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = press(t, m, keyRune('t'))

	if got := m.theme.Name; got != "light" {
		t.Fatalf("model theme = %q, want light", got)
	}
	if got := s.Active(); got != "light" {
		t.Fatalf("session theme = %q, want light", got)
	}
	if got := s.store.Snapshot().ActiveTheme; got != "light" {
		t.Fatalf("snapshot theme = %q, want light", got)
	}
}

func TestSyncNowKey(t *testing.T) {
	m, _ := newTestModel(t)
	ran := false
	m.hooks.SyncNow = func(context.Context) { ran = true }

	m, cmd := press(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatal("expected a command from the sync key")
	}

	msg := cmd()
	if !ran {
		t.Fatal("sync hook did not run")
	}
	if _, ok := msg.(commandDoneMsg); !ok {
		t.Fatalf("command returned %T, want commandDoneMsg", msg)
	}
}

func TestSettingsKeyRunsRegisteredCommand(t *testing.T) {
	m, s := newTestModel(t)
	ran := make(chan struct{}, 1)
	s.Register(host.Command{Name: "Sync settings", Run: func(context.Context) {
		ran <- struct{}{}
	}})

	m, cmd := press(t, m, keyRune('s'))
	if cmd == nil {
		t.Fatal("expected a command from the settings key")
	}
	if !m.commandRunning {
		t.Fatal("expected commandRunning while the command executes")
	}

	msg := cmd()
	select {
	case <-ran:
	default:
		t.Fatal("registered command did not run")
	}

	m, _ = press(t, m, msg)
	if m.commandRunning {
		t.Fatal("commandRunning should clear after commandDoneMsg")
	}
}

func TestSettingsKeyIgnoredWhileCommandRuns(t *testing.T) {
	m, s := newTestModel(t)
	s.Register(host.Command{Name: "Sync settings", Run: func(context.Context) {}})
	m.commandRunning = true

	_, cmd := press(t, m, keyRune('s'))
	if cmd != nil {
		t.Fatal("expected no command while one is already running")
	}
}

func TestPromptChoiceFlow(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan promptReply, 1)
	req := promptRequest{
		kind:   promptChoice,
		choice: host.ChoicePrompt{Title: "Sync settings", Options: []string{"Save", "Cancel"}},
		reply:  reply,
	}

	m, _ = press(t, m, promptMsg{req: req})
	if m.prompt == nil {
		t.Fatal("expected an open prompt")
	}
	if !strings.Contains(m.View(), "Sync settings") {
		t.Fatal("prompt view should show the title")
	}

	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompt != nil {
		t.Fatal("prompt should close on confirm")
	}
	select {
	case r := <-reply:
		if !r.ok || r.index != 1 {
			t.Fatalf("reply = %d, %v, want 1, true", r.index, r.ok)
		}
	default:
		t.Fatal("no reply was sent")
	}
}

func TestPromptInputFlow(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan promptReply, 1)
	req := promptRequest{
		kind:  promptInput,
		input: host.InputPrompt{Title: "Dark theme", Placeholder: "dark"},
		reply: reply,
	}

	m, _ = press(t, m, promptMsg{req: req})
	for _, r := range "dusk" {
		m, _ = press(t, m, keyRune(r))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case r := <-reply:
		if !r.ok || r.value != "dusk" {
			t.Fatalf("reply = %q, %v, want dusk, true", r.value, r.ok)
		}
	default:
		t.Fatal("no reply was sent")
	}
}

func TestPromptEscapeDismisses(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan promptReply, 1)
	req := promptRequest{
		kind:  promptInput,
		input: host.InputPrompt{Title: "Light theme"},
		reply: reply,
	}

	m, _ = press(t, m, promptMsg{req: req})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt != nil {
		t.Fatal("prompt should close on escape")
	}
	select {
	case r := <-reply:
		if r.ok {
			t.Fatal("dismissed prompt should reply ok=false")
		}
	default:
		t.Fatal("no reply was sent")
	}
}

func TestPromptBusyDismissesNewcomer(t *testing.T) {
	m, _ := newTestModel(t)
	first := make(chan promptReply, 1)
	second := make(chan promptReply, 1)

	m, _ = press(t, m, promptMsg{req: promptRequest{
		kind:   promptChoice,
		choice: host.ChoicePrompt{Title: "First", Options: []string{"a"}},
		reply:  first,
	}})
	m, _ = press(t, m, promptMsg{req: promptRequest{
		kind:   promptChoice,
		choice: host.ChoicePrompt{Title: "Second", Options: []string{"b"}},
		reply:  second,
	}})

	select {
	case r := <-second:
		if r.ok {
			t.Fatal("newcomer should be dismissed, not answered")
		}
	default:
		t.Fatal("newcomer prompt was left hanging")
	}

	if m.prompt == nil || m.prompt.req.choice.Title != "First" {
		t.Fatal("original prompt should stay open")
	}
	select {
	case <-first:
		t.Fatal("original prompt should not have been answered")
	default:
	}
}

func TestCtrlCDuringPromptRepliesThenQuits(t *testing.T) {
	m, _ := newTestModel(t)
	reply := make(chan promptReply, 1)
	m, _ = press(t, m, promptMsg{req: promptRequest{
		kind:  promptInput,
		input: host.InputPrompt{Title: "Dark theme"},
		reply: reply,
	}})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	select {
	case r := <-reply:
		if r.ok {
			t.Fatal("interrupted prompt should reply ok=false")
		}
	default:
		t.Fatal("prompt goroutine was left hanging on quit")
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, keyRune('?'))
	if !m.showHelp {
		t.Fatal("expected help to open")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help view should show the shortcut list")
	}

	m, _ = press(t, m, keyRune('x'))
	if m.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestFeedFollowTracksScrolling(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.feedFollow {
		t.Fatal("feed should follow by default")
	}

	m, _ = press(t, m, keyRune('k'))
	if m.feedFollow {
		t.Fatal("scrolling up should stop following")
	}

	m, _ = press(t, m, keyRune('G'))
	if !m.feedFollow {
		t.Fatal("jumping to the bottom should resume following")
	}
}

func TestViewShowsFeedAndStatus(t *testing.T) {
	m, s := newTestModel(t)
	s.store.RecordPass(appearance.Dark, "applied nightfox", nil)
	s.store.SetSchedule(true, 2*time.Second)
	s.feed.Append(host.LevelInfo, "applied theme nightfox")

	m, _ = press(t, m, tickMsg(time.Now()))
	view := m.View()

	for _, want := range []string{"dark", "applied nightfox", "on, every 2s", "applied theme nightfox"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view is missing %q", want)
		}
	}
}

func TestSinceLabel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "never"},
		{"just_now", now.Add(-time.Second), "just now"},
		{"seconds", now.Add(-30 * time.Second), "30s ago"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sinceLabel(tc.t, now); got != tc.want {
				t.Fatalf("sinceLabel = %q, want %q", got, tc.want)
			}
		})
	}
}
