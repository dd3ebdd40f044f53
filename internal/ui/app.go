package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colmreid/sundial/internal/feed"
	"github.com/colmreid/sundial/internal/state"
	"github.com/colmreid/sundial/internal/theme"
)

// Hooks are the engine lifecycle callbacks the UI drives. OnStart runs once
// the program is up, OnStop after it exits, and SyncNow on demand.
type Hooks struct {
	OnStart func(context.Context)
	OnStop  func()
	SyncNow func(context.Context)
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Session      *Session
	Store        *state.Store
	Feed         *feed.Feed
	ThemeName    string
	RefreshEvery time.Duration
	Hooks        Hooks
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	session      *Session
	store        *state.Store
	feed         *feed.Feed
	hooks        Hooks
	refreshEvery time.Duration

	// UI state
	keys   keyMap
	theme  theme.Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Feed pane
	feedViewport viewport.Model
	feedFollow   bool

	// Overlays
	showHelp bool
	prompt   *promptState

	// One contributed command runs at a time.
	commandRunning bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refreshEvery := opts.RefreshEvery
	if refreshEvery == 0 {
		refreshEvery = time.Second
	}

	current := startTheme(opts.Session, opts.ThemeName)

	return Model{
		ctx:          ctx,
		session:      opts.Session,
		store:        opts.Store,
		feed:         opts.Feed,
		hooks:        opts.Hooks,
		refreshEvery: refreshEvery,
		keys:         DefaultKeyMap(),
		theme:        current,
		feedFollow:   true,
	}
}

// startTheme resolves the starting theme, falling back to the stock dark
// theme when the name is unknown or there is no session.
func startTheme(s *Session, name string) theme.Theme {
	if s != nil {
		if t, ok := s.registry.Get(name); ok {
			return t
		}
	}
	t, _ := theme.NewRegistry().Get("dark")
	return t
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.refreshEvery),
	}
	if m.hooks.OnStart != nil {
		start := m.hooks.OnStart
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			start(ctx)
			return engineReadyMsg{}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initFeedViewport()
		}
		m.ready = true
		m.resizeFeedViewport()
		m.refresh()
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd(m.refreshEvery)

	case engineReadyMsg:
		m.refresh()
		return m, nil

	case themeChangedMsg:
		m.theme = msg.theme
		m.refresh()
		return m, nil

	case feedChangedMsg:
		m.refreshFeed()
		return m, nil

	case promptMsg:
		if m.prompt != nil {
			// One prompt at a time; answer the newcomer as dismissed.
			msg.req.reply <- promptReply{}
			return m, nil
		}
		ps := newPromptState(msg.req)
		m.prompt = &ps
		return m, nil

	case commandDoneMsg:
		m.commandRunning = false
		m.refresh()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.prompt != nil {
		return m.renderPrompt()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		return m.runCommand(0)

	case key.Matches(msg, m.keys.SyncNow):
		if m.hooks.SyncNow == nil {
			return m, nil
		}
		syncNow := m.hooks.SyncNow
		ctx := m.ctx
		return m, func() tea.Msg {
			syncNow(ctx)
			return commandDoneMsg{}
		}

	case key.Matches(msg, m.keys.Down):
		m.feedViewport.ScrollDown(1)
		m.feedFollow = m.feedViewport.AtBottom()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.feedViewport.ScrollUp(1)
		m.feedFollow = false
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.feedViewport.GotoTop()
		m.feedFollow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.feedViewport.GotoBottom()
		m.feedFollow = true
		return m, nil
	}

	return m, nil
}

// cycleTheme switches to the next theme in the registry. The switch happens
// directly on the model; the session is updated without a round trip
// through the program.
func (m *Model) cycleTheme() {
	if m.session == nil {
		return
	}
	next := m.session.registry.Next(m.theme.Name)
	if err := m.session.apply(next, false); err != nil {
		return
	}
	if t, ok := m.session.registry.Get(next); ok {
		m.theme = t
	}
	m.refresh()
}

// runCommand starts the i-th contributed command in the background.
func (m Model) runCommand(i int) (tea.Model, tea.Cmd) {
	if m.session == nil || m.commandRunning {
		return m, nil
	}
	c, ok := m.session.command(i)
	if !ok {
		return m, nil
	}
	m.commandRunning = true
	ctx := m.ctx
	return m, func() tea.Msg {
		c.Run(ctx)
		return commandDoneMsg{}
	}
}

// refresh pulls the latest status snapshot and feed content.
func (m *Model) refresh() {
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
		m.lastUpdated = time.Now()
	}
	m.refreshFeed()
}

// Messages

type tickMsg time.Time

type themeChangedMsg struct{ theme theme.Theme }

type feedChangedMsg struct{}

type promptMsg struct{ req promptRequest }

type commandDoneMsg struct{}

type engineReadyMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if opts.Session != nil {
		opts.Session.attach(p.Send)
	}
	_, err := p.Run()
	if opts.Hooks.OnStop != nil {
		opts.Hooks.OnStop()
	}
	return err
}
