package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmreid/sundial/internal/appearance"
	"github.com/colmreid/sundial/internal/host"
	"github.com/colmreid/sundial/internal/theme"
)

// initFeedViewport initializes the activity feed viewport.
func (m *Model) initFeedViewport() {
	m.feedViewport = viewport.New(0, 0)
	m.feedViewport.Style = lipgloss.NewStyle()
}

// resizeFeedViewport fits the viewport into whatever the header, status
// pane, and footer leave over.
func (m *Model) resizeFeedViewport() {
	m.feedViewport.Width = max(10, m.width-4)
	m.feedViewport.Height = max(3, m.height-11)
}

// refreshFeed re-renders the feed pane content.
func (m *Model) refreshFeed() {
	if m.feed == nil || !m.ready {
		return
	}
	m.feedViewport.SetContent(m.renderFeedContent())
	if m.feedFollow {
		m.feedViewport.GotoBottom()
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFeed())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the one-line title bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	return " " + styles.Title.Render("sundial") + "  " +
		styles.MutedText.Render("OS appearance sync")
}

// renderStatus renders the sync status pane.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	label := styles.MutedText.Width(14)

	appearanceValue := styles.Text.Render(m.snapshot.Appearance.String())
	if m.snapshot.Appearance == appearance.Undetermined {
		appearanceValue = styles.MutedText.Render(m.snapshot.Appearance.String())
	}

	active := m.snapshot.ActiveTheme
	if active == "" {
		active = m.theme.Name
	}

	auto := styles.MutedText.Render("off")
	if m.snapshot.AutoSync {
		auto = styles.SuccessText.Render(fmt.Sprintf("on, every %s", m.snapshot.Interval))
	}

	last := sinceLabel(m.snapshot.LastSync, time.Now())
	lastValue := styles.MutedText.Render(last)
	switch {
	case m.snapshot.LastError != nil:
		lastValue = styles.DangerText.Render(fmt.Sprintf("%s (%v)", last, m.snapshot.LastError))
	case m.snapshot.LastResult != "":
		lastValue = styles.Text.Render(last) +
			styles.MutedText.Render(fmt.Sprintf(" (%s)", m.snapshot.LastResult))
	}

	var b strings.Builder
	b.WriteString(label.Render("OS appearance"))
	b.WriteString(appearanceValue)
	b.WriteString("\n")
	b.WriteString(label.Render("Active theme"))
	b.WriteString(styles.Text.Render(active))
	b.WriteString("\n")
	b.WriteString(label.Render("Auto-sync"))
	b.WriteString(auto)
	b.WriteString("\n")
	b.WriteString(label.Render("Last sync"))
	b.WriteString(lastValue)

	return styles.Pane.Width(max(20, m.width-2)).Render(b.String())
}

// renderFeed renders the activity pane.
func (m Model) renderFeed() string {
	styles := m.theme.Styles()
	content := styles.AccentText.Render("Activity") + "\n" + m.feedViewport.View()
	return styles.Pane.Width(max(20, m.width-2)).Render(content)
}

// renderFeedContent renders the feed entries as viewport content.
func (m Model) renderFeedContent() string {
	styles := m.theme.Styles()
	entries := m.feed.Entries()
	if len(entries) == 0 {
		return styles.MutedText.Render("No activity yet.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.MutedText.Render(e.Time.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(levelStyle(styles, e.Level).Render(e.Message))
	}
	return b.String()
}

// renderFooter renders the key hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, 5)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	return styles.Footer.Render(strings.Join(parts, "   "))
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Session",
			items: []helpItem{
				{"t", "Cycle theme"},
				{"s", "Sync settings"},
				{"r", "Sync now"},
			},
		},
		{
			title: "Activity",
			items: []helpItem{
				{"j/k", "Scroll down/up"},
				{"g/G", "Go to top/bottom"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(10)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	box := styles.PromptBox.Width(34).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func levelStyle(s theme.Styles, l host.Level) lipgloss.Style {
	switch l {
	case host.LevelWarn:
		return s.WarningText
	case host.LevelError:
		return s.DangerText
	default:
		return s.Text
	}
}

// sinceLabel formats how long ago t was relative to now.
func sinceLabel(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < 2*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
