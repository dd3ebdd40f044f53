package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmreid/sundial/internal/host"
)

type promptKind int

const (
	promptInput promptKind = iota
	promptChoice
)

// promptRequest carries one prompt from an engine goroutine to the UI. The
// reply channel is buffered so the UI thread never blocks answering it.
type promptRequest struct {
	kind   promptKind
	input  host.InputPrompt
	choice host.ChoicePrompt
	reply  chan promptReply
}

type promptReply struct {
	value string
	index int
	ok    bool
}

// promptState is the open prompt overlay, if any.
type promptState struct {
	req    promptRequest
	text   textinput.Model
	cursor int
}

func newPromptState(req promptRequest) promptState {
	ps := promptState{req: req}
	if req.kind == promptInput {
		ti := textinput.New()
		ti.Placeholder = req.input.Placeholder
		ti.CharLimit = 64
		ti.Width = 32
		ti.Focus()
		ps.text = ti
	}
	return ps
}

// handlePromptKey processes keyboard input while a prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ps := m.prompt

	// ctrl+c still quits; unblock the asker first so its goroutine does not
	// hang on a reply that will never come.
	if msg.String() == "ctrl+c" {
		ps.req.reply <- promptReply{}
		m.prompt = nil
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		ps.req.reply <- promptReply{}
		m.prompt = nil
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if ps.req.kind == promptChoice {
			ps.req.reply <- promptReply{index: ps.cursor, ok: true}
		} else {
			ps.req.reply <- promptReply{value: ps.text.Value(), ok: true}
		}
		m.prompt = nil
		return m, nil
	}

	if ps.req.kind == promptChoice {
		switch {
		case key.Matches(msg, m.keys.Down):
			if ps.cursor < len(ps.req.choice.Options)-1 {
				ps.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if ps.cursor > 0 {
				ps.cursor--
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	ps.text, cmd = ps.text.Update(msg)
	return m, cmd
}

// renderPrompt renders the prompt overlay centered over the main view.
func (m Model) renderPrompt() string {
	styles := m.theme.Styles()
	ps := m.prompt

	var b strings.Builder

	switch ps.req.kind {
	case promptChoice:
		b.WriteString(styles.Title.Render(ps.req.choice.Title))
		b.WriteString("\n\n")
		for i, option := range ps.req.choice.Options {
			line := "  " + option + "  "
			if i == ps.cursor {
				line = styles.Selected.Render("> " + option + " ")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	default:
		b.WriteString(styles.Title.Render(ps.req.input.Title))
		b.WriteString("\n\n")
		if ps.req.input.Prompt != "" {
			b.WriteString(styles.Text.Render(ps.req.input.Prompt))
			b.WriteString("\n")
		}
		b.WriteString(ps.text.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter to confirm, esc to cancel"))

	box := styles.PromptBox.Render(b.String())
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
