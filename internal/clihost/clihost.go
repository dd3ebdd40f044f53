// Package clihost implements the host contract over a plain terminal. The
// one-shot commands (sync, configure) run the same engine the TUI embeds,
// with prompts written to stdout and answers read line by line from stdin.
package clihost

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/colmreid/sundial/internal/host"
	"github.com/colmreid/sundial/internal/prefs"
	"github.com/colmreid/sundial/internal/theme"
)

// Options configure a Host.
type Options struct {
	Registry  *theme.Registry
	PrefsPath string // empty skips preference persistence
	Active    string // theme name the session starts on
	In        io.Reader
	Out       io.Writer
	Logf      func(format string, args ...any)
}

// Host is a line-oriented host session. It answers the same contract as the
// TUI session, so the sync engine cannot tell which one it is talking to.
type Host struct {
	registry  *theme.Registry
	prefsPath string
	in        *bufio.Scanner
	out       io.Writer
	logf      func(string, ...any)

	mu     sync.Mutex
	active string
}

var _ host.Host = (*Host)(nil)

// New builds a Host. Nil readers and writers fall back to the process
// standard streams.
func New(opts Options) *Host {
	registry := opts.Registry
	if registry == nil {
		registry = theme.NewRegistry()
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}

	return &Host{
		registry:  registry,
		prefsPath: opts.PrefsPath,
		in:        bufio.NewScanner(in),
		out:       out,
		logf:      logf,
		active:    opts.Active,
	}
}

// Interactive reports true: a terminal session is driving the command.
func (h *Host) Interactive() bool { return true }

// Active returns the current theme name.
func (h *Host) Active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Names lists the themes the host can apply.
func (h *Host) Names() []string {
	return h.registry.Names()
}

// Apply records the named theme and persists it as the user preference.
// There is no screen to restyle here; the next TUI session picks it up.
func (h *Host) Apply(name string) error {
	if _, ok := h.registry.Get(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}

	h.mu.Lock()
	h.active = name
	h.mu.Unlock()

	if h.prefsPath != "" {
		_ = prefs.Save(h.prefsPath, prefs.Prefs{Theme: name})
	}
	return nil
}

// Notify writes the notice through the process logger.
func (h *Host) Notify(level host.Level, message string) {
	h.logf("%s: %s", level, message)
}

// Input prints the prompt and reads one line. EOF dismisses.
func (h *Host) Input(ctx context.Context, p host.InputPrompt) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fmt.Fprintln(h.out, p.Title)
	if p.Prompt != "" {
		fmt.Fprintln(h.out, p.Prompt)
	}
	if p.Placeholder != "" {
		fmt.Fprintf(h.out, "> [%s] ", p.Placeholder)
	} else {
		fmt.Fprint(h.out, "> ")
	}

	if !h.in.Scan() {
		fmt.Fprintln(h.out)
		return "", false, h.in.Err()
	}
	return h.in.Text(), true, nil
}

// Choose prints a numbered list and reads the pick. Blank input and EOF
// dismiss; anything else re-prompts until it parses.
func (h *Host) Choose(ctx context.Context, p host.ChoicePrompt) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	fmt.Fprintln(h.out, p.Title)
	for i, option := range p.Options {
		fmt.Fprintf(h.out, "  %d. %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(h.out, "Choose 1-%d (blank cancels): ", len(p.Options))
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			return 0, false, h.in.Err()
		}
		answer := strings.TrimSpace(h.in.Text())
		if answer == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(p.Options) {
			fmt.Fprintf(h.out, "enter a number between 1 and %d\n", len(p.Options))
			continue
		}
		return n - 1, true, nil
	}
}
