package autosync

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colmreid/sundial/internal/config"
	"github.com/colmreid/sundial/internal/host"
)

// RunMenu drives the interactive settings menu. Edits accumulate on a draft
// and take effect only when the user picks Save; Cancel or dismissing the
// menu discards everything.
func (c *Controller) RunMenu(ctx context.Context) {
	if !c.host.Interactive() || len(c.host.Names()) == 0 {
		c.host.Notify(host.LevelWarn, "sync settings need an interactive session with theme support")
		return
	}

	draft := c.configSnapshot()

	for {
		choice, ok, err := c.host.Choose(ctx, host.ChoicePrompt{
			Title: "Appearance sync settings",
			Options: []string{
				fmt.Sprintf("Dark theme: %s", draft.DarkTheme),
				fmt.Sprintf("Light theme: %s", draft.LightTheme),
				fmt.Sprintf("Poll interval: %dms", draft.PollInterval.Milliseconds()),
				"Save",
				"Cancel",
			},
		})
		if err != nil || !ok {
			return
		}

		switch choice {
		case 0:
			if v, ok := c.promptTheme(ctx, "Dark theme", "Applied when the OS turns dark", draft.DarkTheme); ok {
				draft.DarkTheme = v
			}
		case 1:
			if v, ok := c.promptTheme(ctx, "Light theme", "Applied when the OS turns light", draft.LightTheme); ok {
				draft.LightTheme = v
			}
		case 2:
			if v, ok := c.promptInterval(ctx, draft.PollInterval); ok {
				draft.PollInterval = v
			}
		case 3:
			c.save(ctx, draft)
			return
		default:
			return
		}
	}
}

// promptTheme asks for a theme name. Blank input and dismissal keep the
// current value.
func (c *Controller) promptTheme(ctx context.Context, title, prompt, current string) (string, bool) {
	value, ok, err := c.host.Input(ctx, host.InputPrompt{
		Title:       title,
		Prompt:      prompt,
		Placeholder: current,
	})
	if err != nil || !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// promptInterval asks for a poll interval until the input is valid, blank,
// or dismissed. Blank and dismissal keep the current value.
func (c *Controller) promptInterval(ctx context.Context, current time.Duration) (time.Duration, bool) {
	minMs := config.MinPollInterval.Milliseconds()
	for {
		value, ok, err := c.host.Input(ctx, host.InputPrompt{
			Title:       "Poll interval",
			Prompt:      fmt.Sprintf("Milliseconds between appearance checks (at least %d)", minMs),
			Placeholder: strconv.FormatInt(current.Milliseconds(), 10),
		})
		if err != nil || !ok {
			return 0, false
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false
		}

		ms, convErr := strconv.ParseInt(trimmed, 10, 64)
		if convErr != nil || ms < minMs {
			c.host.Notify(host.LevelWarn,
				fmt.Sprintf("enter a whole number of milliseconds, %d or higher", minMs))
			continue
		}
		return time.Duration(ms) * time.Millisecond, true
	}
}

// save commits the draft, persists it, and brings the running state in line
// with the new settings.
func (c *Controller) save(ctx context.Context, draft config.Config) {
	c.mu.Lock()
	c.cfg = draft
	c.mu.Unlock()

	res, err := config.Save(c.cfgPath, draft)
	if err != nil {
		c.host.Notify(host.LevelError, fmt.Sprintf("could not save sync settings: %v", err))
		return
	}

	c.SyncOnce(ctx)
	c.Restart(ctx)

	if res.WroteFile {
		c.host.Notify(host.LevelInfo, fmt.Sprintf("saved %d override(s)", res.Overrides))
	} else {
		c.host.Notify(host.LevelInfo, "defaults restored, override file removed")
	}
}
