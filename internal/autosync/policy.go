package autosync

import (
	"fmt"

	"github.com/colmreid/sundial/internal/config"
	"github.com/colmreid/sundial/internal/host"
)

// SyncAllowed reports whether automatic theme switching may run. Sync stays
// off unless the user is on the stock dark/light pair or has pointed the
// settings at other themes on purpose, so a hand-picked theme is never
// overwritten by surprise.
func (c *Controller) SyncAllowed() bool {
	if !c.host.Interactive() || len(c.host.Names()) == 0 {
		return false
	}

	cfg := c.configSnapshot()
	if cfg.DarkTheme != config.DefaultDarkTheme || cfg.LightTheme != config.DefaultLightTheme {
		return true
	}

	active := c.host.Active()
	return active == config.DefaultDarkTheme || active == config.DefaultLightTheme
}

// resolveTarget maps a configured theme to one the host can actually apply.
// An unknown configured name warns once per pair and falls back to the stock
// theme for that appearance; when even the fallback is unknown the requested
// name comes back unchanged and the apply failure stays visible.
func (c *Controller) resolveTarget(requested, fallback string) string {
	if c.themeKnown(requested) {
		return requested
	}

	c.notifyOnce(host.LevelWarn, "resolve:"+requested+"->"+fallback,
		fmt.Sprintf("theme %q is not available, using %q", requested, fallback))

	if c.themeKnown(fallback) {
		return fallback
	}
	return requested
}

func (c *Controller) themeKnown(name string) bool {
	for _, known := range c.host.Names() {
		if known == name {
			return true
		}
	}
	return false
}
