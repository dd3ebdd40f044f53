package autosync

import (
	"context"
	"fmt"
	"strings"

	"github.com/colmreid/sundial/internal/appearance"
	"github.com/colmreid/sundial/internal/config"
	"github.com/colmreid/sundial/internal/host"
)

// Key for the once-per-session notice a blocked pass emits.
const handPickedKey = "policy:hand-picked"

// SyncOnce runs one detect-and-apply pass. Overlapping calls are dropped
// rather than queued, so a slow pass never stacks up behind timer ticks.
func (c *Controller) SyncOnce(ctx context.Context) {
	if !c.SyncAllowed() {
		// Say once why nothing happens, but only when the hand-picked
		// theme rule is the blocker; a host without theme support stays
		// quiet.
		if c.host.Interactive() && len(c.host.Names()) > 0 {
			c.notifyOnce(host.LevelInfo, handPickedKey,
				"appearance sync is off while a hand-picked theme is active")
		}
		return
	}
	c.clearNotice(handPickedKey)

	if !c.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer c.inFlight.Store(false)

	mode := c.detector.Detect(ctx)
	if mode == appearance.Undetermined {
		c.publish(mode, "appearance undetermined", nil)
		return
	}

	cfg := c.configSnapshot()
	target, fallback := cfg.LightTheme, config.DefaultLightTheme
	if mode == appearance.Dark {
		target, fallback = cfg.DarkTheme, config.DefaultDarkTheme
	}
	target = c.resolveTarget(target, fallback)

	// The host's own idea of the active theme wins; our memory of the last
	// apply covers hosts that cannot report one.
	current := c.host.Active()
	if current == "" {
		current = c.lastAppliedName()
	}
	if current == target {
		c.publish(mode, "up to date", nil)
		return
	}

	c.applyWithFallback(mode, target, fallback)
}

// applyWithFallback switches the host theme, trying the stock theme once
// when the configured one fails. Failures warn once per theme and error
// pair.
func (c *Controller) applyWithFallback(mode appearance.Appearance, target, fallback string) {
	err := c.host.Apply(target)
	if err == nil {
		c.recordApplied(target)
		c.publish(mode, "applied "+target, nil)
		return
	}
	c.warnApply(target, err)

	if fallback == target {
		c.publish(mode, "", err)
		return
	}
	if fbErr := c.host.Apply(fallback); fbErr != nil {
		c.warnApply(fallback, fbErr)
		c.publish(mode, "", fbErr)
		return
	}
	c.recordApplied(fallback)
	c.publish(mode, "applied "+fallback, nil)
}

func (c *Controller) warnApply(name string, err error) {
	c.notifyOnce(host.LevelWarn, "apply:"+name+":"+err.Error(),
		fmt.Sprintf("could not apply theme %q: %v", name, err))
}

// recordApplied remembers the applied theme and clears its failure warnings
// so a later regression warns again.
func (c *Controller) recordApplied(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastApplied = name

	prefix := "apply:" + name + ":"
	for key := range c.warned {
		if strings.HasPrefix(key, prefix) {
			delete(c.warned, key)
		}
	}
}

func (c *Controller) publish(mode appearance.Appearance, result string, err error) {
	if c.store != nil {
		c.store.RecordPass(mode, result, err)
	}
}
