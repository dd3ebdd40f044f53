package autosync

import (
	"context"
	"time"
)

// Restart replaces any running poll timer. The timer only starts when policy
// allows automatic sync; otherwise Restart is equivalent to Stop. Callers
// restart after every settings change and at session start.
func (c *Controller) Restart(ctx context.Context) {
	interval := c.configSnapshot().PollInterval
	allowed := c.SyncAllowed()

	c.schedMu.Lock()
	defer c.schedMu.Unlock()

	if c.schedStop != nil {
		close(c.schedStop)
		c.schedStop = nil
	}

	if c.store != nil {
		c.store.SetSchedule(allowed, interval)
	}
	if !allowed {
		return
	}

	stop := make(chan struct{})
	c.schedStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				c.SyncOnce(ctx)
			}
		}
	}()
}

// Stop cancels the poll timer if one is running. Safe to call repeatedly.
func (c *Controller) Stop() {
	interval := c.configSnapshot().PollInterval

	c.schedMu.Lock()
	defer c.schedMu.Unlock()

	if c.schedStop != nil {
		close(c.schedStop)
		c.schedStop = nil
	}
	if c.store != nil {
		c.store.SetSchedule(false, interval)
	}
}
