package autosync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/colmreid/sundial/internal/config"
	"github.com/colmreid/sundial/internal/host"
)

// startWatcher begins hot reload of the overrides file. The watch sits on
// the config directory because editors and our own save replace the file
// rather than writing it in place.
func (c *Controller) startWatcher(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err == nil {
		dir := filepath.Dir(c.cfgPath)
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			err = mkErr
		} else {
			err = w.Add(dir)
		}
	}
	if err != nil {
		if w != nil {
			_ = w.Close()
		}
		c.host.Notify(host.LevelWarn, fmt.Sprintf("overrides file watch unavailable: %v", err))
		return
	}

	c.watcher = w
	go c.watchLoop(ctx, w)
}

func (c *Controller) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	relevant := fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-w.Events:
			if !open {
				return
			}
			if filepath.Clean(ev.Name) != c.cfgPath || ev.Op&relevant == 0 {
				continue
			}
			c.reload(ctx)
		case err, open := <-w.Errors:
			if !open {
				return
			}
			c.logf("overrides watch error: %v", err)
		}
	}
}

// reload re-reads the overrides file and reacts only to real changes, so the
// event for our own save is a no-op.
func (c *Controller) reload(ctx context.Context) {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		c.host.Notify(host.LevelWarn, fmt.Sprintf("overrides file changed but could not be read: %v", err))
		return
	}

	c.mu.Lock()
	changed := cfg != c.cfg
	if changed {
		c.cfg = cfg
	}
	c.mu.Unlock()
	if !changed {
		return
	}

	c.host.Notify(host.LevelInfo, "sync settings reloaded from overrides file")
	c.SyncOnce(ctx)
	c.Restart(ctx)
}

func (c *Controller) stopWatcher() {
	if c.watcher != nil {
		_ = c.watcher.Close()
		c.watcher = nil
	}
}
