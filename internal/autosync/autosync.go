package autosync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/colmreid/sundial/internal/appearance"
	"github.com/colmreid/sundial/internal/config"
	"github.com/colmreid/sundial/internal/host"
	"github.com/colmreid/sundial/internal/state"
)

// Options configure a Controller.
type Options struct {
	Host       host.Host
	Detector   *appearance.Detector // nil uses the platform detector
	ConfigPath string               // empty uses the default overrides path
	Store      *state.Store         // optional status publishing
	Logf       func(format string, args ...any)
}

// Controller owns one session's auto-sync state: the loaded settings, the
// poll timer, and the warning bookkeeping. Create one per session and drop
// it at shutdown; it keeps no package-level state.
type Controller struct {
	host     host.Host
	detector *appearance.Detector
	store    *state.Store
	logf     func(string, ...any)

	cfgPath string
	loadErr error // pending load warning, reported at session start

	mu          sync.Mutex
	cfg         config.Config
	lastApplied string
	warned      map[string]struct{}

	inFlight atomic.Bool

	schedMu   sync.Mutex
	schedStop chan struct{}

	watcher *fsnotify.Watcher
}

// New builds a Controller and loads its settings. A broken overrides file is
// not fatal: the controller starts on defaults and reports the problem once
// the session is up.
func New(opts Options) (*Controller, error) {
	if opts.Host == nil {
		return nil, fmt.Errorf("autosync: host is required")
	}

	detector := opts.Detector
	if detector == nil {
		detector = appearance.New()
	}

	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}

	path := opts.ConfigPath
	resolved, err := config.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("autosync: %w", err)
	}

	cfg, loadErr := config.Load(resolved)

	return &Controller{
		host:     opts.Host,
		detector: detector,
		store:    opts.Store,
		logf:     logf,
		cfgPath:  resolved,
		loadErr:  loadErr,
		cfg:      cfg,
		warned:   make(map[string]struct{}),
	}, nil
}

// HandleSessionStart reports any pending settings problem, runs the first
// sync pass, and starts the poll timer and the overrides watcher. Call it
// once when the host session comes up.
func (c *Controller) HandleSessionStart(ctx context.Context) {
	if c.loadErr != nil {
		c.host.Notify(host.LevelWarn, fmt.Sprintf("using default sync settings: %v", c.loadErr))
		c.loadErr = nil
	}
	c.SyncOnce(ctx)
	c.startWatcher(ctx)
	c.Restart(ctx)
}

// HandleShutdown stops the poll timer and the watcher. Safe to call more
// than once.
func (c *Controller) HandleShutdown() {
	c.Stop()
	c.stopWatcher()
}

// Command returns the interactive settings command for the host to register.
func (c *Controller) Command() host.Command {
	return host.Command{
		Name: "sync-settings",
		Run:  c.RunMenu,
	}
}

func (c *Controller) configSnapshot() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *Controller) lastAppliedName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastApplied
}

// notifyOnce emits the notice only the first time key is seen in this
// session. Success paths clear their keys so a later regression is reported
// again.
func (c *Controller) notifyOnce(level host.Level, key, message string) {
	c.mu.Lock()
	_, seen := c.warned[key]
	if !seen {
		c.warned[key] = struct{}{}
	}
	c.mu.Unlock()

	if !seen {
		c.host.Notify(level, message)
	}
}

func (c *Controller) clearNotice(key string) {
	c.mu.Lock()
	delete(c.warned, key)
	c.mu.Unlock()
}
