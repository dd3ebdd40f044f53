package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colmreid/sundial/internal/appearance"
	"github.com/colmreid/sundial/internal/autosync"
	"github.com/colmreid/sundial/internal/clihost"
	"github.com/colmreid/sundial/internal/feed"
	"github.com/colmreid/sundial/internal/prefs"
	"github.com/colmreid/sundial/internal/state"
	"github.com/colmreid/sundial/internal/theme"
	"github.com/colmreid/sundial/internal/ui"
)

const (
	defaultThemesDir = "~/.config/sundial/themes"
	feedCapacity     = 128
)

// Options configure the sundial application.
type Options struct {
	ConfigPath string // sync overrides file (default ~/.config/sundial/sync.json)
	PrefsPath  string // user preferences (default ~/.config/sundial/prefs.toml)
	ThemesDir  string // user theme catalog (default ~/.config/sundial/themes)
}

// Run boots the TUI session and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	registry, err := loadRegistry(opts)
	if err != nil {
		return err
	}
	theme.ConfigureColors()

	userPrefs := prefs.Load(opts.PrefsPath)
	initial := initialTheme(registry, userPrefs.Theme)

	store := &state.Store{}
	fd := feed.New(feedCapacity)

	session := ui.NewSession(registry, store, fd, opts.PrefsPath)
	session.SetInitialTheme(initial)

	ctrl, err := autosync.New(autosync.Options{
		Host:       session,
		ConfigPath: opts.ConfigPath,
		Store:      store,
	})
	if err != nil {
		return fmt.Errorf("init sync engine: %w", err)
	}
	session.Register(ctrl.Command())

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Store:     store,
		Feed:      fd,
		ThemeName: initial,
		Hooks: ui.Hooks{
			OnStart: ctrl.HandleSessionStart,
			OnStop:  ctrl.HandleShutdown,
			SyncNow: ctrl.SyncOnce,
		},
	})
}

// RunOnce performs a single sync pass over the plain-terminal host and
// prints the outcome.
func RunOnce(ctx context.Context, opts Options, out io.Writer) error {
	ctrl, store, err := headless(opts, nil, out)
	if err != nil {
		return err
	}
	ctrl.HandleSessionStart(ctx)
	ctrl.HandleShutdown()

	snap := store.Snapshot()
	switch {
	case snap.LastSync.IsZero():
		fmt.Fprintln(out, `sync skipped: the active theme was hand-picked (run "sundial configure" to choose sync themes)`)
	case snap.LastError != nil:
		return fmt.Errorf("sync: %w", snap.LastError)
	case snap.Appearance == appearance.Undetermined:
		fmt.Fprintln(out, "could not determine the OS appearance")
	default:
		fmt.Fprintf(out, "OS appearance %s: %s\n", snap.Appearance, snap.LastResult)
	}
	return nil
}

// Configure runs the settings menu over plain stdin/stdout.
func Configure(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	ctrl, _, err := headless(opts, in, out)
	if err != nil {
		return err
	}
	// A save inside the menu starts the poll timer; stop it before the
	// process exits.
	defer ctrl.HandleShutdown()
	ctrl.RunMenu(ctx)
	return nil
}

// Detect prints the detected OS appearance. Undetermined is an answer, not
// an error.
func Detect(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, appearance.New().Detect(ctx))
	return nil
}

// ListThemes prints the theme names, marking the preferred one.
func ListThemes(opts Options, out io.Writer) error {
	registry, err := loadRegistry(opts)
	if err != nil {
		return err
	}
	active := prefs.Load(opts.PrefsPath).Theme
	for _, name := range registry.Names() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}

// headless builds the engine around a line-oriented host for the one-shot
// commands.
func headless(opts Options, in io.Reader, out io.Writer) (*autosync.Controller, *state.Store, error) {
	registry, err := loadRegistry(opts)
	if err != nil {
		return nil, nil, err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	initial := initialTheme(registry, userPrefs.Theme)

	h := clihost.New(clihost.Options{
		Registry:  registry,
		PrefsPath: opts.PrefsPath,
		Active:    initial,
		In:        in,
		Out:       out,
	})

	store := &state.Store{}
	ctrl, err := autosync.New(autosync.Options{
		Host:       h,
		ConfigPath: opts.ConfigPath,
		Store:      store,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init sync engine: %w", err)
	}
	return ctrl, store, nil
}

// loadRegistry seeds the registry and merges the user theme catalog.
// Malformed theme files are reported and skipped, not fatal.
func loadRegistry(opts Options) (*theme.Registry, error) {
	registry := theme.NewRegistry()
	dir, err := resolveThemesDir(opts.ThemesDir)
	if err != nil {
		return nil, err
	}
	if err := theme.LoadDir(registry, dir); err != nil {
		log.Printf("some theme files were skipped: %v", err)
	}
	return registry, nil
}

// initialTheme picks the starting theme: the saved preference when the
// registry knows it, else the stock theme matching the terminal background.
func initialTheme(registry *theme.Registry, preferred string) string {
	if _, ok := registry.Get(preferred); ok {
		return preferred
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func resolveThemesDir(dir string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = defaultThemesDir
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return trimmed, nil
}
