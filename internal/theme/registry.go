package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Registry holds the themes a session can apply, in a stable order.
type Registry struct {
	order  []string
	byName map[string]Theme
}

// NewRegistry returns a registry seeded with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Theme)}
	for _, t := range builtins() {
		r.Add(t)
	}
	return r
}

// Add inserts or replaces a theme. A replacement keeps its original position
// in the cycle order.
func (r *Registry) Add(t Theme) {
	if _, ok := r.byName[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.byName[t.Name] = t
}

// Get returns the named theme.
func (r *Registry) Get(name string) (Theme, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns theme names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Next returns the theme name after current in the cycle, wrapping around.
func (r *Registry) Next(current string) string {
	for i, name := range r.order {
		if name == current {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}

// themeFile is the on-disk shape of a user theme.
type themeFile struct {
	Name   string `toml:"name"`
	Dark   bool   `toml:"dark"`
	Colors struct {
		Background string `toml:"background"`
		Surface    string `toml:"surface"`
		Text       string `toml:"text"`
		Muted      string `toml:"muted"`
		Accent     string `toml:"accent"`
		Success    string `toml:"success"`
		Warning    string `toml:"warning"`
		Danger     string `toml:"danger"`
	} `toml:"colors"`
}

// LoadDir merges user themes from dir/*.toml into reg. A missing directory
// is not an error. Malformed files are skipped; their errors come back
// joined so the caller can report them without aborting startup.
func LoadDir(reg *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read themes dir: %w", err)
	}

	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		t, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		reg.Add(t)
	}
	return errors.Join(errs...)
}

func loadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}

	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if strings.TrimSpace(f.Name) == "" {
		return Theme{}, fmt.Errorf("theme has no name")
	}

	// Unset colors inherit from the stock theme of matching polarity.
	base := darkTheme()
	if !f.Dark {
		base = lightTheme()
	}
	t := base
	t.Name = strings.TrimSpace(f.Name)
	t.Dark = f.Dark
	setIfPresent(&t.Background, f.Colors.Background)
	setIfPresent(&t.Surface, f.Colors.Surface)
	setIfPresent(&t.Text, f.Colors.Text)
	setIfPresent(&t.Muted, f.Colors.Muted)
	setIfPresent(&t.Accent, f.Colors.Accent)
	setIfPresent(&t.Success, f.Colors.Success)
	setIfPresent(&t.Warning, f.Colors.Warning)
	setIfPresent(&t.Danger, f.Colors.Danger)
	return t, nil
}

func setIfPresent(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = strings.TrimSpace(value)
	}
}
