package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the appearance sync settings.
type Config struct {
	DarkTheme    string
	LightTheme   string
	PollInterval time.Duration
}

const (
	defaultConfigPath = "~/.config/sundial/sync.json"

	DefaultDarkTheme  = "dark"
	DefaultLightTheme = "light"

	DefaultPollInterval = 2 * time.Second
	// MinPollInterval is the floor for the poll cadence; anything lower
	// would hammer the settings tooling for no benefit.
	MinPollInterval = 500 * time.Millisecond
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DarkTheme:    DefaultDarkTheme,
		LightTheme:   DefaultLightTheme,
		PollInterval: DefaultPollInterval,
	}
}

// Path returns the default overrides file location.
func Path() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads the overrides file and merges it over the defaults. The result
// is always usable: a missing file yields defaults silently, while a file
// that cannot be read or parsed yields defaults plus an error for the caller
// to report.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ResolvePath(path)
	if err != nil {
		return cfg, fmt.Errorf("resolve overrides path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read overrides: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse overrides: %w", err)
	}
	if raw == nil {
		return cfg, fmt.Errorf("parse overrides: not a JSON object")
	}

	// Merge field by field. A field applies only when it is well formed;
	// anything else keeps the default without failing the load.
	if s, ok := raw["darkTheme"].(string); ok && strings.TrimSpace(s) != "" {
		cfg.DarkTheme = strings.TrimSpace(s)
	}
	if s, ok := raw["lightTheme"].(string); ok && strings.TrimSpace(s) != "" {
		cfg.LightTheme = strings.TrimSpace(s)
	}
	if n, ok := raw["pollMs"].(float64); ok {
		interval := time.Duration(math.Round(n)) * time.Millisecond
		if interval < MinPollInterval {
			interval = MinPollInterval
		}
		cfg.PollInterval = interval
	}

	return cfg, nil
}

// SaveResult reports what Save did to the overrides file.
type SaveResult struct {
	WroteFile bool
	Overrides int
}

// Save persists cfg as a sparse diff against the defaults. When nothing
// differs the overrides file is removed instead, so restoring defaults never
// leaves a stale file behind.
func Save(path string, cfg Config) (SaveResult, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return SaveResult{}, fmt.Errorf("resolve overrides path: %w", err)
	}

	overrides := diff(cfg)
	if len(overrides) == 0 {
		if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
			return SaveResult{}, fmt.Errorf("remove overrides: %w", err)
		}
		return SaveResult{}, nil
	}

	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return SaveResult{}, fmt.Errorf("marshal overrides: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return SaveResult{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return SaveResult{}, fmt.Errorf("write overrides: %w", err)
	}

	return SaveResult{WroteFile: true, Overrides: len(overrides)}, nil
}

// diff returns only the fields that differ from the defaults, keyed by their
// file names.
func diff(cfg Config) map[string]any {
	out := map[string]any{}
	if cfg.DarkTheme != DefaultDarkTheme {
		out["darkTheme"] = cfg.DarkTheme
	}
	if cfg.LightTheme != DefaultLightTheme {
		out["lightTheme"] = cfg.LightTheme
	}
	if cfg.PollInterval != DefaultPollInterval {
		out["pollMs"] = cfg.PollInterval.Milliseconds()
	}
	return out
}

// ResolvePath expands path to an absolute location, using the default when
// path is empty.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
