package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sync.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadMalformedFileWarnsAndUsesDefaults(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"broken syntax", `{"darkTheme": `},
		{"not an object", `["dark"]`},
		{"null", `null`},
		{"bare string", `"dark"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeOverrides(t, tc.content))
			if err == nil {
				t.Fatal("Load returned nil error, want parse warning")
			}
			if cfg != Default() {
				t.Fatalf("cfg = %+v, want defaults %+v", cfg, Default())
			}
		})
	}
}

func TestLoadMergesFieldByField(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Config
	}{
		{
			"single theme override",
			`{"darkTheme": "nightfox"}`,
			Config{DarkTheme: "nightfox", LightTheme: "light", PollInterval: 2 * time.Second},
		},
		{
			"all fields",
			`{"darkTheme": "nightfox", "lightTheme": "dayfox", "pollMs": 5000}`,
			Config{DarkTheme: "nightfox", LightTheme: "dayfox", PollInterval: 5 * time.Second},
		},
		{
			"theme names are trimmed",
			`{"darkTheme": "  nightfox  "}`,
			Config{DarkTheme: "nightfox", LightTheme: "light", PollInterval: 2 * time.Second},
		},
		{
			"wrong types keep defaults",
			`{"darkTheme": 5, "lightTheme": ["dayfox"], "pollMs": "fast"}`,
			Default(),
		},
		{
			"blank theme keeps default",
			`{"darkTheme": "   "}`,
			Default(),
		},
		{
			"fractional interval is rounded",
			`{"pollMs": 1499.6}`,
			Config{DarkTheme: "dark", LightTheme: "light", PollInterval: 1500 * time.Millisecond},
		},
		{
			"interval below floor is clamped",
			`{"pollMs": 100}`,
			Config{DarkTheme: "dark", LightTheme: "light", PollInterval: MinPollInterval},
		},
		{
			"negative interval is clamped",
			`{"pollMs": -50}`,
			Config{DarkTheme: "dark", LightTheme: "light", PollInterval: MinPollInterval},
		},
		{
			"unknown fields are ignored",
			`{"pollMs": 1000, "accent": "orange"}`,
			Config{DarkTheme: "dark", LightTheme: "light", PollInterval: time.Second},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeOverrides(t, tc.content))
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg != tc.want {
				t.Fatalf("cfg = %+v, want %+v", cfg, tc.want)
			}
		})
	}
}

func TestSaveDefaultsRemovesFile(t *testing.T) {
	path := writeOverrides(t, `{"darkTheme": "nightfox"}`)

	res, err := Save(path, Default())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if res.WroteFile || res.Overrides != 0 {
		t.Fatalf("res = %+v, want no file and zero overrides", res)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("overrides file still exists after saving defaults")
	}

	// Saving defaults again with no file present must stay quiet.
	if _, err := Save(path, Default()); err != nil {
		t.Fatalf("Save with absent file returned error: %v", err)
	}
}

func TestSaveWritesOnlyOverriddenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.json")

	cfg := Default()
	cfg.PollInterval = 1500 * time.Millisecond
	res, err := Save(path, cfg)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !res.WroteFile || res.Overrides != 1 {
		t.Fatalf("res = %+v, want one written override", res)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read overrides: %v", err)
	}
	want := "{\n  \"pollMs\": 1500\n}\n"
	if string(data) != want {
		t.Fatalf("file content = %q, want %q", string(data), want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sync.json")

	cfg := Config{DarkTheme: "nightfox", LightTheme: "dayfox", PollInterval: 900 * time.Millisecond}
	res, err := Save(path, cfg)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !res.WroteFile || res.Overrides != 3 {
		t.Fatalf("res = %+v, want three written overrides", res)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestResolvePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "sundial", "sync.json")
	if got != want {
		t.Fatalf("ResolvePath(\"\") = %q, want %q", got, want)
	}

	got, err = ResolvePath("~/custom/sync.json")
	if err != nil {
		t.Fatalf("ResolvePath returned error: %v", err)
	}
	want = filepath.Join(home, "custom", "sync.json")
	if got != want {
		t.Fatalf("ResolvePath = %q, want %q", got, want)
	}
}
