package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewRegistrySeedsBuiltins(t *testing.T) {
	reg := NewRegistry()

	names := reg.Names()
	want := []string{"dark", "light", "nightfox", "dayfox"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}

	if _, ok := reg.Get("dark"); !ok {
		t.Fatal("Get(dark) not found")
	}
	if _, ok := reg.Get("dracula"); ok {
		t.Fatal("Get(dracula) found, want missing")
	}
}

func TestRegistryAddReplacesInPlace(t *testing.T) {
	reg := NewRegistry()
	before := reg.Names()

	replacement := darkTheme()
	replacement.Accent = "#ff0000"
	reg.Add(replacement)

	after := reg.Names()
	if len(after) != len(before) {
		t.Fatalf("Names() length changed from %d to %d on replace", len(before), len(after))
	}
	got, _ := reg.Get("dark")
	if got.Accent != "#ff0000" {
		t.Fatalf("replaced accent = %q, want %q", got.Accent, "#ff0000")
	}
}

func TestRegistryNextCycles(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		current string
		want    string
	}{
		{"dark", "light"},
		{"light", "nightfox"},
		{"dayfox", "dark"}, // wraps
		{"missing", "dark"},
		{"", "dark"},
	}
	for _, tc := range cases {
		if got := reg.Next(tc.current); got != tc.want {
			t.Fatalf("Next(%q) = %q, want %q", tc.current, got, tc.want)
		}
	}
}

func TestLoadDirMergesUserThemes(t *testing.T) {
	dir := t.TempDir()
	ember := `
name = "ember"
dark = true

[colors]
background = "#1f1410"
accent = "#ff9466"
`
	if err := os.WriteFile(filepath.Join(dir, "ember.toml"), []byte(ember), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a theme"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	reg := NewRegistry()
	if err := LoadDir(reg, dir); err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}

	got, ok := reg.Get("ember")
	if !ok {
		t.Fatal("loaded theme not in registry")
	}
	if got.Background != "#1f1410" || got.Accent != "#ff9466" {
		t.Fatalf("theme colors = %+v, want file values", got)
	}
	// Unset colors inherit from the stock dark theme.
	if got.Text != darkTheme().Text {
		t.Fatalf("inherited text = %q, want %q", got.Text, darkTheme().Text)
	}
	if !got.Dark {
		t.Fatal("theme polarity lost")
	}
}

func TestLoadDirMissingDirIsFine(t *testing.T) {
	reg := NewRegistry()
	if err := LoadDir(reg, filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("LoadDir returned error for missing dir: %v", err)
	}
	if got := len(reg.Names()); got != 4 {
		t.Fatalf("registry size = %d, want 4 builtins", got)
	}
}

func TestLoadDirSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"broken.toml":  `name = `,
		"unnamed.toml": `dark = true`,
		"good.toml":    "name = \"mist\"\ndark = false\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	reg := NewRegistry()
	err := LoadDir(reg, dir)
	if err == nil {
		t.Fatal("LoadDir returned nil error, want joined file errors")
	}
	if _, ok := reg.Get("mist"); !ok {
		t.Fatal("valid theme was not loaded alongside malformed ones")
	}
	if _, ok := reg.Get("broken"); ok {
		t.Fatal("malformed theme ended up in registry")
	}
}

func TestStylesUsePaletteColors(t *testing.T) {
	th := nightfoxTheme()
	styles := th.Styles()

	if got := styles.Title.GetForeground(); got != lipgloss.Color(th.Accent) {
		t.Fatalf("Title foreground = %v, want accent %q", got, th.Accent)
	}
	if got := styles.Text.GetForeground(); got != lipgloss.Color(th.Text) {
		t.Fatalf("Text foreground = %v, want %q", got, th.Text)
	}
	if got := styles.DangerText.GetForeground(); got != lipgloss.Color(th.Danger) {
		t.Fatalf("DangerText foreground = %v, want %q", got, th.Danger)
	}
}
