package appearance

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Outcome captures one external query: its output streams and failure state.
// Callers branch on the captured fields, never on formatted error text.
type Outcome struct {
	Stdout string
	Stderr string
	Err    error // set when the command could not start, timed out, or exited nonzero
}

// Runner executes one external command and reports its outcome.
type Runner func(ctx context.Context, name string, args ...string) Outcome

const defaultQueryTimeout = 1200 * time.Millisecond

// Detector reads the OS light/dark preference by querying the platform's
// settings tooling. Use New; the zero value has no runner.
type Detector struct {
	OS      string        // GOOS to dispatch on
	Run     Runner        // executes the platform queries
	Timeout time.Duration // bound for each individual query
}

// New returns a Detector for the current platform.
func New() *Detector {
	return &Detector{
		OS:      runtime.GOOS,
		Run:     execRunner,
		Timeout: defaultQueryTimeout,
	}
}

// Detect reports the current OS appearance. It never fails: anything it
// cannot run, read, or parse collapses to Undetermined so a broken desktop
// environment cannot take the caller down with it.
func (d *Detector) Detect(ctx context.Context) Appearance {
	switch d.OS {
	case "darwin":
		return d.detectDarwin(ctx)
	case "linux":
		return d.detectLinux(ctx)
	case "windows":
		return d.detectWindows(ctx)
	default:
		return Undetermined
	}
}

func (d *Detector) detectDarwin(ctx context.Context) Appearance {
	out := d.query(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if out.Err != nil {
		// The global key exists only while dark mode is on, so `defaults`
		// failing with a missing key means the system is in light mode.
		if strings.Contains(out.Stderr, "does not exist") {
			return Light
		}
		return Undetermined
	}
	switch normalize(out.Stdout) {
	case "dark":
		return Dark
	case "light":
		return Light
	default:
		return Undetermined
	}
}

func (d *Detector) detectLinux(ctx context.Context) Appearance {
	out := d.query(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if out.Err == nil {
		scheme := normalize(out.Stdout)
		switch {
		case strings.Contains(scheme, "prefer-dark"):
			return Dark
		case strings.Contains(scheme, "prefer-light"):
			return Light
		}
	}

	// color-scheme is often unset or "default"; older desktops carry the
	// preference in the GTK theme name instead.
	out = d.query(ctx, "gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if out.Err != nil {
		return Undetermined
	}
	theme := normalize(out.Stdout)
	switch {
	case strings.Contains(theme, "dark"):
		return Dark
	case strings.Contains(theme, "light"):
		return Light
	default:
		return Undetermined
	}
}

func (d *Detector) detectWindows(ctx context.Context) Appearance {
	out := d.query(ctx, "reg", "query",
		`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`,
		"/v", "AppsUseLightTheme")
	if out.Err != nil {
		return Undetermined
	}
	for _, line := range strings.Split(out.Stdout, "\n") {
		if !strings.Contains(line, "AppsUseLightTheme") {
			continue
		}
		idx := strings.Index(line, "0x")
		if idx < 0 {
			continue
		}
		val, err := strconv.ParseUint(strings.TrimSpace(line[idx+2:]), 16, 32)
		if err != nil {
			return Undetermined
		}
		// The registry value is "apps use LIGHT theme".
		if val == 0 {
			return Dark
		}
		return Light
	}
	return Undetermined
}

// query runs one external command bounded by the detector's timeout.
func (d *Detector) query(ctx context.Context, name string, args ...string) Outcome {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return d.Run(ctx, name, args...)
}

// normalize trims whitespace, strips the quoting gsettings and defaults wrap
// values in, and lowercases the rest.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'"`)
	return strings.ToLower(strings.TrimSpace(s))
}

func execRunner(ctx context.Context, name string, args ...string) Outcome {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return Outcome{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
